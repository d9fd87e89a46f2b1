package favorite

import "sort"

// Set множество избранных товаров
type Set map[string]struct{}

// NewSet строит множество из списка идентификаторов, дубликаты схлопываются
func NewSet(ids ...string) Set {
	s := make(Set, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

func (s Set) Has(id string) bool {
	_, ok := s[id]
	return ok
}

// With возвращает копию множества с добавленным товаром
func (s Set) With(id string) Set {
	dup := s.Clone()
	dup[id] = struct{}{}
	return dup
}

// Without возвращает копию множества без товара
func (s Set) Without(id string) Set {
	dup := s.Clone()
	delete(dup, id)
	return dup
}

// Restore возвращает товару членство prev, если оно все еще равно wrote.
// Иначе множество уже изменила более поздняя операция, и оно не трогается.
func (s Set) Restore(id string, wrote, prev bool) Set {
	if s.Has(id) != wrote || wrote == prev {
		return s
	}
	if prev {
		return s.With(id)
	}
	return s.Without(id)
}

func (s Set) Clone() Set {
	dup := make(Set, len(s))
	for id := range s {
		dup[id] = struct{}{}
	}
	return dup
}

func (s Set) Len() int {
	return len(s)
}

// IDs отсортированный список идентификаторов
func (s Set) IDs() []string {
	ids := make([]string, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
