package favorite

type Entry struct {
	ProductID string  `json:"product_id"`
	Name      string  `json:"name,omitempty"`
	Price     float64 `json:"price,omitempty"`
}

type ListResponse struct {
	Products []Entry `json:"products"`
}

// FromEntries строит множество из ответа сервера
func FromEntries(entries []Entry) Set {
	s := make(Set, len(entries))
	for _, e := range entries {
		s[e.ProductID] = struct{}{}
	}
	return s
}
