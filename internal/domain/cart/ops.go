package cart

import "fmt"

// Append добавляет товар отдельной позицией. Повторное добавление того же товара
// не увеличивает количество существующей позиции, а создает новую.
func Append(items []Item, p Product) ([]Item, Item) {
	item := NewItem(p)
	out := append(Clone(items), item)
	return out, item
}

// SetQuantity меняет количество позиции. Неположительное количество отклоняется
// до изменения состояния.
func SetQuantity(items []Item, localID string, quantity int) ([]Item, error) {
	if quantity <= 0 {
		return items, fmt.Errorf("%w: got %d", ErrInvalidQuantity, quantity)
	}

	idx := indexOf(items, localID)
	if idx < 0 {
		return items, fmt.Errorf("%w: %s", ErrItemNotFound, localID)
	}

	out := Clone(items)
	out[idx].Quantity = quantity
	return out, nil
}

// Remove убирает позицию по локальному идентификатору
func Remove(items []Item, localID string) ([]Item, error) {
	idx := indexOf(items, localID)
	if idx < 0 {
		return items, fmt.Errorf("%w: %s", ErrItemNotFound, localID)
	}

	out := make([]Item, 0, len(items)-1)
	out = append(out, items[:idx]...)
	out = append(out, items[idx+1:]...)
	return out, nil
}

// Find ищет позицию по локальному идентификатору
func Find(items []Item, localID string) (Item, bool) {
	if idx := indexOf(items, localID); idx >= 0 {
		return items[idx], true
	}
	return Item{}, false
}

func indexOf(items []Item, localID string) int {
	for i := range items {
		if items[i].LocalID == localID {
			return i
		}
	}
	return -1
}
