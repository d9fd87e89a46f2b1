package cart

// Totals производные суммы корзины. Всегда считаются из текущего снимка, не кэшируются.
type Totals struct {
	Subtotal float64 `json:"subtotal"`
	Tax      float64 `json:"tax"`
	Delivery float64 `json:"delivery"`
	Total    float64 `json:"total"`
}

// ComputeTotals считает суммы по позициям корзины
func ComputeTotals(items []Item) Totals {
	var t Totals
	for _, it := range items {
		t.Subtotal += it.UnitPrice * float64(it.Quantity)
	}
	t.Tax = t.Subtotal * TaxRate
	if len(items) > 0 {
		t.Delivery = DeliveryFee
	}
	t.Total = t.Subtotal + t.Tax + t.Delivery
	return t
}

// CountUnits общее количество единиц товара в корзине
func CountUnits(items []Item) int {
	n := 0
	for _, it := range items {
		n += it.Quantity
	}
	return n
}
