package dashboard

// Stats агрегаты панели покупателя. Обновляются целиком после мутаций, которые могут их изменить.
type Stats struct {
	TotalOrders    int     `json:"total_orders"`
	CartItemsCount int     `json:"cart_items_count"`
	TotalSpent     float64 `json:"total_spent"`
	FavoritesCount int     `json:"favorites_count"`
}

// BumpFavorites сдвигает счетчик избранного, не опускаясь ниже нуля
func (s Stats) BumpFavorites(delta int) Stats {
	s.FavoritesCount += delta
	if s.FavoritesCount < 0 {
		s.FavoritesCount = 0
	}
	return s
}

// RestoreFavorites возвращает счетчику значение prev, если в нем все еще wrote
func (s Stats) RestoreFavorites(wrote, prev int) Stats {
	if s.FavoritesCount == wrote {
		s.FavoritesCount = prev
	}
	return s
}
