package cart

// ServerItem позиция корзины в ответе сервера
type ServerItem struct {
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
	Unit      string  `json:"unit,omitempty"`
	ImageRef  string  `json:"image_ref,omitempty"`
	SellerRef string  `json:"seller_ref,omitempty"`
}

type ListResponse struct {
	Items []ServerItem `json:"items"`
}

type AddRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

type ProductListResponse struct {
	Products []Product `json:"products"`
}

// FromServer превращает ответ сервера в локальные позиции со свежими локальными идентификаторами
func FromServer(items []ServerItem) []Item {
	out := make([]Item, 0, len(items))
	for _, si := range items {
		it := NewItem(Product{
			ID:        si.ProductID,
			Name:      si.Name,
			Price:     si.Price,
			Unit:      si.Unit,
			ImageRef:  si.ImageRef,
			SellerRef: si.SellerRef,
		})
		it.Quantity = si.Quantity
		if it.Quantity <= 0 {
			it.Quantity = 1
		}
		out = append(out, it)
	}
	return out
}
