package cart

import (
	"github.com/google/uuid"
)

const (
	// TaxRate налог от суммы корзины
	TaxRate = 0.05
	// DeliveryFee фиксированная стоимость доставки непустой корзины
	DeliveryFee = 50.0
)

// Item позиция корзины. LocalID назначает клиент, он не зависит от идентификаторов сервера,
// поэтому позицию можно создать до подтверждения сервером.
type Item struct {
	LocalID   string  `json:"local_id"`
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	UnitPrice float64 `json:"unit_price"`
	Quantity  int     `json:"quantity"`
	Unit      string  `json:"unit,omitempty"`
	ImageRef  string  `json:"image_ref,omitempty"`
	SellerRef string  `json:"seller_ref,omitempty"`
}

// Product то, что пользователь добавляет в корзину
type Product struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Unit      string  `json:"unit,omitempty"`
	ImageRef  string  `json:"image_ref,omitempty"`
	SellerRef string  `json:"seller_ref,omitempty"`
}

// NewItem создает новую позицию с количеством 1 и свежим локальным идентификатором
func NewItem(p Product) Item {
	return Item{
		LocalID:   uuid.NewString(),
		ProductID: p.ID,
		Name:      p.Name,
		UnitPrice: p.Price,
		Quantity:  1,
		Unit:      p.Unit,
		ImageRef:  p.ImageRef,
		SellerRef: p.SellerRef,
	}
}

// Clone копирует срез позиций
func Clone(items []Item) []Item {
	if len(items) == 0 {
		return []Item{}
	}
	dup := make([]Item, len(items))
	copy(dup, items)
	return dup
}
