package order

import (
	"errors"
	"time"

	"agroportal/internal/domain/cart"
)

var ErrEmptyCart = errors.New("cannot place an order with an empty cart")

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusShipped   Status = "shipped"
	StatusDelivered Status = "delivered"
	StatusCancelled Status = "cancelled"
)

type Line struct {
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	UnitPrice float64 `json:"unit_price"`
	Quantity  int     `json:"quantity"`
}

// Order заказ покупателя
type Order struct {
	ID            string    `json:"id"`
	Lines         []Line    `json:"lines"`
	Total         float64   `json:"total"`
	Status        Status    `json:"status"`
	PaymentMethod string    `json:"payment_method"`
	Address       string    `json:"address,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

// PlaceRequest запрос на оформление заказа
type PlaceRequest struct {
	Lines         []Line `json:"lines"`
	PaymentMethod string `json:"payment_method"`
	Address       string `json:"address,omitempty"`
}

// LinesFromCart строки заказа из позиций корзины
func LinesFromCart(items []cart.Item) []Line {
	lines := make([]Line, 0, len(items))
	for _, it := range items {
		lines = append(lines, Line{
			ProductID: it.ProductID,
			Name:      it.Name,
			UnitPrice: it.UnitPrice,
			Quantity:  it.Quantity,
		})
	}
	return lines
}
