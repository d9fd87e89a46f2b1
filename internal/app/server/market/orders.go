package market

import (
	"context"
	"fmt"

	"agroportal/internal/domain/cart"
	"agroportal/internal/domain/dashboard"
	"agroportal/internal/domain/notification"
	"agroportal/internal/domain/order"
)

const PaymentWallet = "wallet"

func (s *Store) Orders(_ context.Context, userID string) ([]order.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.faultLocked(OpOrdersGet); err != nil {
		return nil, err
	}
	acc, err := s.accountLocked(userID)
	if err != nil {
		return nil, err
	}
	return append([]order.Order{}, acc.orders...), nil
}

// PlaceOrder создает заказ, при оплате из кошелька списывает сумму и очищает корзину
func (s *Store) PlaceOrder(_ context.Context, userID string, req order.PlaceRequest) (order.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.faultLocked(OpOrderPlace); err != nil {
		return order.Order{}, err
	}
	if len(req.Lines) == 0 {
		return order.Order{}, fmt.Errorf("%w: %v", ErrInvalid, order.ErrEmptyCart)
	}
	acc, err := s.accountLocked(userID)
	if err != nil {
		return order.Order{}, err
	}

	items := make([]cart.Item, 0, len(req.Lines))
	for _, l := range req.Lines {
		if l.Quantity <= 0 {
			return order.Order{}, fmt.Errorf("%w: quantity must be positive", ErrInvalid)
		}
		p, ok := s.products[l.ProductID]
		if !ok {
			return order.Order{}, fmt.Errorf("%w: product %s", ErrNotFound, l.ProductID)
		}
		items = append(items, cart.Item{ProductID: p.ID, Name: p.Name, UnitPrice: p.Price, Quantity: l.Quantity})
	}
	total := cart.ComputeTotals(items).Total

	if req.PaymentMethod == PaymentWallet {
		if acc.balance < total {
			return order.Order{}, fmt.Errorf("%w: need %.2f, have %.2f", ErrInsufficientFunds, total, acc.balance)
		}
		acc.balance -= total
	}

	created := order.Order{
		ID:            newID(),
		Lines:         order.LinesFromCart(items),
		Total:         total,
		Status:        order.StatusConfirmed,
		PaymentMethod: req.PaymentMethod,
		Address:       req.Address,
		CreatedAt:     s.now().UTC(),
	}
	acc.orders = append([]order.Order{created}, acc.orders...)
	acc.totalSpent += total
	acc.cart = nil

	s.notifyLocked(acc, "order", "Заказ оформлен", fmt.Sprintf("Заказ на сумму %.2f %s принят", total, currency), notification.PriorityHigh)
	return created, nil
}

// Dashboard агрегаты покупателя
func (s *Store) Dashboard(_ context.Context, userID string) (dashboard.Stats, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.faultLocked(OpDashboard); err != nil {
		return dashboard.Stats{}, err
	}
	acc, err := s.accountLocked(userID)
	if err != nil {
		return dashboard.Stats{}, err
	}

	units := 0
	for _, it := range acc.cart {
		units += it.Quantity
	}
	return dashboard.Stats{
		TotalOrders:    len(acc.orders),
		CartItemsCount: units,
		TotalSpent:     acc.totalSpent,
		FavoritesCount: len(acc.favorites),
	}, nil
}
