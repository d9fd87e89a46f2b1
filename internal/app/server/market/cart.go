package market

import (
	"context"
	"fmt"

	"agroportal/internal/domain/cart"
)

func (s *Store) Cart(_ context.Context, userID string) ([]cart.ServerItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.faultLocked(OpCartGet); err != nil {
		return nil, err
	}
	acc, err := s.accountLocked(userID)
	if err != nil {
		return nil, err
	}
	return append([]cart.ServerItem{}, acc.cart...), nil
}

// AddToCart дописывает строку в корзину. Строки одного товара не объединяются.
func (s *Store) AddToCart(_ context.Context, userID, productID string, quantity int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.faultLocked(OpCartAdd); err != nil {
		return err
	}
	if quantity <= 0 {
		return fmt.Errorf("%w: quantity must be positive", ErrInvalid)
	}
	p, ok := s.products[productID]
	if !ok {
		return fmt.Errorf("%w: product %s", ErrNotFound, productID)
	}
	acc, err := s.accountLocked(userID)
	if err != nil {
		return err
	}

	acc.cart = append(acc.cart, cart.ServerItem{
		ProductID: p.ID,
		Name:      p.Name,
		Price:     p.Price,
		Quantity:  quantity,
		Unit:      p.Unit,
		ImageRef:  p.ImageRef,
		SellerRef: p.SellerRef,
	})
	return nil
}

func (s *Store) ClearCart(_ context.Context, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.faultLocked(OpCartClear); err != nil {
		return err
	}
	acc, err := s.accountLocked(userID)
	if err != nil {
		return err
	}
	acc.cart = nil
	return nil
}
