package market

import (
	"context"
	"fmt"

	"agroportal/internal/domain/favorite"
)

func (s *Store) Favorites(_ context.Context, userID string) ([]favorite.Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.faultLocked(OpFavoritesGet); err != nil {
		return nil, err
	}
	acc, err := s.accountLocked(userID)
	if err != nil {
		return nil, err
	}

	entries := make([]favorite.Entry, 0, len(acc.favorites))
	for _, id := range acc.favorites {
		p := s.products[id]
		entries = append(entries, favorite.Entry{ProductID: id, Name: p.Name, Price: p.Price})
	}
	return entries, nil
}

// AddFavorite идемпотентно добавляет товар в избранное
func (s *Store) AddFavorite(_ context.Context, userID, productID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.faultLocked(OpFavoriteAdd); err != nil {
		return err
	}
	if _, ok := s.products[productID]; !ok {
		return fmt.Errorf("%w: product %s", ErrNotFound, productID)
	}
	acc, err := s.accountLocked(userID)
	if err != nil {
		return err
	}
	for _, id := range acc.favorites {
		if id == productID {
			return nil
		}
	}
	acc.favorites = append(acc.favorites, productID)
	return nil
}

// RemoveFavorite идемпотентно убирает товар из избранного
func (s *Store) RemoveFavorite(_ context.Context, userID, productID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.faultLocked(OpFavoriteRemove); err != nil {
		return err
	}
	acc, err := s.accountLocked(userID)
	if err != nil {
		return err
	}
	for i, id := range acc.favorites {
		if id == productID {
			acc.favorites = append(acc.favorites[:i], acc.favorites[i+1:]...)
			break
		}
	}
	return nil
}
