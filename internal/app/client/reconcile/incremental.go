package reconcile

import (
	"context"
	"fmt"
)

// FavoritesRemote серверные операции избранного
type FavoritesRemote interface {
	AddFavorite(ctx context.Context, productID string) error
	RemoveFavorite(ctx context.Context, productID string) error
}

// Incremental отправляет на сервер одно изменение множества
type Incremental struct {
	remote FavoritesRemote
}

func NewIncremental(remote FavoritesRemote) *Incremental {
	return &Incremental{remote: remote}
}

// Toggle добавляет или убирает товар в зависимости от нового локального состояния
func (i *Incremental) Toggle(ctx context.Context, productID string, added bool) error {
	if added {
		if err := i.remote.AddFavorite(ctx, productID); err != nil {
			return fmt.Errorf("ошибка добавления в избранное: %w", err)
		}
		return nil
	}
	if err := i.remote.RemoveFavorite(ctx, productID); err != nil {
		return fmt.Errorf("ошибка удаления из избранного: %w", err)
	}
	return nil
}
