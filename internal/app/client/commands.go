package client

import (
	"context"
	"fmt"

	"agroportal/internal/app/client/mutation"
	"agroportal/internal/domain/cart"
	"agroportal/internal/domain/dashboard"
	"agroportal/internal/domain/favorite"
	"agroportal/internal/domain/notification"
	"agroportal/internal/domain/order"
	"agroportal/internal/domain/wallet"
)

// AddToCart добавляет товар новой позицией с количеством 1.
// Сервер синхронизируется в фоне полной заменой корзины.
func (a *App) AddToCart(ctx context.Context, p cart.Product) *mutation.Pending {
	return a.engine.Execute(ctx, a.cartCommand("cart.add", func(items []cart.Item) ([]cart.Item, error) {
		next, _ := cart.Append(items, p)
		return next, nil
	}))
}

// UpdateQuantity меняет количество позиции. Неположительное количество отклоняется.
func (a *App) UpdateQuantity(ctx context.Context, localID string, quantity int) *mutation.Pending {
	return a.engine.Execute(ctx, a.cartCommand("cart.quantity", func(items []cart.Item) ([]cart.Item, error) {
		return cart.SetQuantity(items, localID, quantity)
	}))
}

func (a *App) RemoveFromCart(ctx context.Context, localID string) *mutation.Pending {
	return a.engine.Execute(ctx, a.cartCommand("cart.remove", func(items []cart.Item) ([]cart.Item, error) {
		return cart.Remove(items, localID)
	}))
}

func (a *App) ClearCart(ctx context.Context) *mutation.Pending {
	return a.engine.Execute(ctx, a.cartCommand("cart.clear", func([]cart.Item) ([]cart.Item, error) {
		return []cart.Item{}, nil
	}))
}

// cartCommand локальное изменение корзины остается даже при ошибке сервера
func (a *App) cartCommand(name string, change func([]cart.Item) ([]cart.Item, error)) mutation.Command {
	return mutation.Command{
		Name:   name,
		Policy: mutation.KeepOptimistic,
		Roles:  buyerOnly,
		Apply: func() error {
			var applyErr error
			a.collections.cart.Update(func(items []cart.Item) []cart.Item {
				next, err := change(items)
				if err != nil {
					applyErr = err
					return items
				}
				return next
			})
			return applyErr
		},
		Remote: a.cartSync.Sync,
	}
}

// ToggleFavorite добавляет товар в избранное или убирает его оттуда.
// При ошибке сервера возвращаются значения до переключения, если их не изменила
// более поздняя операция.
func (a *App) ToggleFavorite(ctx context.Context, productID string) *mutation.Pending {
	var (
		added      bool
		prevCount  int
		wroteCount int
	)

	return a.engine.Execute(ctx, mutation.Command{
		Name:   "favorites.toggle",
		Policy: mutation.Rollback,
		Roles:  buyerOnly,
		Apply: func() error {
			a.collections.favorites.Update(func(s favorite.Set) favorite.Set {
				added = !s.Has(productID)
				if added {
					return s.With(productID)
				}
				return s.Without(productID)
			})
			a.collections.dashboard.Update(func(s dashboard.Stats) dashboard.Stats {
				prevCount = s.FavoritesCount
				s = s.BumpFavorites(favoriteDelta(added))
				wroteCount = s.FavoritesCount
				return s
			})
			return nil
		},
		Remote: func(ctx context.Context) error {
			return a.favoriteSync.Toggle(ctx, productID, added)
		},
		Compensate: func() {
			a.collections.favorites.Update(func(s favorite.Set) favorite.Set {
				return s.Restore(productID, added, !added)
			})
			a.collections.dashboard.Update(func(s dashboard.Stats) dashboard.Stats {
				return s.RestoreFavorites(wroteCount, prevCount)
			})
		},
		OnSuccess: func(ctx context.Context) {
			a.refreshQuietly(ctx, CollectionDashboard)
		},
		FailureMessage: "Не удалось обновить избранное",
	})
}

func favoriteDelta(added bool) int {
	if added {
		return 1
	}
	return -1
}

// TopUp пополняет кошелек. Баланс меняется только после подтверждения сервером.
func (a *App) TopUp(ctx context.Context, amount float64) *mutation.Pending {
	var confirmed wallet.Balance

	return a.engine.Execute(ctx, mutation.Command{
		Name:   "wallet.topup",
		Policy: mutation.ConfirmFirst,
		Roles:  buyerOnly,
		Apply: func() error {
			return wallet.ValidateTopUp(amount)
		},
		Remote: func(ctx context.Context) error {
			balance, err := a.api.TopUp(ctx, amount)
			if err != nil {
				return err
			}
			confirmed = balance
			return nil
		},
		Commit: func() {
			a.collections.wallet.Update(func(wallet.Balance) wallet.Balance { return confirmed })
		},
		SuccessMessage: fmt.Sprintf("Кошелек пополнен на %.2f", amount),
		FailureMessage: "Не удалось пополнить кошелек",
	})
}

// MarkNotificationRead помечает уведомление прочитанным
func (a *App) MarkNotificationRead(ctx context.Context, id string) *mutation.Pending {
	var wasUnread bool

	return a.engine.Execute(ctx, mutation.Command{
		Name:   "notifications.read",
		Policy: mutation.Rollback,
		Roles:  anyRole,
		Apply: func() error {
			n, _, ok := a.collections.notifications.Snapshot().Find(id)
			if !ok {
				return fmt.Errorf("%w: %s", notification.ErrNotFound, id)
			}
			wasUnread = !n.Read
			a.collections.notifications.Update(func(f notification.Feed) notification.Feed {
				out, _ := f.MarkRead(id)
				return out
			})
			return nil
		},
		Remote: func(ctx context.Context) error {
			return a.api.MarkNotificationRead(ctx, id)
		},
		Compensate: func() {
			if wasUnread {
				a.collections.notifications.Update(func(f notification.Feed) notification.Feed {
					return f.MarkUnread(id)
				})
			}
		},
		FailureMessage: "Не удалось отметить уведомление",
	})
}

func (a *App) MarkAllNotificationsRead(ctx context.Context) *mutation.Pending {
	var unread []string

	return a.engine.Execute(ctx, mutation.Command{
		Name:   "notifications.read_all",
		Policy: mutation.Rollback,
		Roles:  anyRole,
		Apply: func() error {
			a.collections.notifications.Update(func(f notification.Feed) notification.Feed {
				unread = f.UnreadIDs()
				return f.MarkAllRead()
			})
			return nil
		},
		Remote: a.api.MarkAllNotificationsRead,
		Compensate: func() {
			a.collections.notifications.Update(func(f notification.Feed) notification.Feed {
				return f.MarkUnread(unread...)
			})
		},
		SuccessMessage: "Все уведомления прочитаны",
		FailureMessage: "Не удалось отметить уведомления",
	})
}

func (a *App) DeleteNotification(ctx context.Context, id string) *mutation.Pending {
	var (
		removed notification.Notification
		index   int
	)

	return a.engine.Execute(ctx, mutation.Command{
		Name:   "notifications.delete",
		Policy: mutation.Rollback,
		Roles:  anyRole,
		Apply: func() error {
			var ok bool
			removed, index, ok = a.collections.notifications.Snapshot().Find(id)
			if !ok {
				return fmt.Errorf("%w: %s", notification.ErrNotFound, id)
			}
			a.collections.notifications.Update(func(f notification.Feed) notification.Feed {
				out, _ := f.Delete(id)
				return out
			})
			return nil
		},
		Remote: func(ctx context.Context) error {
			return a.api.DeleteNotification(ctx, id)
		},
		Compensate: func() {
			a.collections.notifications.Update(func(f notification.Feed) notification.Feed {
				return f.Insert(index, removed)
			})
		},
		FailureMessage: "Не удалось удалить уведомление",
	})
}

// PlaceOrder оформляет заказ из текущей корзины. Локально ничего не меняется до ответа сервера,
// после успеха перезагружаются корзина, заказы, кошелек и статистика.
func (a *App) PlaceOrder(ctx context.Context, paymentMethod, address string) *mutation.Pending {
	var (
		req     order.PlaceRequest
		created order.Order
	)

	return a.engine.Execute(ctx, mutation.Command{
		Name:   "orders.place",
		Policy: mutation.ConfirmFirst,
		Roles:  buyerOnly,
		Apply: func() error {
			items := a.collections.cart.Snapshot()
			if len(items) == 0 {
				return order.ErrEmptyCart
			}
			req = order.PlaceRequest{
				Lines:         order.LinesFromCart(items),
				PaymentMethod: paymentMethod,
				Address:       address,
			}
			return nil
		},
		Remote: func(ctx context.Context) error {
			o, err := a.api.PlaceOrder(ctx, req)
			if err != nil {
				return err
			}
			created = o
			return nil
		},
		Commit: func() {
			a.collections.orders.Update(func(orders []order.Order) []order.Order {
				return append([]order.Order{created}, orders...)
			})
		},
		OnSuccess: func(ctx context.Context) {
			a.refreshQuietly(ctx, CollectionCart, CollectionOrders, CollectionWallet, CollectionDashboard)
		},
		SuccessMessage: "Заказ оформлен",
		FailureMessage: "Не удалось оформить заказ",
	})
}

func (a *App) refreshQuietly(ctx context.Context, names ...Collection) {
	if err := a.Refresh(ctx, names...); err != nil {
		a.log.Warn("Не удалось обновить коллекции", "collections", names, "error", err)
	}
}
