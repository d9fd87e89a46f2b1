// Package reconcile переносит локальные изменения коллекций на сервер.
package reconcile

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/exp/slog"

	"agroportal/internal/domain/cart"
	"agroportal/internal/domain/session"
)

// CartRemote серверные операции корзины
type CartRemote interface {
	ClearCart(ctx context.Context) error
	AddCartItem(ctx context.Context, productID string, quantity int) error
}

// Leases источник текущей сессии
type Leases interface {
	Lease() session.Lease
}

type waiter struct {
	seq   uint64
	epoch uint64
	ch    chan error
}

// FullReplace приводит серверную корзину к локальному снимку: очистка, затем
// добавление каждой позиции по порядку. Прогоны не перекрываются. Запросы,
// пришедшие во время прогона, схлопываются в один следующий прогон по свежему снимку.
// Прогон идет под одной сессией: при ее смене он прерывается, а запросы
// прежней сессии получают session.ErrSessionChanged.
type FullReplace struct {
	remote   CartRemote
	snapshot func() []cart.Item
	sessions Leases
	log      *slog.Logger

	mu        sync.Mutex
	running   bool
	requested uint64
	waiters   []waiter
}

func NewFullReplace(remote CartRemote, snapshot func() []cart.Item, sessions Leases, log *slog.Logger) *FullReplace {
	return &FullReplace{
		remote:   remote,
		snapshot: snapshot,
		sessions: sessions,
		log:      log.With(slog.String("component", "reconcile"), slog.String("collection", "cart")),
	}
}

// Sync запрашивает синхронизацию и ждет прогон, начавшийся после запроса.
// Сессия берется из ctx (session.WithLease), иначе текущая.
// Отмена ctx прекращает ожидание, но не сам прогон.
func (r *FullReplace) Sync(ctx context.Context) error {
	current := r.sessions.Lease()
	lease, ok := session.LeaseFrom(ctx)
	if !ok {
		lease = current
	}
	if lease.Epoch != current.Epoch {
		return fmt.Errorf("синхронизация корзины: %w", session.ErrSessionChanged)
	}

	ch := make(chan error, 1)

	r.mu.Lock()
	r.requested++
	r.waiters = append(r.waiters, waiter{seq: r.requested, epoch: lease.Epoch, ch: ch})
	if !r.running {
		r.running = true
		go r.loop(context.WithoutCancel(ctx))
	}
	r.mu.Unlock()

	select {
	case err := <-ch:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (r *FullReplace) loop(ctx context.Context) {
	for {
		lease := r.sessions.Lease()

		r.mu.Lock()
		r.resolve(func(w waiter) bool { return w.epoch != lease.Epoch }, session.ErrSessionChanged)
		if len(r.waiters) == 0 {
			r.running = false
			r.mu.Unlock()
			return
		}
		target := r.requested
		r.mu.Unlock()

		err := r.run(session.WithLease(ctx, lease), lease.Epoch, r.snapshot())

		r.mu.Lock()
		r.resolve(func(w waiter) bool { return w.seq <= target }, err)
		r.mu.Unlock()
	}
}

// resolve отдает err ожидающим, подходящим под match. Вызывается под r.mu.
func (r *FullReplace) resolve(match func(waiter) bool, err error) {
	pending := r.waiters[:0]
	for _, w := range r.waiters {
		if match(w) {
			w.ch <- err
			continue
		}
		pending = append(pending, w)
	}
	r.waiters = pending
}

func (r *FullReplace) run(ctx context.Context, epoch uint64, items []cart.Item) error {
	r.log.Debug("Синхронизация корзины", "items", len(items))

	if err := r.sameSession(epoch); err != nil {
		return err
	}
	if err := r.remote.ClearCart(ctx); err != nil {
		return fmt.Errorf("ошибка очистки корзины: %w", err)
	}
	for i, it := range items {
		if err := r.sameSession(epoch); err != nil {
			return err
		}
		if err := r.remote.AddCartItem(ctx, it.ProductID, it.Quantity); err != nil {
			return fmt.Errorf("ошибка добавления позиции %d (%s): %w", i, it.ProductID, err)
		}
	}
	return nil
}

func (r *FullReplace) sameSession(epoch uint64) error {
	if r.sessions.Lease().Epoch != epoch {
		r.log.Debug("Сессия сменилась, синхронизация корзины прервана")
		return fmt.Errorf("синхронизация корзины прервана: %w", session.ErrSessionChanged)
	}
	return nil
}
