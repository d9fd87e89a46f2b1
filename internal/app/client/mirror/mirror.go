// Package mirror хранит локальные снимки серверных коллекций.
//
// Снимок всегда целиком принадлежит одной сессии. Загрузка проверяет сессию и роль,
// повторные параллельные загрузки схлопываются, а результат отбрасывается, если
// за время запроса сменилась сессия или локальная мутация уже переписала снимок.
package mirror

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"time"

	"golang.org/x/exp/slog"
	"golang.org/x/sync/singleflight"

	"agroportal/internal/domain/session"
)

// Sessions то, что зеркалу нужно знать о сессии
type Sessions interface {
	Current() *session.Session
	Epoch() uint64
}

// Options описание коллекции
type Options[T any] struct {
	Name    string
	Roles   session.Roles
	Default func() T
	Clone   func(T) T
	Fetch   func(ctx context.Context) (T, error)
}

// Mirror локальная копия одной серверной коллекции
type Mirror[T any] struct {
	name     string
	roles    session.Roles
	def      func() T
	clone    func(T) T
	fetch    func(ctx context.Context) (T, error)
	sessions Sessions
	log      *slog.Logger
	now      func() time.Time
	group    singleflight.Group

	mu        sync.RWMutex
	value     T
	version   uint64
	epoch     uint64
	loaded    bool
	lastErr   error
	updatedAt time.Time
	hooks     []func(T)
}

func New[T any](opts Options[T], sessions Sessions, log *slog.Logger) *Mirror[T] {
	if opts.Clone == nil {
		opts.Clone = func(v T) T { return v }
	}
	if opts.Default == nil {
		opts.Default = func() T {
			var zero T
			return zero
		}
	}

	return &Mirror[T]{
		name:     opts.Name,
		roles:    opts.Roles,
		def:      opts.Default,
		clone:    opts.Clone,
		fetch:    opts.Fetch,
		sessions: sessions,
		log:      log.With(slog.String("component", "mirror"), slog.String("collection", opts.Name)),
		now:      time.Now,
		value:    opts.Default(),
	}
}

func (m *Mirror[T]) Name() string {
	return m.name
}

// Allowed проверяет, можно ли загружать коллекцию для сессии
func (m *Mirror[T]) Allowed(s *session.Session) bool {
	return m.roles.Allows(s)
}

// Fetch загружает коллекцию с сервера. Если сессия не подходит, снимок сбрасывается
// в значение по умолчанию без обращения к сети.
func (m *Mirror[T]) Fetch(ctx context.Context) error {
	epoch := m.sessions.Epoch()
	if !m.roles.Allows(m.sessions.Current()) {
		m.log.Debug("Загрузка пропущена, сессия не подходит")
		m.Reset()
		return nil
	}

	_, err, _ := m.group.Do(strconv.FormatUint(epoch, 10), func() (interface{}, error) {
		return nil, m.load(ctx, epoch)
	})
	return err
}

func (m *Mirror[T]) load(ctx context.Context, epoch uint64) error {
	m.mu.RLock()
	version := m.version
	m.mu.RUnlock()

	fetched, err := m.fetch(ctx)

	m.mu.Lock()
	if m.sessions.Epoch() != epoch {
		m.mu.Unlock()
		m.log.Debug("Ответ отброшен, сессия сменилась")
		return nil
	}

	if err != nil {
		m.lastErr = err
		stale := !m.loaded || m.epoch != epoch
		if stale && m.version == version {
			m.value = m.def()
			m.epoch = epoch
		}
		m.version++
		value, hooks := m.clone(m.value), m.hooksLocked()
		m.mu.Unlock()

		m.log.Warn("Не удалось загрузить коллекцию", "error", err)
		m.notify(hooks, value)
		return fmt.Errorf("ошибка загрузки %s: %w", m.name, err)
	}

	if m.version != version {
		m.mu.Unlock()
		m.log.Debug("Ответ отброшен, снимок изменен локально")
		return nil
	}

	m.value = m.clone(fetched)
	m.epoch = epoch
	m.loaded = true
	m.lastErr = nil
	m.updatedAt = m.now()
	m.version++
	value, hooks := m.clone(m.value), m.hooksLocked()
	m.mu.Unlock()

	m.notify(hooks, value)
	return nil
}

// Snapshot копия текущего снимка
func (m *Mirror[T]) Snapshot() T {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.clone(m.value)
}

// Update единственный путь записи для мутаций. fn получает копию и возвращает новый снимок.
func (m *Mirror[T]) Update(fn func(T) T) T {
	m.mu.Lock()
	m.value = m.clone(fn(m.clone(m.value)))
	m.version++
	value, hooks := m.clone(m.value), m.hooksLocked()
	m.mu.Unlock()

	m.notify(hooks, value)
	return value
}

// Reset возвращает коллекцию к значению по умолчанию
func (m *Mirror[T]) Reset() {
	m.mu.Lock()
	m.value = m.def()
	m.loaded = false
	m.lastErr = nil
	m.updatedAt = time.Time{}
	m.version++
	value, hooks := m.clone(m.value), m.hooksLocked()
	m.mu.Unlock()

	m.notify(hooks, value)
}

// OnChange подписка на каждое изменение снимка
func (m *Mirror[T]) OnChange(fn func(T)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.hooks = append(m.hooks, fn)
}

// Loaded есть ли успешно загруженный снимок
func (m *Mirror[T]) Loaded() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.loaded
}

func (m *Mirror[T]) LastError() error {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.lastErr
}

func (m *Mirror[T]) UpdatedAt() time.Time {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.updatedAt
}

func (m *Mirror[T]) hooksLocked() []func(T) {
	hooks := make([]func(T), len(m.hooks))
	copy(hooks, m.hooks)
	return hooks
}

func (m *Mirror[T]) notify(hooks []func(T), value T) {
	for _, h := range hooks {
		h(m.clone(value))
	}
}
