package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"golang.org/x/exp/slog"
)

// Listener вызывается после каждой смены сессии. prev и next - копии, их можно хранить.
type Listener func(ctx context.Context, prev, next *Session)

// Store единственный владелец текущей сессии. Остальные компоненты только читают ее.
type Store struct {
	repo      Repository
	log       *slog.Logger
	now       func() time.Time
	mu        sync.RWMutex
	current   *Session
	epoch     uint64
	listeners []Listener
}

func NewStore(repo Repository, log *slog.Logger) *Store {
	return &Store{
		repo: repo,
		log:  log.With(slog.String("component", "session")),
		now:  time.Now,
	}
}

// Subscribe добавляет слушателя смены сессии
func (s *Store) Subscribe(l Listener) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, l)
}

// Current возвращает копию текущей сессии или nil
func (s *Store) Current() *Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current.Clone()
}

// Epoch номер поколения сессии. Меняется при каждом Set.
func (s *Store) Epoch() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.epoch
}

// Credential возвращает учетные данные текущей сессии
func (s *Store) Credential() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return ""
	}
	return s.current.Credential
}

// Lease учетные данные и поколение, прочитанные атомарно
func (s *Store) Lease() Lease {
	s.mu.RLock()
	defer s.mu.RUnlock()
	l := Lease{Epoch: s.epoch}
	if s.current != nil {
		l.Credential = s.current.Credential
	}
	return l
}

// Set заменяет сессию целиком. Непустая сессия сначала сохраняется в хранилище,
// и только потом оповещаются слушатели. nil очищает хранилище.
func (s *Store) Set(ctx context.Context, next *Session) error {
	next = next.Clone()

	if next != nil {
		if err := s.repo.Save(ctx, next); err != nil {
			return fmt.Errorf("ошибка сохранения сессии: %w", err)
		}
	} else if err := s.repo.Clear(ctx); err != nil {
		// Локальное состояние все равно сбрасываем, иначе пользователь не сможет выйти
		s.log.Warn("Не удалось очистить сохраненную сессию", "error", err)
	}

	s.swap(ctx, next)
	return nil
}

// Restore пытается восстановить сессию из хранилища при старте процесса.
// Поврежденные или просроченные данные означают "сессии нет", ошибка наружу не уходит.
func (s *Store) Restore(ctx context.Context) *Session {
	restored, err := s.repo.Load(ctx)
	if err == nil {
		err = validateRestored(restored, s.now())
	}

	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			s.log.Debug("Сохраненной сессии нет")
		default:
			s.log.Warn("Сохраненная сессия отброшена", "error", err)
			if cerr := s.repo.Clear(ctx); cerr != nil {
				s.log.Warn("Не удалось очистить сохраненную сессию", "error", cerr)
			}
		}
		return nil
	}

	s.log.Info("Сессия восстановлена", "identity", restored.IdentityID, "role", restored.Role)
	s.swap(ctx, restored)
	return restored.Clone()
}

func (s *Store) swap(ctx context.Context, next *Session) {
	s.mu.Lock()
	prev := s.current
	s.current = next
	s.epoch++
	listeners := make([]Listener, len(s.listeners))
	copy(listeners, s.listeners)
	s.mu.Unlock()

	for _, l := range listeners {
		l(ctx, prev.Clone(), next.Clone())
	}
}
