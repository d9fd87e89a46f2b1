// Package mutation применяет пользовательские операции к локальным снимкам
// и подтверждает их на сервере в фоне.
package mutation

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"golang.org/x/exp/slog"

	"agroportal/internal/domain/session"
)

// Policy что делать с локальным состоянием, если сервер операцию не принял
type Policy int

const (
	// Rollback локальное изменение откатывается, пользователь получает уведомление
	Rollback Policy = iota
	// KeepOptimistic локальное изменение остается, ошибка только в логе
	KeepOptimistic
	// ConfirmFirst локальное состояние меняется только после ответа сервера
	ConfirmFirst
)

func (p Policy) String() string {
	switch p {
	case Rollback:
		return "rollback"
	case KeepOptimistic:
		return "keep-optimistic"
	case ConfirmFirst:
		return "confirm-first"
	}
	return fmt.Sprintf("policy(%d)", int(p))
}

// Command одна пользовательская операция.
// Apply выполняется синхронно: оптимистичная запись или, для ConfirmFirst, только проверка.
// Remote выполняется в фоне. Commit вызывается после успеха ConfirmFirst,
// Compensate после неудачи Rollback.
type Command struct {
	Name           string
	Policy         Policy
	Roles          session.Roles
	Apply          func() error
	Remote         func(ctx context.Context) error
	Compensate     func()
	Commit         func()
	OnSuccess      func(ctx context.Context)
	SuccessMessage string
	FailureMessage string
}

// Sessions источник текущей сессии
type Sessions interface {
	Current() *session.Session
	Epoch() uint64
	Lease() session.Lease
}

type Engine struct {
	sessions Sessions
	notifier Notifier
	log      *slog.Logger
	wg       sync.WaitGroup
}

func NewEngine(sessions Sessions, notifier Notifier, log *slog.Logger) *Engine {
	return &Engine{
		sessions: sessions,
		notifier: notifier,
		log:      log.With(slog.String("component", "mutation")),
	}
}

// Execute применяет команду. Без подходящей сессии команда пропускается без ошибки.
// Ошибка Apply возвращается сразу через Pending, сервер не вызывается.
// Remote получает контекст с закрепленной сессией, см. session.WithLease.
func (e *Engine) Execute(ctx context.Context, cmd Command) *Pending {
	lease := e.sessions.Lease()
	if !cmd.Roles.Allows(e.sessions.Current()) {
		e.log.Debug("Операция пропущена, нет подходящей сессии", "command", cmd.Name)
		return skipped()
	}

	if cmd.Apply != nil {
		if err := cmd.Apply(); err != nil {
			return resolved(err)
		}
	}

	p := newPending()
	e.wg.Add(1)
	go func() {
		defer e.wg.Done()
		p.resolve(e.run(session.WithLease(ctx, lease), cmd, lease.Epoch))
	}()
	return p
}

// Wait ждет завершения всех запущенных операций
func (e *Engine) Wait() {
	e.wg.Wait()
}

func (e *Engine) run(ctx context.Context, cmd Command, epoch uint64) error {
	err := cmd.Remote(ctx)

	// Сессия сменилась: снимки уже сброшены, трогать их нельзя
	if e.sessions.Epoch() != epoch {
		if err != nil {
			e.log.Warn("Операция завершилась после смены сессии", "command", cmd.Name, "error", err)
		}
		return err
	}

	if err != nil {
		e.fail(cmd, err)
		return fmt.Errorf("%s: %w", cmd.Name, err)
	}

	if cmd.Policy == ConfirmFirst && cmd.Commit != nil {
		cmd.Commit()
	}
	if cmd.OnSuccess != nil {
		cmd.OnSuccess(ctx)
	}
	if cmd.Policy != KeepOptimistic && cmd.SuccessMessage != "" {
		e.notifier.Notify(Notice{Level: LevelSuccess, Command: cmd.Name, Message: cmd.SuccessMessage})
	}
	return nil
}

func (e *Engine) fail(cmd Command, err error) {
	switch cmd.Policy {
	case Rollback:
		if cmd.Compensate != nil {
			cmd.Compensate()
		}
		e.notifyFailure(cmd, err)
	case KeepOptimistic:
		e.log.Warn("Сервер не принял изменение, локальное состояние сохранено", "command", cmd.Name, "error", err)
	case ConfirmFirst:
		e.notifyFailure(cmd, err)
	}
}

func (e *Engine) notifyFailure(cmd Command, err error) {
	msg := cmd.FailureMessage
	if msg == "" {
		msg = "Не удалось выполнить операцию"
	}
	if errors.Is(err, context.Canceled) {
		e.log.Debug("Операция отменена", "command", cmd.Name)
		return
	}
	e.notifier.Notify(Notice{Level: LevelFailure, Command: cmd.Name, Message: msg, Err: err})
}
