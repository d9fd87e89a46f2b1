package client

import (
	"context"
	"fmt"
	"strings"

	"agroportal/internal/domain/session"
)

// Register регистрирует пользователя. Вход выполняется отдельно.
func (a *App) Register(ctx context.Context, req session.RegisterRequest) error {
	if err := session.NewRegisterValidator().Validate(&req); err != nil {
		return fmt.Errorf("некорректные данные регистрации: %w", err)
	}

	if err := a.api.Register(ctx, req); err != nil {
		return fmt.Errorf("ошибка регистрации: %w", err)
	}
	return nil
}

// Login входит под пользователем и делает его сессию текущей
func (a *App) Login(ctx context.Context, email, password string) (*session.Session, error) {
	s, err := a.api.Login(ctx, session.LoginRequest{
		Email:    strings.TrimSpace(email),
		Password: password,
	})
	if err != nil {
		return nil, fmt.Errorf("ошибка входа: %w", err)
	}

	if _, ok := session.ParseRole(string(s.Role)); !ok || !s.HasCredential() {
		return nil, fmt.Errorf("сервер вернул некорректную сессию")
	}

	if err := a.sessions.Set(ctx, s); err != nil {
		return nil, err
	}
	return a.sessions.Current(), nil
}

// Logout завершает сессию: сохраненные данные удаляются, снимки сбрасываются, опрос останавливается
func (a *App) Logout(ctx context.Context) error {
	return a.sessions.Set(ctx, nil)
}
