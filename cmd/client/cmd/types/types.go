package types

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"agroportal/internal/app/client"
	"agroportal/internal/app/client/mutation"
)

type contextKey string

// ClientAppKey ключ, под которым корневая команда кладет приложение в контекст
const ClientAppKey contextKey = "app"

// App достает приложение из контекста команды
func App(cmd *cobra.Command) (*client.App, error) {
	app, ok := cmd.Context().Value(ClientAppKey).(*client.App)
	if !ok || app == nil {
		return nil, fmt.Errorf("приложение не инициализировано")
	}
	return app, nil
}

// RequireSession ошибка, если пользователь не вошел
func RequireSession(app *client.App) error {
	if !app.IsAuthenticated() {
		return fmt.Errorf("нет активной сессии, выполните: agroportal auth login")
	}
	return nil
}

// Await ждет ответа сервера по операции. Пропущенная операция считается ошибкой,
// в консоли нет смысла молча ничего не делать.
func Await(ctx context.Context, p *mutation.Pending) error {
	if err := p.Wait(ctx); err != nil {
		return err
	}
	if p.Skipped() {
		return fmt.Errorf("операция недоступна для текущей сессии")
	}
	return nil
}
