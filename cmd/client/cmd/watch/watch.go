package watch

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"agroportal/cmd/client/cmd/types"
	"agroportal/internal/domain/notification"
	"agroportal/internal/domain/wallet"
	"agroportal/internal/domain/weather"
)

var WatchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Следить за кошельком, уведомлениями и погодой",
	Long: `Держит сессию открытой и печатает изменения, которые приносит опрос:
кошелек раз в 5 секунд, уведомления раз в 30 секунд, погода раз в 30 минут.
Завершается по Ctrl+C.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := types.App(cmd)
		if err != nil {
			return err
		}
		if err := types.RequireSession(app); err != nil {
			return err
		}

		stamp := color.New(color.FgHiBlack)
		ts := func() string { return stamp.Sprint(time.Now().Format("15:04:05")) }

		lastBalance := app.Wallet().Amount
		app.OnWalletChange(func(b wallet.Balance) {
			if b.Amount != lastBalance {
				fmt.Printf("%s Баланс: %.2f %s\n", ts(), b.Amount, b.Currency)
				lastBalance = b.Amount
			}
		})

		lastUnread := app.UnreadCount()
		app.OnNotificationsChange(func(f notification.Feed) {
			unread := notification.UnreadCount(f.Items)
			if unread != lastUnread {
				fmt.Printf("%s Непрочитанных уведомлений: %d\n", ts(), unread)
				lastUnread = unread
			}
		})

		app.OnWeatherChange(func(r weather.Report) {
			if r.Location != "" {
				fmt.Printf("%s Погода %s: %.0f°C, %s\n", ts(), r.Location, r.TemperatureC, r.Condition)
			}
		})

		fmt.Printf("%s Наблюдение запущено (%v), Ctrl+C для выхода\n", ts(), app.Polling())
		return app.Run(cmd.Context())
	},
}
