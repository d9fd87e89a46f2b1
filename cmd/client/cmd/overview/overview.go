package overview

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"agroportal/cmd/client/cmd/output"
	"agroportal/cmd/client/cmd/types"
	"agroportal/internal/app/client"
)

var DashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Сводка покупателя",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := types.App(cmd)
		if err != nil {
			return err
		}
		if err := types.RequireSession(app); err != nil {
			return err
		}

		stats := app.Dashboard()
		balance := app.Wallet()
		return output.Print(stats, func(w io.Writer) {
			output.Header("Дашборд")
			fmt.Fprintf(w, "Заказов:           %d\n", stats.TotalOrders)
			fmt.Fprintf(w, "Потрачено:         %.2f\n", stats.TotalSpent)
			fmt.Fprintf(w, "Позиций в корзине: %d\n", len(app.Cart()))
			fmt.Fprintf(w, "В избранном:       %d\n", stats.FavoritesCount)
			fmt.Fprintf(w, "Баланс:            %.2f %s\n", balance.Amount, balance.Currency)
			fmt.Fprintf(w, "Непрочитанных:     %d\n", app.UnreadCount())
		})
	},
}

var WeatherCmd = &cobra.Command{
	Use:   "weather",
	Short: "Погода для фермера",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := types.App(cmd)
		if err != nil {
			return err
		}
		if err := types.RequireSession(app); err != nil {
			return err
		}
		if err := app.LastError(client.CollectionWeather); err != nil {
			output.Warn("прогноз не обновлен: %v", err)
		}

		report := app.Weather()
		return output.Print(report, func(w io.Writer) {
			if report.Location == "" {
				fmt.Fprintln(w, "Прогноз доступен только фермерам")
				return
			}
			fmt.Fprintf(w, "%s: %.0f°C, %s, влажность %d%%\n", report.Location, report.TemperatureC, report.Condition, report.Humidity)
			for _, d := range report.Forecast {
				fmt.Fprintf(w, "  %s  %.0f..%.0f°C  %s\n", d.Date.Format("02.01"), d.MinC, d.MaxC, d.Condition)
			}
		})
	},
}

var UsersCmd = &cobra.Command{
	Use:   "users",
	Short: "Справочник пользователей (только ADMIN)",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := types.App(cmd)
		if err != nil {
			return err
		}
		if err := types.RequireSession(app); err != nil {
			return err
		}

		users := app.Users()
		return output.Print(users, func(w io.Writer) {
			output.Table(w, "EMAIL\tИМЯ\tРОЛЬ\tАКТИВЕН", func(tw io.Writer) {
				for _, u := range users {
					fmt.Fprintf(tw, "%s\t%s\t%s\t%t\n", u.Email, u.Name, u.Role, u.Active)
				}
			})
		})
	},
}
