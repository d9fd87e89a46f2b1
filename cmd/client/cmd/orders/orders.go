package orders

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"agroportal/cmd/client/cmd/output"
	"agroportal/cmd/client/cmd/types"
	"agroportal/internal/domain/order"
)

var (
	paymentMethod string
	address       string
)

// OrdersCmd - родительская команда для заказов
var OrdersCmd = &cobra.Command{
	Use:   "orders",
	Short: "Заказы покупателя",
}

var ListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "Показать заказы",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := types.App(cmd)
		if err != nil {
			return err
		}
		if err := types.RequireSession(app); err != nil {
			return err
		}
		return printOrders(app.Orders())
	},
}

var PlaceCmd = &cobra.Command{
	Use:   "place",
	Short: "Оформить заказ из текущей корзины",
	Long: `Заказ оформляется из содержимого корзины. После подтверждения сервером
корзина, список заказов, кошелек и статистика загружаются заново.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := types.App(cmd)
		if err != nil {
			return err
		}
		if err := types.RequireSession(app); err != nil {
			return err
		}

		totals := app.CartTotals()
		if err := types.Await(cmd.Context(), app.PlaceOrder(cmd.Context(), paymentMethod, address)); err != nil {
			return err
		}

		if !output.JSON() {
			fmt.Printf("Списано: %.2f, остаток: %.2f\n", totals.Total, app.Wallet().Amount)
		}
		return printOrders(app.Orders())
	},
}

func printOrders(orders []order.Order) error {
	return output.Print(orders, func(w io.Writer) {
		if len(orders) == 0 {
			fmt.Fprintln(w, "Заказов нет")
			return
		}
		output.Table(w, "ЗАКАЗ\tДАТА\tПОЗИЦИЙ\tСУММА\tСТАТУС", func(tw io.Writer) {
			for _, o := range orders {
				fmt.Fprintf(tw, "%s\t%s\t%d\t%.2f\t%s\n", shortID(o.ID), o.CreatedAt.Local().Format("02.01.2006 15:04"), len(o.Lines), o.Total, o.Status)
			}
		})
	})
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func init() {
	PlaceCmd.Flags().StringVar(&paymentMethod, "payment", "wallet", "способ оплаты")
	PlaceCmd.Flags().StringVar(&address, "address", "", "адрес доставки")
}
