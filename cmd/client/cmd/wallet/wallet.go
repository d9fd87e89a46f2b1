package wallet

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"agroportal/cmd/client/cmd/output"
	"agroportal/cmd/client/cmd/types"
	"agroportal/internal/app/client"
)

// WalletCmd - родительская команда для кошелька
var WalletCmd = &cobra.Command{
	Use:   "wallet",
	Short: "Кошелек покупателя",
}

var ShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Показать баланс",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := types.App(cmd)
		if err != nil {
			return err
		}
		if err := types.RequireSession(app); err != nil {
			return err
		}
		if err := app.LastError(client.CollectionWallet); err != nil {
			output.Warn("баланс не обновлен: %v", err)
		}
		return printBalance(app)
	},
}

var TopUpCmd = &cobra.Command{
	Use:   "topup <amount>",
	Short: "Пополнить кошелек",
	Long:  `Баланс меняется только после подтверждения сервером.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := types.App(cmd)
		if err != nil {
			return err
		}
		if err := types.RequireSession(app); err != nil {
			return err
		}

		amount, err := strconv.ParseFloat(args[0], 64)
		if err != nil {
			return fmt.Errorf("сумма должна быть числом: %q", args[0])
		}

		if err := types.Await(cmd.Context(), app.TopUp(cmd.Context(), amount)); err != nil {
			return err
		}
		return printBalance(app)
	},
}

func printBalance(app *client.App) error {
	balance := app.Wallet()
	return output.Print(balance, func(w io.Writer) {
		fmt.Fprintf(w, "Баланс: %.2f %s\n", balance.Amount, balance.Currency)
	})
}
