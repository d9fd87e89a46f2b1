package cart

import (
	"github.com/spf13/cobra"

	"agroportal/cmd/client/cmd/output"
	"agroportal/cmd/client/cmd/types"
)

var RemoveCmd = &cobra.Command{
	Use:     "remove <#>",
	Aliases: []string{"rm"},
	Short:   "Удалить позицию",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := types.App(cmd)
		if err != nil {
			return err
		}
		if err := types.RequireSession(app); err != nil {
			return err
		}

		item, err := itemAt(app, args[0])
		if err != nil {
			return err
		}
		if err := types.Await(cmd.Context(), app.RemoveFromCart(cmd.Context(), item.LocalID)); err != nil {
			return err
		}

		output.Success("%s удален из корзины", item.Name)
		return printCart(app)
	},
}

var ClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Очистить корзину",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := types.App(cmd)
		if err != nil {
			return err
		}
		if err := types.RequireSession(app); err != nil {
			return err
		}

		if err := types.Await(cmd.Context(), app.ClearCart(cmd.Context())); err != nil {
			return err
		}
		output.Success("Корзина очищена")
		return nil
	},
}
