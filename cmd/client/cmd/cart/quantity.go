package cart

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"agroportal/cmd/client/cmd/types"
)

var QuantityCmd = &cobra.Command{
	Use:   "qty <#> <quantity>",
	Short: "Изменить количество в позиции",
	Args:  cobra.ExactArgs(2),
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
		quantity, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("количество должно быть числом: %q", args[1])
		}

		if err := types.Await(cmd.Context(), app.UpdateQuantity(cmd.Context(), item.LocalID, quantity)); err != nil {
			return err
		}
		return printCart(app)
	},
}
