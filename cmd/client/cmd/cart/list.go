package cart

import (
	"github.com/spf13/cobra"

	"agroportal/cmd/client/cmd/types"
)

var ListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "Показать корзину и итоговую сумму",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := types.App(cmd)
		if err != nil {
			return err
		}
		if err := types.RequireSession(app); err != nil {
			return err
		}
		return printCart(app)
	},
}
