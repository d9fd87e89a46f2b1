package favorites

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"agroportal/cmd/client/cmd/output"
	"agroportal/cmd/client/cmd/types"
)

// FavoritesCmd - родительская команда для избранного
var FavoritesCmd = &cobra.Command{
	Use:   "favorites",
	Short: "Избранные товары",
}

var ListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "Показать избранное",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := types.App(cmd)
		if err != nil {
			return err
		}
		if err := types.RequireSession(app); err != nil {
			return err
		}

		ids := app.Favorites().IDs()
		return output.Print(ids, func(w io.Writer) {
			if len(ids) == 0 {
				fmt.Fprintln(w, "Избранное пусто")
				return
			}
			for _, id := range ids {
				fmt.Fprintf(w, "★ %s\n", id)
			}
			fmt.Fprintf(w, "\nВсего: %d\n", app.Dashboard().FavoritesCount)
		})
	},
}

var ToggleCmd = &cobra.Command{
	Use:   "toggle <product-id>",
	Short: "Добавить в избранное или убрать из него",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := types.App(cmd)
		if err != nil {
			return err
		}
		if err := types.RequireSession(app); err != nil {
			return err
		}

		if err := types.Await(cmd.Context(), app.ToggleFavorite(cmd.Context(), args[0])); err != nil {
			return err
		}

		if app.IsFavorite(args[0]) {
			output.Success("%s в избранном", args[0])
		} else {
			output.Success("%s убран из избранного", args[0])
		}
		return nil
	},
}
