package auth

import (
	"github.com/spf13/cobra"

	"agroportal/cmd/client/cmd/output"
	"agroportal/cmd/client/cmd/types"
)

var LogoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Выйти и удалить сохраненную сессию",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := types.App(cmd)
		if err != nil {
			return err
		}

		if err := app.Logout(cmd.Context()); err != nil {
			return err
		}
		output.Success("Сессия завершена")
		return nil
	},
}
