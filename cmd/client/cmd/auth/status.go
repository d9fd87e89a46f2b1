package auth

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"agroportal/cmd/client/cmd/output"
	"agroportal/cmd/client/cmd/types"
)

var StatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Показать текущую сессию",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := types.App(cmd)
		if err != nil {
			return err
		}

		s := app.Session()
		if s == nil {
			return output.Print(map[string]any{"authenticated": false}, func(w io.Writer) {
				fmt.Fprintln(w, "Сессии нет")
			})
		}

		return output.Print(s.Profile, func(w io.Writer) {
			fmt.Fprintf(w, "Пользователь: %s <%s>\n", s.Profile.Name, s.Profile.Email)
			fmt.Fprintf(w, "Роль:         %s\n", s.Role)
			if s.Profile.Location != "" {
				fmt.Fprintf(w, "Населенный пункт: %s\n", s.Profile.Location)
			}
			fmt.Fprintf(w, "Опрос:        %s\n", strings.Join(app.Polling(), ", "))
			if err := app.CheckConnection(cmd.Context()); err != nil {
				output.Warn("сервер недоступен: %v", err)
			}
		})
	},
}
