// cmd/client/cmd/auth/login.go
package auth

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"agroportal/cmd/client/cmd/output"
	"agroportal/cmd/client/cmd/types"
)

var (
	loginEmail    string
	loginPassword string
)

var LoginCmd = &cobra.Command{
	Use:   "login",
	Short: "Войти в AgroPortal",
	Long: `Аутентификация на сервере AgroPortal.

После входа сессия сохраняется локально, корзина, избранное, кошелек и
уведомления загружаются с сервера.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := types.App(cmd)
		if err != nil {
			return err
		}

		output.Header("Вход в систему")

		email := loginEmail
		if email == "" {
			email = promptLine("Email: ")
		}
		password := loginPassword
		if password == "" {
			password, err = promptPassword("Пароль: ")
			if err != nil {
				return err
			}
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()

		s, err := app.Login(ctx, email, password)
		if err != nil {
			return err
		}

		return output.Print(s.Profile, func(w io.Writer) {
			output.Success("Вход выполнен: %s (%s)", s.Profile.Name, s.Role)
			fmt.Fprintf(w, "Товаров в корзине: %d, непрочитанных уведомлений: %d\n", len(app.Cart()), app.UnreadCount())
		})
	},
}

func init() {
	LoginCmd.Flags().StringVarP(&loginEmail, "email", "e", "", "email пользователя")
	LoginCmd.Flags().StringVarP(&loginPassword, "password", "p", "", "пароль (по умолчанию запрашивается)")
}
