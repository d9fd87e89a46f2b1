// cmd/client/cmd/auth/register.go
package auth

import (
	"fmt"

	"github.com/spf13/cobra"

	"agroportal/cmd/client/cmd/output"
	"agroportal/cmd/client/cmd/types"
	"agroportal/internal/domain/session"
)

const minPasswordLength = 6

var (
	registerName     string
	registerEmail    string
	registerRole     string
	registerPhone    string
	registerLocation string
)

var RegisterCmd = &cobra.Command{
	Use:   "register",
	Short: "Зарегистрировать нового пользователя",
	Long: `Регистрация нового пользователя на сервере AgroPortal.

Роль: BUYER (покупатель), FARMER (фермер) или ADMIN.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := types.App(cmd)
		if err != nil {
			return err
		}

		output.Header("Регистрация нового пользователя")

		if registerName == "" {
			registerName = promptLine("Имя: ")
		}
		if registerEmail == "" {
			registerEmail = promptLine("Email: ")
		}

		password, err := promptPassword("Пароль: ")
		if err != nil {
			return err
		}
		passwordConfirm, err := promptPassword("Повторите пароль: ")
		if err != nil {
			return err
		}
		if password != passwordConfirm {
			return fmt.Errorf("пароли не совпадают")
		}
		if len(password) < minPasswordLength {
			return fmt.Errorf("пароль должен содержать минимум %d символов", minPasswordLength)
		}

		err = app.Register(cmd.Context(), session.RegisterRequest{
			Name:     registerName,
			Email:    registerEmail,
			Password: password,
			Role:     session.Role(registerRole),
			Phone:    registerPhone,
			Location: registerLocation,
		})
		if err != nil {
			return err
		}

		output.Success("Регистрация успешно завершена")
		fmt.Println("Теперь вы можете войти в систему: agroportal auth login")
		return nil
	},
}

func init() {
	RegisterCmd.Flags().StringVar(&registerName, "name", "", "имя")
	RegisterCmd.Flags().StringVar(&registerEmail, "email", "", "email")
	RegisterCmd.Flags().StringVar(&registerRole, "role", string(session.RoleBuyer), "роль: BUYER, FARMER или ADMIN")
	RegisterCmd.Flags().StringVar(&registerPhone, "phone", "", "телефон")
	RegisterCmd.Flags().StringVar(&registerLocation, "location", "", "населенный пункт")
}
