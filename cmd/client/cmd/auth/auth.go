package auth

import (
	"github.com/spf13/cobra"
)

// AuthCmd - родительская команда для всех операций с сессией пользователя
var AuthCmd = &cobra.Command{
	Use:   "auth",
	Short: "Управление сессией",
	Long:  `Вход, выход, регистрация и статус текущей сессии.`,
}
