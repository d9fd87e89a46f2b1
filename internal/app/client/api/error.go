package api

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrNoCredential запрос требует авторизации, а учетных данных нет. Сеть не трогаем.
var ErrNoCredential = errors.New("no credential for authenticated request")

// Error ошибка, которую вернул сервер
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("ошибка сервера: статус %d", e.Status)
	}
	return fmt.Sprintf("ошибка сервера (%d): %s", e.Status, e.Message)
}

// StatusOf достает HTTP статус из ошибки сервера, 0 если это не ошибка сервера
func StatusOf(err error) int {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Status
	}
	return 0
}

// IsUnauthorized сервер отверг учетные данные
func IsUnauthorized(err error) bool {
	return StatusOf(err) == http.StatusUnauthorized
}
