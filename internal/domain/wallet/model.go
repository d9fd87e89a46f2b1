package wallet

import (
	"errors"
	"fmt"
	"time"
)

var ErrInvalidAmount = errors.New("top-up amount must be positive")

// Balance баланс кошелька. Владелец значения - сервер.
type Balance struct {
	Amount    float64   `json:"amount"`
	Currency  string    `json:"currency,omitempty"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ValidateTopUp проверяет сумму пополнения до обращения к серверу
func ValidateTopUp(amount float64) error {
	if amount <= 0 {
		return fmt.Errorf("%w: got %.2f", ErrInvalidAmount, amount)
	}
	return nil
}
