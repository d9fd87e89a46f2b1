package market

import (
	"context"
	"fmt"

	"agroportal/internal/domain/notification"
	"agroportal/internal/domain/wallet"
)

const currency = "RUB"

func (s *Store) Wallet(_ context.Context, userID string) (wallet.Balance, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.faultLocked(OpWalletGet); err != nil {
		return wallet.Balance{}, err
	}
	acc, err := s.accountLocked(userID)
	if err != nil {
		return wallet.Balance{}, err
	}
	return s.balanceLocked(acc), nil
}

// TopUp пополняет кошелек и возвращает новый баланс
func (s *Store) TopUp(_ context.Context, userID string, amount float64) (wallet.Balance, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.faultLocked(OpWalletTopUp); err != nil {
		return wallet.Balance{}, err
	}
	if err := wallet.ValidateTopUp(amount); err != nil {
		return wallet.Balance{}, fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	acc, err := s.accountLocked(userID)
	if err != nil {
		return wallet.Balance{}, err
	}

	acc.balance += amount
	s.notifyLocked(acc, "wallet", "Пополнение кошелька", fmt.Sprintf("Зачислено %.2f %s", amount, currency), notification.PriorityMedium)
	return s.balanceLocked(acc), nil
}

func (s *Store) balanceLocked(acc *account) wallet.Balance {
	return wallet.Balance{
		Amount:    acc.balance,
		Currency:  currency,
		UpdatedAt: s.now().UTC(),
	}
}
