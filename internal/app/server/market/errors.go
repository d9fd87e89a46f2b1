package market

import "errors"

var (
	ErrNotFound          = errors.New("not found")
	ErrInvalid           = errors.New("invalid request")
	ErrConflict          = errors.New("already exists")
	ErrUnauthorized      = errors.New("invalid credentials")
	ErrInsufficientFunds = errors.New("insufficient wallet balance")
	ErrInjected          = errors.New("injected failure")
)
