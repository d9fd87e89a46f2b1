package wallet

import "agroportal/internal/domain/wallet"

type getInput struct{}

type balanceOutput struct {
	Body wallet.Balance
}

type topUpInput struct {
	Body wallet.TopUpRequest
}
