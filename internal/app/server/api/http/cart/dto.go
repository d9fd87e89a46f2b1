package cart

import "agroportal/internal/domain/cart"

type listInput struct{}

type listOutput struct {
	Body cart.ListResponse
}

type addInput struct {
	Body cart.AddRequest
}

type clearInput struct{}
