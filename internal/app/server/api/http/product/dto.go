package product

import "agroportal/internal/domain/cart"

type listInput struct{}

type listOutput struct {
	Body cart.ProductListResponse
}
