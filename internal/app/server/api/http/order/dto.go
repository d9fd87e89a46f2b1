package order

import (
	"agroportal/internal/domain/dashboard"
	"agroportal/internal/domain/order"
)

type listInput struct{}

type listOutput struct {
	Body order.ListResponse
}

type placeInput struct {
	Body order.PlaceRequest
}

type placeOutput struct {
	Body order.Order
}

type statsInput struct{}

type statsOutput struct {
	Body dashboard.Stats
}
