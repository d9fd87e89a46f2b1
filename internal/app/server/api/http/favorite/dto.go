package favorite

import "agroportal/internal/domain/favorite"

type listInput struct{}

type listOutput struct {
	Body favorite.ListResponse
}

type productInput struct {
	ProductID string `path:"productId" doc:"Идентификатор товара"`
}
