package product

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) listOp() huma.Operation {
	return huma.Operation{
		OperationID: "products-list",
		Method:      http.MethodGet,
		Path:        "/api/v1/products",
		Summary:     "Каталог товаров",
		Tags:        []string{"products"},
		Middlewares: h.middleware,
	}
}
