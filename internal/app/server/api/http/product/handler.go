package product

import (
	"context"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"agroportal/internal/domain/cart"
)

// Catalog источник каталога товаров
type Catalog interface {
	Products() []cart.Product
}

type Handler struct {
	catalog    Catalog
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(catalog Catalog, log *slog.Logger, middleware huma.Middlewares) *Handler {
	return &Handler{
		catalog:    catalog,
		log:        log,
		middleware: middleware,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.listOp(), h.list)
}

func (h *Handler) list(_ context.Context, _ *listInput) (*listOutput, error) {
	return &listOutput{
		Body: cart.ProductListResponse{Products: h.catalog.Products()},
	}, nil
}
