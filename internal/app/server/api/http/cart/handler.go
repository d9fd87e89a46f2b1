package cart

import (
	"context"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"agroportal/internal/app/server/api/http/apierr"
	"agroportal/internal/app/server/api/http/middleware/auth"
	"agroportal/internal/domain/cart"
)

type Service interface {
	Cart(ctx context.Context, userID string) ([]cart.ServerItem, error)
	AddToCart(ctx context.Context, userID, productID string, quantity int) error
	ClearCart(ctx context.Context, userID string) error
}

type Handler struct {
	service    Service
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(service Service, log *slog.Logger, middleware huma.Middlewares) *Handler {
	return &Handler{
		service:    service,
		log:        log,
		middleware: middleware,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.listOp(), h.list)
	huma.Register(api, h.addOp(), h.add)
	huma.Register(api, h.clearOp(), h.clear)
}

func (h *Handler) list(ctx context.Context, _ *listInput) (*listOutput, error) {
	id, err := auth.MustIdentity(ctx)
	if err != nil {
		return nil, err
	}

	items, err := h.service.Cart(ctx, id.UserID)
	if err != nil {
		return nil, apierr.From(err)
	}

	return &listOutput{Body: cart.ListResponse{Items: items}}, nil
}

func (h *Handler) add(ctx context.Context, input *addInput) (*struct{}, error) {
	id, err := auth.MustIdentity(ctx)
	if err != nil {
		return nil, err
	}

	if err := h.service.AddToCart(ctx, id.UserID, input.Body.ProductID, input.Body.Quantity); err != nil {
		return nil, apierr.From(err)
	}
	return nil, nil
}

func (h *Handler) clear(ctx context.Context, _ *clearInput) (*struct{}, error) {
	id, err := auth.MustIdentity(ctx)
	if err != nil {
		return nil, err
	}

	if err := h.service.ClearCart(ctx, id.UserID); err != nil {
		return nil, apierr.From(err)
	}
	return nil, nil
}
