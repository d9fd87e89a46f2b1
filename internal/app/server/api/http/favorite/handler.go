package favorite

import (
	"context"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"agroportal/internal/app/server/api/http/apierr"
	"agroportal/internal/app/server/api/http/middleware/auth"
	"agroportal/internal/domain/favorite"
)

type Service interface {
	Favorites(ctx context.Context, userID string) ([]favorite.Entry, error)
	AddFavorite(ctx context.Context, userID, productID string) error
	RemoveFavorite(ctx context.Context, userID, productID string) error
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
	huma.Register(api, h.removeOp(), h.remove)
}

func (h *Handler) list(ctx context.Context, _ *listInput) (*listOutput, error) {
	id, err := auth.MustIdentity(ctx)
	if err != nil {
		return nil, err
	}

	entries, err := h.service.Favorites(ctx, id.UserID)
	if err != nil {
		return nil, apierr.From(err)
	}
	return &listOutput{Body: favorite.ListResponse{Products: entries}}, nil
}

func (h *Handler) add(ctx context.Context, input *productInput) (*struct{}, error) {
	id, err := auth.MustIdentity(ctx)
	if err != nil {
		return nil, err
	}
	return nil, apierr.From(h.service.AddFavorite(ctx, id.UserID, input.ProductID))
}

func (h *Handler) remove(ctx context.Context, input *productInput) (*struct{}, error) {
	id, err := auth.MustIdentity(ctx)
	if err != nil {
		return nil, err
	}
	return nil, apierr.From(h.service.RemoveFavorite(ctx, id.UserID, input.ProductID))
}
