package order

import (
	"context"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"agroportal/internal/app/server/api/http/apierr"
	"agroportal/internal/app/server/api/http/middleware/auth"
	"agroportal/internal/domain/dashboard"
	"agroportal/internal/domain/order"
)

type Service interface {
	Orders(ctx context.Context, userID string) ([]order.Order, error)
	PlaceOrder(ctx context.Context, userID string, req order.PlaceRequest) (order.Order, error)
	Dashboard(ctx context.Context, userID string) (dashboard.Stats, error)
}

// Handler заказы покупателя и сводка дашборда
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
	huma.Register(api, h.placeOp(), h.place)
	huma.Register(api, h.statsOp(), h.stats)
}

func (h *Handler) list(ctx context.Context, _ *listInput) (*listOutput, error) {
	id, err := auth.MustIdentity(ctx)
	if err != nil {
		return nil, err
	}

	orders, err := h.service.Orders(ctx, id.UserID)
	if err != nil {
		return nil, apierr.From(err)
	}
	return &listOutput{Body: order.ListResponse{Orders: orders}}, nil
}

func (h *Handler) place(ctx context.Context, input *placeInput) (*placeOutput, error) {
	id, err := auth.MustIdentity(ctx)
	if err != nil {
		return nil, err
	}

	placed, err := h.service.PlaceOrder(ctx, id.UserID, input.Body)
	if err != nil {
		return nil, apierr.From(err)
	}

	h.log.Info("Заказ оформлен", "user_id", id.UserID, "order_id", placed.ID, "total", placed.Total)
	return &placeOutput{Body: placed}, nil
}

func (h *Handler) stats(ctx context.Context, _ *statsInput) (*statsOutput, error) {
	id, err := auth.MustIdentity(ctx)
	if err != nil {
		return nil, err
	}

	stats, err := h.service.Dashboard(ctx, id.UserID)
	if err != nil {
		return nil, apierr.From(err)
	}
	return &statsOutput{Body: stats}, nil
}
