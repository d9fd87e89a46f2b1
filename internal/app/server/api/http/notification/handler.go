package notification

import (
	"context"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"agroportal/internal/app/server/api/http/apierr"
	"agroportal/internal/app/server/api/http/middleware/auth"
	"agroportal/internal/domain/notification"
)

type Service interface {
	Notifications(ctx context.Context, userID string, page, limit int) (notification.ListResponse, error)
	MarkNotificationRead(ctx context.Context, userID, id string) error
	MarkAllNotificationsRead(ctx context.Context, userID string) error
	DeleteNotification(ctx context.Context, userID, id string) error
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
	huma.Register(api, h.readAllOp(), h.readAll)
	huma.Register(api, h.readOp(), h.read)
	huma.Register(api, h.deleteOp(), h.delete)
}

func (h *Handler) list(ctx context.Context, input *listInput) (*listOutput, error) {
	id, err := auth.MustIdentity(ctx)
	if err != nil {
		return nil, err
	}

	resp, err := h.service.Notifications(ctx, id.UserID, input.Page, input.Limit)
	if err != nil {
		return nil, apierr.From(err)
	}
	return &listOutput{Body: resp}, nil
}

func (h *Handler) read(ctx context.Context, input *idInput) (*struct{}, error) {
	id, err := auth.MustIdentity(ctx)
	if err != nil {
		return nil, err
	}
	return nil, apierr.From(h.service.MarkNotificationRead(ctx, id.UserID, input.ID))
}

func (h *Handler) readAll(ctx context.Context, _ *readAllInput) (*struct{}, error) {
	id, err := auth.MustIdentity(ctx)
	if err != nil {
		return nil, err
	}
	return nil, apierr.From(h.service.MarkAllNotificationsRead(ctx, id.UserID))
}

func (h *Handler) delete(ctx context.Context, input *idInput) (*struct{}, error) {
	id, err := auth.MustIdentity(ctx)
	if err != nil {
		return nil, err
	}
	return nil, apierr.From(h.service.DeleteNotification(ctx, id.UserID, input.ID))
}
