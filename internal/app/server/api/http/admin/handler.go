package admin

import (
	"context"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"agroportal/internal/app/server/api/http/apierr"
	"agroportal/internal/domain/directory"
)

type Service interface {
	Users(ctx context.Context) ([]directory.User, error)
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
	huma.Register(api, h.usersOp(), h.users)
}

func (h *Handler) users(ctx context.Context, _ *usersInput) (*usersOutput, error) {
	users, err := h.service.Users(ctx)
	if err != nil {
		return nil, apierr.From(err)
	}
	return &usersOutput{Body: directory.ListResponse{Users: users}}, nil
}
