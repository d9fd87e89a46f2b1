package weather

import (
	"context"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"agroportal/internal/app/server/api/http/apierr"
	"agroportal/internal/app/server/api/http/middleware/auth"
	"agroportal/internal/domain/weather"
)

type Service interface {
	Weather(ctx context.Context, userID, location string) (weather.Report, error)
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
	huma.Register(api, h.getOp(), h.get)
}

func (h *Handler) get(ctx context.Context, input *getInput) (*getOutput, error) {
	id, err := auth.MustIdentity(ctx)
	if err != nil {
		return nil, err
	}

	report, err := h.service.Weather(ctx, id.UserID, input.Location)
	if err != nil {
		return nil, apierr.From(err)
	}
	return &getOutput{Body: report}, nil
}
