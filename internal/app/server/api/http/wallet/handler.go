package wallet

import (
	"context"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"agroportal/internal/app/server/api/http/apierr"
	"agroportal/internal/app/server/api/http/middleware/auth"
	"agroportal/internal/domain/wallet"
)

type Service interface {
	Wallet(ctx context.Context, userID string) (wallet.Balance, error)
	TopUp(ctx context.Context, userID string, amount float64) (wallet.Balance, error)
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
	huma.Register(api, h.topUpOp(), h.topUp)
}

func (h *Handler) get(ctx context.Context, _ *getInput) (*balanceOutput, error) {
	id, err := auth.MustIdentity(ctx)
	if err != nil {
		return nil, err
	}

	balance, err := h.service.Wallet(ctx, id.UserID)
	if err != nil {
		return nil, apierr.From(err)
	}
	return &balanceOutput{Body: balance}, nil
}

func (h *Handler) topUp(ctx context.Context, input *topUpInput) (*balanceOutput, error) {
	id, err := auth.MustIdentity(ctx)
	if err != nil {
		return nil, err
	}

	balance, err := h.service.TopUp(ctx, id.UserID, input.Body.Amount)
	if err != nil {
		return nil, apierr.From(err)
	}

	h.log.Info("Кошелек пополнен", "user_id", id.UserID, "amount", input.Body.Amount)
	return &balanceOutput{Body: balance}, nil
}
