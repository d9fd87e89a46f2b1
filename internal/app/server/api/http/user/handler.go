package user

import (
	"context"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"agroportal/internal/app/server/api/http/apierr"
	"agroportal/internal/domain/session"
)

// Service регистрация и проверка пользователей
type Service interface {
	Register(ctx context.Context, req session.RegisterRequest) (string, error)
	Authenticate(ctx context.Context, email, password string) (string, session.Role, session.Profile, error)
}

// TokenIssuer выпускает токены доступа
type TokenIssuer interface {
	Issue(userID string, role session.Role) (string, error)
}

type Handler struct {
	service    Service
	tokens     TokenIssuer
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(service Service, tokens TokenIssuer, log *slog.Logger, middleware huma.Middlewares) *Handler {
	return &Handler{
		service:    service,
		tokens:     tokens,
		log:        log,
		middleware: middleware,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.registerOp(), h.register)
	huma.Register(api, h.loginOp(), h.login)
}

func (h *Handler) register(ctx context.Context, input *registerInput) (*registerOutput, error) {
	userID, err := h.service.Register(ctx, input.Body)
	if err != nil {
		return nil, apierr.From(err)
	}

	return &registerOutput{
		Body: RegisterResponse{UserID: userID},
	}, nil
}

func (h *Handler) login(ctx context.Context, input *loginInput) (*loginOutput, error) {
	userID, role, profile, err := h.service.Authenticate(ctx, input.Body.Email, input.Body.Password)
	if err != nil {
		h.log.Debug("Неудачный вход", "email", input.Body.Email)
		return nil, huma.Error401Unauthorized("Invalid credentials")
	}

	signed, err := h.tokens.Issue(userID, role)
	if err != nil {
		return nil, huma.Error500InternalServerError("token issue failed", err)
	}

	return &loginOutput{
		Body: session.AuthResponse{
			IdentityID: userID,
			Role:       role,
			Token:      signed,
			Profile:    profile,
		},
	}, nil
}
