package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"agroportal/internal/app/server/token"
	"agroportal/internal/domain/session"
)

// Validator проверяет токен доступа
type Validator interface {
	Validate(tokenString string) (*token.Claims, error)
}

type Auth struct {
	tokens Validator
	log    *slog.Logger
}

func New(tokens Validator, log *slog.Logger) *Auth {
	return &Auth{
		tokens: tokens,
		log:    log.With(slog.String("component", "auth_middleware")),
	}
}

type contextKey string

const IdentityKey contextKey = "identity"

// Identity пользователь, от имени которого выполняется запрос
type Identity struct {
	UserID string
	Role   session.Role
}

// Middleware возвращает middleware для Huma. Пустой список ролей - любая роль.
func (a *Auth) Middleware(roles ...session.Role) func(huma.Context, func(huma.Context)) {
	allowed := session.Roles(roles)

	return func(ctx huma.Context, next func(huma.Context)) {
		header := ctx.Header("Authorization")

		if !strings.HasPrefix(header, "Bearer ") {
			a.log.Debug("Нет заголовка Bearer", "path", ctx.URL().Path)
			a.reject(ctx, http.StatusUnauthorized, "Unauthorized")
			return
		}

		claims, err := a.tokens.Validate(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			a.log.Debug("Токен не прошел проверку", "error", err)
			a.reject(ctx, http.StatusUnauthorized, "Unauthorized")
			return
		}

		s := &session.Session{IdentityID: claims.Subject, Role: claims.Role, Credential: "bearer"}
		if !allowed.Allows(s) {
			a.reject(ctx, http.StatusForbidden, "Forbidden")
			return
		}

		newCtx := context.WithValue(ctx.Context(), IdentityKey, Identity{UserID: claims.Subject, Role: claims.Role})
		next(huma.WithContext(ctx, newCtx))
	}
}

func (a *Auth) reject(ctx huma.Context, status int, msg string) {
	ctx.SetHeader("Content-Type", "application/json")
	ctx.SetStatus(status)

	if err := json.NewEncoder(ctx.BodyWriter()).Encode(map[string]string{"error": msg}); err != nil {
		a.log.Error("Ошибка записи ответа", "error", err)
	}
}

func GetIdentity(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(IdentityKey).(Identity)
	return id, ok
}

// MustIdentity достает пользователя или возвращает 401
func MustIdentity(ctx context.Context) (Identity, error) {
	id, ok := GetIdentity(ctx)
	if !ok || id.UserID == "" {
		return Identity{}, huma.Error401Unauthorized("Unauthorized")
	}
	return id, nil
}
