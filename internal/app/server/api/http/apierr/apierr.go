package apierr

import (
	"errors"

	"github.com/danielgtaylor/huma/v2"

	"agroportal/internal/app/server/market"
)

// From переводит ошибку хранилища в HTTP ошибку huma
func From(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, market.ErrNotFound):
		return huma.Error404NotFound(err.Error())
	case errors.Is(err, market.ErrInvalid):
		return huma.Error400BadRequest(err.Error())
	case errors.Is(err, market.ErrConflict), errors.Is(err, market.ErrInsufficientFunds):
		return huma.Error409Conflict(err.Error())
	case errors.Is(err, market.ErrUnauthorized):
		return huma.Error401Unauthorized(err.Error())
	case errors.Is(err, market.ErrInjected):
		return huma.Error503ServiceUnavailable(err.Error())
	default:
		return huma.Error500InternalServerError("internal error", err)
	}
}
