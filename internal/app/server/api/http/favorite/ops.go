package favorite

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) listOp() huma.Operation {
	return huma.Operation{
		OperationID: "favorites-list",
		Method:      http.MethodGet,
		Path:        "/api/v1/favorites",
		Summary:     "Избранные товары",
		Tags:        []string{"favorites"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}

func (h *Handler) addOp() huma.Operation {
	return huma.Operation{
		OperationID:   "favorites-add",
		Method:        http.MethodPost,
		Path:          "/api/v1/favorites/add/{productId}",
		Summary:       "Добавить товар в избранное",
		Tags:          []string{"favorites"},
		DefaultStatus: http.StatusNoContent,
		Security:      []map[string][]string{{"bearer": {}}},
		Middlewares:   h.middleware,
	}
}

func (h *Handler) removeOp() huma.Operation {
	return huma.Operation{
		OperationID:   "favorites-remove",
		Method:        http.MethodDelete,
		Path:          "/api/v1/favorites/remove/{productId}",
		Summary:       "Убрать товар из избранного",
		Tags:          []string{"favorites"},
		DefaultStatus: http.StatusNoContent,
		Security:      []map[string][]string{{"bearer": {}}},
		Middlewares:   h.middleware,
	}
}
