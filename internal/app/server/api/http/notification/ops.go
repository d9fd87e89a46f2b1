package notification

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) listOp() huma.Operation {
	return huma.Operation{
		OperationID: "notifications-list",
		Method:      http.MethodGet,
		Path:        "/api/v1/notifications",
		Summary:     "Лента уведомлений",
		Tags:        []string{"notifications"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}

func (h *Handler) readOp() huma.Operation {
	return huma.Operation{
		OperationID:   "notifications-read",
		Method:        http.MethodPatch,
		Path:          "/api/v1/notifications/{id}/read",
		Summary:       "Отметить уведомление прочитанным",
		Tags:          []string{"notifications"},
		DefaultStatus: http.StatusNoContent,
		Security:      []map[string][]string{{"bearer": {}}},
		Middlewares:   h.middleware,
	}
}

func (h *Handler) readAllOp() huma.Operation {
	return huma.Operation{
		OperationID:   "notifications-read-all",
		Method:        http.MethodPatch,
		Path:          "/api/v1/notifications/read-all",
		Summary:       "Отметить все уведомления прочитанными",
		Tags:          []string{"notifications"},
		DefaultStatus: http.StatusNoContent,
		Security:      []map[string][]string{{"bearer": {}}},
		Middlewares:   h.middleware,
	}
}

func (h *Handler) deleteOp() huma.Operation {
	return huma.Operation{
		OperationID:   "notifications-delete",
		Method:        http.MethodDelete,
		Path:          "/api/v1/notifications/{id}",
		Summary:       "Удалить уведомление",
		Tags:          []string{"notifications"},
		DefaultStatus: http.StatusNoContent,
		Security:      []map[string][]string{{"bearer": {}}},
		Middlewares:   h.middleware,
	}
}
