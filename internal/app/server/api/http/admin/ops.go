package admin

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) usersOp() huma.Operation {
	return huma.Operation{
		OperationID: "admin-users",
		Method:      http.MethodGet,
		Path:        "/api/v1/admin/users",
		Summary:     "Справочник пользователей",
		Tags:        []string{"admin"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}
