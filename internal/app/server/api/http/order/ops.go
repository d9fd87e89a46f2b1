package order

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) listOp() huma.Operation {
	return huma.Operation{
		OperationID: "orders-list",
		Method:      http.MethodGet,
		Path:        "/api/v1/orders",
		Summary:     "Заказы покупателя",
		Tags:        []string{"orders"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}

func (h *Handler) placeOp() huma.Operation {
	return huma.Operation{
		OperationID:   "orders-place",
		Method:        http.MethodPost,
		Path:          "/api/v1/orders",
		Summary:       "Оформить заказ",
		Tags:          []string{"orders"},
		DefaultStatus: http.StatusCreated,
		Security:      []map[string][]string{{"bearer": {}}},
		Middlewares:   h.middleware,
	}
}

func (h *Handler) statsOp() huma.Operation {
	return huma.Operation{
		OperationID: "dashboard-stats",
		Method:      http.MethodGet,
		Path:        "/api/v1/dashboard/stats",
		Summary:     "Сводка дашборда покупателя",
		Tags:        []string{"dashboard"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}
