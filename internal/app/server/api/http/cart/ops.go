package cart

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) listOp() huma.Operation {
	return huma.Operation{
		OperationID: "cart-get",
		Method:      http.MethodGet,
		Path:        "/api/v1/cart",
		Summary:     "Содержимое корзины",
		Tags:        []string{"cart"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}

func (h *Handler) addOp() huma.Operation {
	return huma.Operation{
		OperationID:   "cart-add",
		Method:        http.MethodPost,
		Path:          "/api/v1/cart",
		Summary:       "Добавить строку в корзину",
		Description:   "Строки не объединяются: каждый вызов добавляет новую позицию",
		Tags:          []string{"cart"},
		DefaultStatus: http.StatusCreated,
		Security:      []map[string][]string{{"bearer": {}}},
		Middlewares:   h.middleware,
	}
}

func (h *Handler) clearOp() huma.Operation {
	return huma.Operation{
		OperationID:   "cart-clear",
		Method:        http.MethodDelete,
		Path:          "/api/v1/cart",
		Summary:       "Очистить корзину",
		Tags:          []string{"cart"},
		DefaultStatus: http.StatusNoContent,
		Security:      []map[string][]string{{"bearer": {}}},
		Middlewares:   h.middleware,
	}
}
