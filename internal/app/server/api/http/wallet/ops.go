package wallet

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) getOp() huma.Operation {
	return huma.Operation{
		OperationID: "wallet-get",
		Method:      http.MethodGet,
		Path:        "/api/v1/wallet",
		Summary:     "Баланс кошелька",
		Tags:        []string{"wallet"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}

func (h *Handler) topUpOp() huma.Operation {
	return huma.Operation{
		OperationID: "wallet-topup",
		Method:      http.MethodPost,
		Path:        "/api/v1/wallet/topup",
		Summary:     "Пополнить кошелек",
		Description: "Возвращает подтвержденный баланс после пополнения",
		Tags:        []string{"wallet"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}
