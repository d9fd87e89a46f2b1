package weather

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) getOp() huma.Operation {
	return huma.Operation{
		OperationID: "weather-get",
		Method:      http.MethodGet,
		Path:        "/api/v1/weather",
		Summary:     "Прогноз погоды для фермера",
		Tags:        []string{"weather"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}
