package wallet

type TopUpRequest struct {
	Amount float64 `json:"amount"`
}
