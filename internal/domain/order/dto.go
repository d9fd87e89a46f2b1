package order

type ListResponse struct {
	Orders []Order `json:"orders"`
}
