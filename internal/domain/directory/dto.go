package directory

type ListResponse struct {
	Users []User `json:"users"`
}
