package admin

import "agroportal/internal/domain/directory"

type usersInput struct{}

type usersOutput struct {
	Body directory.ListResponse
}
