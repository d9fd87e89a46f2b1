package notification

import "agroportal/internal/domain/notification"

type listInput struct {
	Page  int `query:"page" default:"1" minimum:"1"`
	Limit int `query:"limit" default:"20" minimum:"1" maximum:"100"`
}

type listOutput struct {
	Body notification.ListResponse
}

type idInput struct {
	ID string `path:"id" doc:"Идентификатор уведомления"`
}

type readAllInput struct{}
