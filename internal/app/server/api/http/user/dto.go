package user

import "agroportal/internal/domain/session"

type registerInput struct {
	Body session.RegisterRequest
}

type registerOutput struct {
	Body RegisterResponse
}

type RegisterResponse struct {
	UserID string `json:"user_id"`
}

type loginInput struct {
	Body session.LoginRequest
}

type loginOutput struct {
	Body session.AuthResponse
}
