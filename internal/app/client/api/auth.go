package api

import (
	"context"
	"net/http"

	"agroportal/internal/domain/session"
)

// Login обменивает email и пароль на сессию
func (c *Client) Login(ctx context.Context, req session.LoginRequest) (*session.Session, error) {
	resp, err := c.doRequest(ctx, http.MethodPost, "/api/v1/auth/login", req, false)
	if err != nil {
		return nil, err
	}

	var loginResp session.AuthResponse
	if err := c.parseResponse(resp, &loginResp); err != nil {
		return nil, err
	}

	return loginResp.Session(), nil
}

func (c *Client) Register(ctx context.Context, req session.RegisterRequest) error {
	resp, err := c.doRequest(ctx, http.MethodPost, "/api/v1/auth/register", req, false)
	if err != nil {
		return err
	}
	return c.parseResponse(resp, nil)
}
