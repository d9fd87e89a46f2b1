package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/exp/slog"
	"golang.org/x/time/rate"

	"agroportal/internal/app/client/config"
	"agroportal/internal/domain/session"
)

const userAgent = "AgroPortal-Client/1.0"

// TokenSource отдает учетные данные текущей сессии. Пустой Credential - сессии нет.
type TokenSource func() session.Lease

// Client REST клиент маркетплейса
type Client struct {
	client    *http.Client
	limiter   *rate.Limiter
	log       *slog.Logger
	baseURL   string
	token     TokenSource
	userAgent string
}

func NewClient(cfg *config.Config, token TokenSource, log *slog.Logger) *Client {
	client := &http.Client{
		Timeout: cfg.RequestTimeout,
		Transport: &http.Transport{
			MaxIdleConns:        100,
			IdleConnTimeout:     90 * time.Second,
			MaxIdleConnsPerHost: 10,
		},
	}

	limit := rate.Inf
	if cfg.RateLimit > 0 {
		limit = rate.Limit(cfg.RateLimit)
	}
	burst := cfg.RateBurst
	if burst <= 0 {
		burst = 1
	}

	if token == nil {
		token = func() session.Lease { return session.Lease{} }
	}

	return &Client{
		client:    client,
		limiter:   rate.NewLimiter(limit, burst),
		log:       log.With(slog.String("component", "api")),
		baseURL:   cfg.BaseURL(),
		token:     token,
		userAgent: userAgent,
	}
}

// HealthCheck проверяет доступность сервера
func (c *Client) HealthCheck(ctx context.Context) error {
	resp, err := c.doRequest(ctx, http.MethodGet, "/api/v1/health", nil, false)
	if err != nil {
		return fmt.Errorf("сервер недоступен: %w", err)
	}
	return c.parseResponse(resp, nil)
}

func (c *Client) doRequest(ctx context.Context, method, path string, body interface{}, authenticated bool) (*http.Response, error) {
	current := c.token()
	token := current.Credential
	if pinned, ok := session.LeaseFrom(ctx); ok && authenticated {
		// Операция начата под другой сессией
		if pinned.Epoch != current.Epoch {
			return nil, fmt.Errorf("%s %s: %w", method, path, session.ErrSessionChanged)
		}
		token = pinned.Credential
	}
	if authenticated && token == "" {
		return nil, ErrNoCredential
	}

	var reqBody io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("ошибка маршалинга тела запроса: %w", err)
		}
		reqBody = bytes.NewBuffer(jsonData)
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("ожидание лимитера: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return nil, fmt.Errorf("ошибка создания запроса: %w", err)
	}

	req.Header.Set("User-Agent", c.userAgent)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if authenticated {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	c.log.Debug("Отправка запроса",
		"method", method,
		"url", req.URL.String(),
	)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("ошибка выполнения запроса: %w", err)
	}

	return resp, nil
}

func (c *Client) parseResponse(resp *http.Response, result interface{}) error {
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("ошибка чтения ответа: %w", err)
	}

	c.log.Debug("Получен ответ",
		"status", resp.StatusCode,
		"bytes", len(body),
	)

	if resp.StatusCode >= 400 {
		return &Error{Status: resp.StatusCode, Message: errorMessage(body)}
	}

	if result != nil && len(body) > 0 {
		if err := json.Unmarshal(body, result); err != nil {
			return fmt.Errorf("ошибка парсинга ответа: %w", err)
		}
	}

	return nil
}

// errorMessage понимает и {"error": "..."}, и problem+json
func errorMessage(body []byte) string {
	var errResp struct {
		Error  string `json:"error"`
		Detail string `json:"detail"`
		Title  string `json:"title"`
	}
	if err := json.Unmarshal(body, &errResp); err != nil {
		return ""
	}
	switch {
	case errResp.Error != "":
		return errResp.Error
	case errResp.Detail != "":
		return errResp.Detail
	default:
		return errResp.Title
	}
}
