package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"

	"agroportal/internal/app/client/config"
	"agroportal/internal/domain/cart"
	"agroportal/internal/domain/session"
	"agroportal/internal/utils/logger"
)

func newTestClient(t *testing.T, srv *httptest.Server, token string) *Client {
	t.Helper()
	cfg := &config.Config{
		ServerAddress:  srv.URL,
		RequestTimeout: 5 * time.Second,
	}
	return NewClient(cfg, func() session.Lease { return session.Lease{Epoch: 1, Credential: token} }, logger.Discard())
}

func TestClient_NoCredentialShortCircuits(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	}))
	defer srv.Close()

	c := newTestClient(t, srv, "")

	_, err := c.GetCart(context.Background())
	assert.ErrorIs(t, err, ErrNoCredential)
	_, err = c.GetWallet(context.Background())
	assert.ErrorIs(t, err, ErrNoCredential)
	assert.ErrorIs(t, c.AddFavorite(context.Background(), "p1"), ErrNoCredential)

	assert.Equal(t, int32(0), calls.Load())
}

func TestClient_BearerHeaderAndBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/cart", r.URL.Path)

		var req cart.AddRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, cart.AddRequest{ProductID: "p1", Quantity: 3}, req)

		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	c := newTestClient(t, srv, "secret")
	require.NoError(t, c.AddCartItem(context.Background(), "p1", 3))
}

func TestClient_ErrorBodies(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantMsg string
	}{
		{name: "error field", status: http.StatusBadRequest, body: `{"error":"bad quantity"}`, wantMsg: "bad quantity"},
		{name: "problem json", status: http.StatusNotFound, body: `{"title":"Not Found","detail":"product missing"}`, wantMsg: "product missing"},
		{name: "plain text", status: http.StatusInternalServerError, body: `boom`, wantMsg: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			err := newTestClient(t, srv, "t").ClearCart(context.Background())
			require.Error(t, err)

			var apiErr *Error
			require.True(t, errors.As(err, &apiErr))
			assert.Equal(t, tt.status, apiErr.Status)
			assert.Equal(t, tt.wantMsg, apiErr.Message)
			assert.Equal(t, tt.status, StatusOf(err))
		})
	}
}

func TestClient_LoginBuildsSession(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		_ = json.NewEncoder(w).Encode(session.AuthResponse{
			IdentityID: "u-7",
			Role:       session.RoleFarmer,
			Token:      "jwt",
			Profile:    session.Profile{Name: "Ivan"},
		})
	}))
	defer srv.Close()

	s, err := newTestClient(t, srv, "").Login(context.Background(), session.LoginRequest{Email: "a@b.c", Password: "x"})
	require.NoError(t, err)
	assert.Equal(t, "u-7", s.IdentityID)
	assert.Equal(t, session.RoleFarmer, s.Role)
	assert.Equal(t, "jwt", s.Credential)
}

func TestClient_NotificationsQuery(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "2", r.URL.Query().Get("page"))
		assert.Equal(t, "10", r.URL.Query().Get("limit"))
		_, _ = w.Write([]byte(`{"items":[{"id":"n1","read":false},{"id":"n2","read":true}],"unread_count":1,"page":2,"total":12}`))
	}))
	defer srv.Close()

	feed, err := newTestClient(t, srv, "t").GetNotifications(context.Background(), 2, 10)
	require.NoError(t, err)
	assert.Len(t, feed.Items, 2)
	assert.Equal(t, 1, feed.ServerUnread)
	assert.Equal(t, 12, feed.Total)
}

func TestClient_UnauthorizedIsDetected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":"Unauthorized"}`))
	}))
	defer srv.Close()

	_, err := newTestClient(t, srv, "expired").GetOrders(context.Background())
	assert.True(t, IsUnauthorized(err))
}

func TestNewClient_DefaultsWithoutTokenSource(t *testing.T) {
	c := NewClient(&config.Config{ServerAddress: "localhost:1", RequestTimeout: time.Second}, nil, slog.Default())
	_, err := c.GetFavorites(context.Background())
	assert.ErrorIs(t, err, ErrNoCredential)
}

func TestClient_PinnedLease(t *testing.T) {
	var seen []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = append(seen, r.Header.Get("Authorization"))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	current := session.Lease{Epoch: 1, Credential: "tok-alice"}
	cfg := &config.Config{ServerAddress: srv.URL, RequestTimeout: 5 * time.Second}
	c := NewClient(cfg, func() session.Lease { return current }, logger.Discard())

	alice := session.WithLease(context.Background(), current)
	require.NoError(t, c.ClearCart(alice))

	// выход и вход другим пользователем
	current = session.Lease{Epoch: 3, Credential: "tok-bob"}

	err := c.AddCartItem(alice, "alice-item", 1)
	assert.ErrorIs(t, err, session.ErrSessionChanged)

	bob := session.WithLease(context.Background(), current)
	require.NoError(t, c.ClearCart(bob))

	assert.Equal(t, []string{"Bearer tok-alice", "Bearer tok-bob"}, seen)
}
