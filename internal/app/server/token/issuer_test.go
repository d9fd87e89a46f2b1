package token

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agroportal/internal/domain/session"
)

func TestIssuer_RoundTrip(t *testing.T) {
	issuer := NewIssuer(Config{Secret: []byte("s"), Issuer: "test"})

	signed, err := issuer.Issue("u-1", session.RoleBuyer)
	require.NoError(t, err)

	claims, err := issuer.Validate(signed)
	require.NoError(t, err)
	assert.Equal(t, "u-1", claims.Subject)
	assert.Equal(t, session.RoleBuyer, claims.Role)
}

func TestIssuer_Rejects(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	issuer := NewIssuer(Config{Secret: []byte("s"), Issuer: "test", TTL: time.Minute, Clock: func() time.Time { return now }})
	signed, err := issuer.Issue("u-1", session.RoleFarmer)
	require.NoError(t, err)

	tests := []struct {
		name   string
		issuer *Issuer
		token  string
	}{
		{
			name:   "expired",
			issuer: NewIssuer(Config{Secret: []byte("s"), Issuer: "test", Clock: func() time.Time { return now.Add(time.Hour) }}),
			token:  signed,
		},
		{
			name:   "wrong secret",
			issuer: NewIssuer(Config{Secret: []byte("other"), Issuer: "test", Clock: func() time.Time { return now }}),
			token:  signed,
		},
		{
			name:   "wrong issuer",
			issuer: NewIssuer(Config{Secret: []byte("s"), Issuer: "prod", Clock: func() time.Time { return now }}),
			token:  signed,
		},
		{
			name:   "garbage",
			issuer: issuer,
			token:  "not-a-jwt",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.issuer.Validate(tt.token)
			assert.Error(t, err)
		})
	}
}

func TestIssuer_MissingInputs(t *testing.T) {
	_, err := NewIssuer(Config{}).Issue("u-1", session.RoleBuyer)
	assert.ErrorIs(t, err, ErrMissingSecret)

	_, err = NewIssuer(Config{Secret: []byte("s")}).Issue("", session.RoleBuyer)
	assert.ErrorIs(t, err, ErrMissingSubject)
}
