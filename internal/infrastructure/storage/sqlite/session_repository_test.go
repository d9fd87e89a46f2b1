package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agroportal/internal/domain/session"
	"agroportal/internal/utils/logger"
)

func newRepo(t *testing.T) *SessionRepository {
	t.Helper()
	repo, err := NewSessionRepository(filepath.Join(t.TempDir(), "client.db"), logger.Discard())
	require.NoError(t, err)
	t.Cleanup(func() { _ = repo.Close() })
	return repo
}

func TestSessionRepository_Lifecycle(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()

	_, err := repo.Load(ctx)
	assert.ErrorIs(t, err, session.ErrNotFound)

	s := &session.Session{
		IdentityID: "u-1",
		Role:       session.RoleBuyer,
		Credential: "token",
		Profile:    session.Profile{Name: "Anna", Location: "Kazan"},
	}
	require.NoError(t, repo.Save(ctx, s))

	loaded, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, s, loaded)

	s.Credential = "rotated"
	require.NoError(t, repo.Save(ctx, s))
	loaded, err = repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "rotated", loaded.Credential)

	require.NoError(t, repo.Clear(ctx))
	_, err = repo.Load(ctx)
	assert.ErrorIs(t, err, session.ErrNotFound)
}

func TestSessionRepository_CorruptedValue(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()

	_, err := repo.db.ExecContext(ctx,
		`INSERT INTO session_state (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)`,
		currentSessionKey, "{broken")
	require.NoError(t, err)

	_, err = repo.Load(ctx)
	assert.ErrorIs(t, err, session.ErrCorrupted)
}

func TestSessionRepository_Reopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "client.db")
	ctx := context.Background()

	first, err := NewSessionRepository(path, logger.Discard())
	require.NoError(t, err)
	require.NoError(t, first.Save(ctx, &session.Session{IdentityID: "u-2", Role: session.RoleFarmer, Credential: "t"}))
	require.NoError(t, first.Close())

	second, err := NewSessionRepository(path, logger.Discard())
	require.NoError(t, err)
	defer second.Close()

	loaded, err := second.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, session.RoleFarmer, loaded.Role)
}
