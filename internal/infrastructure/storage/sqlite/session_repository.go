package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"golang.org/x/exp/slog"

	"agroportal/internal/domain/session"
	"agroportal/internal/infrastructure/migration"
)

const currentSessionKey = "current"

// SessionRepository хранит сессию в локальной базе SQLite
type SessionRepository struct {
	db  *sql.DB
	log *slog.Logger
}

// NewSessionRepository открывает базу и применяет миграции
func NewSessionRepository(path string, log *slog.Logger) (*SessionRepository, error) {
	if err := migration.NewMigration(migration.SQLiteURL(path), migration.DefaultEngine).Up(); err != nil {
		return nil, fmt.Errorf("ошибка миграции базы: %w", err)
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("ошибка открытия базы данных: %w", err)
	}

	return &SessionRepository{
		db:  db,
		log: log.With(slog.String("component", "session_repository")),
	}, nil
}

func (r *SessionRepository) Save(ctx context.Context, s *session.Session) error {
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("ошибка сериализации сессии: %w", err)
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO session_state (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`, currentSessionKey, string(data), time.Now().UTC())
	if err != nil {
		return fmt.Errorf("ошибка сохранения сессии: %w", err)
	}

	r.log.Debug("Сессия сохранена", "identity", s.IdentityID)
	return nil
}

func (r *SessionRepository) Load(ctx context.Context) (*session.Session, error) {
	var raw string
	err := r.db.QueryRowContext(ctx,
		`SELECT value FROM session_state WHERE key = ?`, currentSessionKey,
	).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, session.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("ошибка чтения сессии: %w", err)
	}

	var s session.Session
	if err := json.Unmarshal([]byte(raw), &s); err != nil {
		return nil, fmt.Errorf("%w: %v", session.ErrCorrupted, err)
	}
	return &s, nil
}

func (r *SessionRepository) Clear(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM session_state WHERE key = ?`, currentSessionKey); err != nil {
		return fmt.Errorf("ошибка очистки сессии: %w", err)
	}
	return nil
}

func (r *SessionRepository) Close() error {
	return r.db.Close()
}
