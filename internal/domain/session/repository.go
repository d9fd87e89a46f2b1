package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// Repository долговременное хранилище текущей сессии
type Repository interface {
	Save(ctx context.Context, s *Session) error
	Load(ctx context.Context) (*Session, error)
	Clear(ctx context.Context) error
}

const sessionFilePermissions = 0600

// FileRepository хранит сессию в JSON файле рядом с конфигурацией клиента
type FileRepository struct {
	path string
}

func NewFileRepository(path string) *FileRepository {
	return &FileRepository{path: path}
}

func (r *FileRepository) Save(_ context.Context, s *Session) error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("ошибка сериализации сессии: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(r.path), 0700); err != nil {
		return fmt.Errorf("ошибка создания директории сессии: %w", err)
	}

	// Пишем во временный файл и переименовываем, чтобы не оставить полузаписанную сессию
	tmp := r.path + ".tmp"
	if err := os.WriteFile(tmp, data, sessionFilePermissions); err != nil {
		return fmt.Errorf("ошибка сохранения сессии: %w", err)
	}
	if err := os.Rename(tmp, r.path); err != nil {
		return fmt.Errorf("ошибка сохранения сессии: %w", err)
	}

	return nil
}

func (r *FileRepository) Load(_ context.Context) (*Session, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("ошибка чтения сессии: %w", err)
	}

	var s Session
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorrupted, err)
	}

	return &s, nil
}

func (r *FileRepository) Clear(_ context.Context) error {
	if err := os.Remove(r.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("ошибка удаления сессии: %w", err)
	}
	return nil
}
