package session

import "errors"

var (
	ErrNotFound          = errors.New("session not found")
	ErrCorrupted         = errors.New("session data corrupted")
	ErrCredentialExpired = errors.New("credential expired")
	ErrSessionChanged    = errors.New("session changed")
)
