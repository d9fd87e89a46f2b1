package session

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// credentialExpiry читает exp из учетных данных без проверки подписи.
// Подпись проверяет сервер, клиенту нужно только понять, не протухла ли сохраненная сессия.
// Непрозрачные (не JWT) учетные данные считаются бессрочными.
func credentialExpiry(credential string) (time.Time, bool) {
	claims := &jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(credential, claims); err != nil {
		return time.Time{}, false
	}
	if claims.ExpiresAt == nil {
		return time.Time{}, false
	}
	return claims.ExpiresAt.Time, true
}

func validateRestored(s *Session, now time.Time) error {
	if s == nil || !s.HasCredential() {
		return ErrNotFound
	}
	if _, ok := ParseRole(string(s.Role)); !ok {
		return fmt.Errorf("%w: unknown role %q", ErrCorrupted, s.Role)
	}
	if exp, ok := credentialExpiry(s.Credential); ok && !now.Before(exp) {
		return ErrCredentialExpired
	}
	return nil
}
