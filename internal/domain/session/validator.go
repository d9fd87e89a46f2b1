package session

import (
	"fmt"
	"net/mail"
	"strings"
	"unicode"
)

const (
	MinPasswordLen = 6
	MaxPasswordLen = 72
	MaxNameLen     = 64
)

// RegisterValidator проверяет данные регистрации до обращения к серверу
type RegisterValidator struct {
	requireLetter bool
	requireDigit  bool
}

// NewRegisterValidator создает валидатор с правилами маркетплейса
func NewRegisterValidator() *RegisterValidator {
	return &RegisterValidator{
		requireLetter: true,
	}
}

// Validate проверяет запрос целиком и приводит роль к канонической форме
func (v *RegisterValidator) Validate(req *RegisterRequest) error {
	if err := v.ValidateName(req.Name); err != nil {
		return fmt.Errorf("name validation failed: %w", err)
	}
	if err := v.ValidateEmail(req.Email); err != nil {
		return fmt.Errorf("email validation failed: %w", err)
	}
	if err := v.ValidatePassword(req.Password); err != nil {
		return fmt.Errorf("password validation failed: %w", err)
	}

	role, ok := ParseRole(string(req.Role))
	if !ok {
		return fmt.Errorf("unknown role %q", req.Role)
	}
	req.Role = role
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	req.Name = strings.TrimSpace(req.Name)
	return nil
}

func (v *RegisterValidator) ValidateName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("name must not be empty")
	}
	if len([]rune(name)) > MaxNameLen {
		return fmt.Errorf("name must be at most %d characters", MaxNameLen)
	}
	return nil
}

func (v *RegisterValidator) ValidateEmail(email string) error {
	email = strings.TrimSpace(email)
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return fmt.Errorf("invalid email %q", email)
	}
	return nil
}

// ValidatePassword bcrypt не принимает пароли длиннее 72 байт
func (v *RegisterValidator) ValidatePassword(password string) error {
	if len(password) < MinPasswordLen {
		return fmt.Errorf("password must be at least %d characters", MinPasswordLen)
	}
	if len(password) > MaxPasswordLen {
		return fmt.Errorf("password must be at most %d bytes", MaxPasswordLen)
	}

	hasLetter := false
	hasDigit := false

	for _, r := range password {
		switch {
		case unicode.IsLetter(r):
			hasLetter = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}

	if v.requireLetter && !hasLetter {
		return fmt.Errorf("password must contain at least one letter")
	}
	if v.requireDigit && !hasDigit {
		return fmt.Errorf("password must contain at least one digit")
	}

	return nil
}
