package session

import "strings"

// Role роль пользователя маркетплейса
type Role string

const (
	RoleAdmin  Role = "ADMIN"
	RoleFarmer Role = "FARMER"
	RoleBuyer  Role = "BUYER"
)

// ParseRole приводит строку к роли, регистр не важен
func ParseRole(s string) (Role, bool) {
	switch Role(strings.ToUpper(strings.TrimSpace(s))) {
	case RoleAdmin:
		return RoleAdmin, true
	case RoleFarmer:
		return RoleFarmer, true
	case RoleBuyer:
		return RoleBuyer, true
	}
	return "", false
}

// Profile дополнительные поля профиля, которые возвращает сервер при входе
type Profile struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone,omitempty"`
	Location string `json:"location,omitempty"`
}

// Session аутентифицированная личность вместе с учетными данными
type Session struct {
	IdentityID string  `json:"identity_id"`
	Role       Role    `json:"role"`
	Credential string  `json:"credential"`
	Profile    Profile `json:"profile"`
}

// HasCredential сообщает, можно ли ходить на сервер от имени этой сессии
func (s *Session) HasCredential() bool {
	return s != nil && strings.TrimSpace(s.Credential) != ""
}

// Clone возвращает копию сессии
func (s *Session) Clone() *Session {
	if s == nil {
		return nil
	}
	dup := *s
	return &dup
}

// Roles набор ролей, которым разрешен доступ к коллекции. Пустой набор - любая роль.
type Roles []Role

// Allows проверяет, подходит ли сессия под набор ролей
func (r Roles) Allows(s *Session) bool {
	if !s.HasCredential() {
		return false
	}
	if len(r) == 0 {
		return true
	}
	for _, role := range r {
		if role == s.Role {
			return true
		}
	}
	return false
}
