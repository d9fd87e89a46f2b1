package market

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"agroportal/internal/domain/directory"
	"agroportal/internal/domain/notification"
	"agroportal/internal/domain/session"
)

func newID() string {
	return uuid.NewString()
}

// Register создает пользователя с хешированным паролем
func (s *Store) Register(_ context.Context, req session.RegisterRequest) (string, error) {
	if err := s.validator.Validate(&req); err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	email, role := req.Email, req.Role

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.hashCost)
	if err != nil {
		return "", fmt.Errorf("ошибка хеширования пароля: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.byEmail[email]; exists {
		return "", fmt.Errorf("%w: %s", ErrConflict, email)
	}

	acc := &account{
		id:   newID(),
		role: role,
		profile: session.Profile{
			Name:     req.Name,
			Email:    email,
			Phone:    req.Phone,
			Location: req.Location,
		},
		hash:      hash,
		active:    true,
		createdAt: s.now().UTC(),
	}
	s.notifyLocked(acc, "system", "Добро пожаловать", "Аккаунт создан", notification.PriorityLow)

	s.accounts[acc.id] = acc
	s.byEmail[email] = acc.id

	s.log.Info("Пользователь зарегистрирован", "user_id", acc.id, "role", role)
	return acc.id, nil
}

// Authenticate проверяет email и пароль
func (s *Store) Authenticate(_ context.Context, email, password string) (string, session.Role, session.Profile, error) {
	s.mu.Lock()
	id, ok := s.byEmail[strings.ToLower(strings.TrimSpace(email))]
	var acc *account
	if ok {
		acc = s.accounts[id]
	}
	s.mu.Unlock()

	if acc == nil || !acc.active {
		return "", "", session.Profile{}, ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword(acc.hash, []byte(password)); err != nil {
		return "", "", session.Profile{}, ErrUnauthorized
	}
	return acc.id, acc.role, acc.profile, nil
}

// Users справочник пользователей для администратора
func (s *Store) Users(_ context.Context) ([]directory.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.faultLocked(OpUsers); err != nil {
		return nil, err
	}

	users := make([]directory.User, 0, len(s.accounts))
	for _, acc := range s.accounts {
		users = append(users, directory.User{
			ID:     acc.id,
			Name:   acc.profile.Name,
			Email:  acc.profile.Email,
			Role:   string(acc.role),
			Active: acc.active,
		})
	}
	sort.Slice(users, func(i, j int) bool { return users[i].Email < users[j].Email })
	return users, nil
}

// SeedDemo демонстрационные пользователи с паролем "password"
func (s *Store) SeedDemo(ctx context.Context) error {
	demo := []session.RegisterRequest{
		{Name: "Покупатель", Email: "buyer@agro.local", Password: "password", Role: session.RoleBuyer, Location: "Казань"},
		{Name: "Фермер", Email: "farmer@agro.local", Password: "password", Role: session.RoleFarmer, Location: "Краснодар"},
		{Name: "Администратор", Email: "admin@agro.local", Password: "password", Role: session.RoleAdmin},
	}
	for _, req := range demo {
		if _, err := s.Register(ctx, req); err != nil {
			return fmt.Errorf("ошибка создания демо пользователя %s: %w", req.Email, err)
		}
	}
	return nil
}
