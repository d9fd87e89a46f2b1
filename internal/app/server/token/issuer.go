package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"agroportal/internal/domain/session"
)

const defaultTTL = 24 * time.Hour

var (
	ErrMissingSecret  = errors.New("signing secret must be provided")
	ErrMissingSubject = errors.New("subject claim must be provided")
)

// Claims содержимое токена доступа
type Claims struct {
	Role session.Role `json:"role"`
	jwt.RegisteredClaims
}

type Config struct {
	Secret []byte
	Issuer string
	TTL    time.Duration
	Clock  func() time.Time
}

// Issuer выпускает и проверяет HS256 токены
type Issuer struct {
	secret []byte
	issuer string
	ttl    time.Duration
	clock  func() time.Time
}

func NewIssuer(cfg Config) *Issuer {
	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = defaultTTL
	}
	clock := cfg.Clock
	if clock == nil {
		clock = time.Now
	}
	return &Issuer{
		secret: cfg.Secret,
		issuer: cfg.Issuer,
		ttl:    ttl,
		clock:  clock,
	}
}

// Issue подписывает токен для пользователя
func (i *Issuer) Issue(userID string, role session.Role) (string, error) {
	if len(i.secret) == 0 {
		return "", ErrMissingSecret
	}
	if userID == "" {
		return "", ErrMissingSubject
	}

	now := i.clock().UTC()
	claims := Claims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			Issuer:    i.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.secret)
	if err != nil {
		return "", fmt.Errorf("ошибка подписи токена: %w", err)
	}
	return signed, nil
}

// Validate проверяет подпись, срок и издателя токена
func (i *Issuer) Validate(tokenString string) (*Claims, error) {
	if len(i.secret) == 0 {
		return nil, ErrMissingSecret
	}

	claims := &Claims{}
	_, err := jwt.ParseWithClaims(
		tokenString,
		claims,
		func(token *jwt.Token) (interface{}, error) {
			if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
				return nil, fmt.Errorf("unexpected signing algorithm: %s", token.Method.Alg())
			}
			return i.secret, nil
		},
		jwt.WithIssuer(i.issuer),
		jwt.WithTimeFunc(i.clock),
	)
	if err != nil {
		return nil, err
	}
	if claims.Subject == "" {
		return nil, ErrMissingSubject
	}
	return claims, nil
}
