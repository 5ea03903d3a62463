package jwt

import (
	"errors"
	"time"

	"bay-booking/internal/domain/user"
	"bay-booking/internal/pkg/errs"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token expired")
)

// Claims mirror what the session provider signs.
type Claims struct {
	UserID uuid.UUID `json:"user_id"`
	Role   string    `json:"role"`
	jwt.RegisteredClaims
}

// Service verifies provider-issued HS256 tokens. It never issues them.
type Service struct {
	secretKey []byte
	maxAge    time.Duration
	parser    *jwt.Parser
}

func NewService(secretKey string, maxAge time.Duration) *Service {
	return &Service{
		secretKey: []byte(secretKey),
		maxAge:    maxAge,
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
			jwt.WithExpirationRequired(),
			jwt.WithIssuedAt(),
			jwt.WithLeeway(5*time.Second),
		),
	}
}

// Authenticate verifies tokenString and returns the actor it names.
func (s *Service) Authenticate(tokenString string) (user.Actor, error) {
	claims := &Claims{}
	_, err := s.parser.ParseWithClaims(tokenString, claims, func(*jwt.Token) (any, error) {
		return s.secretKey, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return user.Actor{}, ErrExpiredToken
		}
		return user.Actor{}, ErrInvalidToken
	}

	if claims.IssuedAt == nil || claims.ExpiresAt.Sub(claims.IssuedAt.Time) > s.maxAge {
		return user.Actor{}, ErrInvalidToken
	}

	role, err := user.NewRole(claims.Role)
	if err != nil {
		return user.Actor{}, errs.Mark(err, ErrInvalidToken)
	}
	actor, err := user.NewActor(claims.UserID, role)
	if err != nil {
		return user.Actor{}, errs.Mark(err, ErrInvalidToken)
	}
	return actor, nil
}
