//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"bay-booking/internal/domain/user"
	"bay-booking/internal/pkg/config"
	"bay-booking/internal/pkg/jwt"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// JWTHelper signs tokens the way the session provider does.
type JWTHelper struct {
	cfg config.JWTConfig
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{cfg: cfg}
}

func (h *JWTHelper) Sign(t *testing.T, claims jwt.Claims) string {
	t.Helper()
	token, err := gojwt.NewWithClaims(gojwt.SigningMethodHS256, claims).SignedString([]byte(h.cfg.Secret))
	require.NoError(t, err)
	return token
}

func (h *JWTHelper) issue(t *testing.T, userID uuid.UUID, role user.Role, issuedAt time.Time, lifetime time.Duration) string {
	t.Helper()
	return h.Sign(t, jwt.Claims{
		UserID: userID,
		Role:   role.String(),
		RegisteredClaims: gojwt.RegisteredClaims{
			IssuedAt:  gojwt.NewNumericDate(issuedAt),
			ExpiresAt: gojwt.NewNumericDate(issuedAt.Add(lifetime)),
		},
	})
}

func (h *JWTHelper) GenerateToken(t *testing.T, userID uuid.UUID, role user.Role) string {
	t.Helper()
	return h.issue(t, userID, role, time.Now(), h.cfg.MaxAge)
}

// NewMember returns a fresh member id with a valid token for it.
func (h *JWTHelper) NewMember(t *testing.T) (uuid.UUID, string) {
	t.Helper()
	id := uuid.New()
	return id, h.GenerateToken(t, id, user.RoleUser)
}

func (h *JWTHelper) NewAdmin(t *testing.T) (uuid.UUID, string) {
	t.Helper()
	id := uuid.New()
	return id, h.GenerateToken(t, id, user.RoleAdmin)
}

func (h *JWTHelper) CreateExpiredToken(t *testing.T, userID uuid.UUID, role user.Role) string {
	t.Helper()
	return h.issue(t, userID, role, time.Now().Add(-2*time.Hour), time.Hour)
}
