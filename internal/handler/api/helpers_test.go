//go:build unit

package api_test

import (
	"net/http"
	"strings"
	"testing"

	"bay-booking/internal/domain/user"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

const (
	memberToken = "member-token"
	adminToken  = "admin-token"
)

type testActors struct {
	member user.Actor
	admin  user.Actor
}

func newTestActors(t *testing.T) testActors {
	t.Helper()
	member, err := user.NewActor(uuid.New(), user.RoleUser)
	require.NoError(t, err)
	admin, err := user.NewActor(uuid.New(), user.RoleAdmin)
	require.NoError(t, err)
	return testActors{member: member, admin: admin}
}

// fakeAuth stands in for the JWT middleware, keyed by opaque test tokens.
func (a testActors) fakeAuth(required bool) gin.HandlerFunc {
	byToken := map[string]user.Actor{memberToken: a.member, adminToken: a.admin}
	return func(c *gin.Context) {
		token := strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")
		actor, ok := byToken[token]
		if !ok {
			if required {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
				return
			}
			c.Next()
			return
		}
		c.Set("actor", actor)
		c.Next()
	}
}
