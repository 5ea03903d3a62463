//go:build unit

package middleware_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"bay-booking/internal/domain/user"
	"bay-booking/internal/handler/middleware"
	"bay-booking/internal/infra/ratelimit"
	"bay-booking/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubValidator map[string]user.Actor

func (v stubValidator) ValidateToken(token string) (user.Actor, error) {
	actor, ok := v[token]
	if !ok {
		return user.Actor{}, errors.New("invalid token")
	}
	return actor, nil
}

type stubLimiter struct {
	decision ratelimit.Decision
	err      error
}

func (l stubLimiter) Allow(context.Context, string) (ratelimit.Decision, error) {
	return l.decision, l.err
}

func newActor(t *testing.T, role user.Role) user.Actor {
	t.Helper()
	a, err := user.NewActor(uuid.New(), role)
	require.NoError(t, err)
	return a
}

func whoami(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusOK, gin.H{"role": "guest"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"role": actor.Role().String()})
}

func TestAuthMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	member := newActor(t, user.RoleUser)
	admin := newActor(t, user.RoleAdmin)
	auth := middleware.NewAuthMiddleware(stubValidator{"member": member, "admin": admin})

	r := gin.New()
	r.GET("/required", auth.RequireAuth(), whoami)
	r.GET("/optional", auth.OptionalAuth(), whoami)
	r.GET("/admin", auth.RequireAuth(), auth.RequireCapability(user.CapBlockSlots), whoami)

	cases := []struct {
		name     string
		path     string
		token    string
		wantCode int
		wantRole string
	}{
		{name: "required without token", path: "/required", wantCode: http.StatusUnauthorized},
		{name: "required with bad token", path: "/required", token: "forged", wantCode: http.StatusUnauthorized},
		{name: "required with member", path: "/required", token: "member", wantCode: http.StatusOK, wantRole: "user"},
		{name: "optional as guest", path: "/optional", wantCode: http.StatusOK, wantRole: "guest"},
		{name: "optional with member", path: "/optional", token: "member", wantCode: http.StatusOK, wantRole: "user"},
		{name: "optional with bad token", path: "/optional", token: "forged", wantCode: http.StatusUnauthorized},
		{name: "capability denied", path: "/admin", token: "member", wantCode: http.StatusForbidden},
		{name: "capability granted", path: "/admin", token: "admin", wantCode: http.StatusOK, wantRole: "admin"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.PerformRequest(t, r, http.MethodGet, tc.path, nil, tc.token)
			if tc.wantCode != http.StatusOK {
				httptest.AssertErrorResponse(t, rec, tc.wantCode, "")
				return
			}
			var body map[string]string
			httptest.AssertSuccessResponse(t, rec, http.StatusOK, &body)
			assert.Equal(t, tc.wantRole, body["role"])
		})
	}
}

func TestRequireCronSecret(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ok := func(c *gin.Context) { c.Status(http.StatusNoContent) }

	r := gin.New()
	r.POST("/cron", middleware.RequireCronSecret("s3cret"), ok)
	open := gin.New()
	open.POST("/cron", middleware.RequireCronSecret(""), ok)

	assert.Equal(t, http.StatusNoContent, httptest.PerformRequest(t, r, http.MethodPost, "/cron", nil, "s3cret").Code)
	assert.Equal(t, http.StatusUnauthorized, httptest.PerformRequest(t, r, http.MethodPost, "/cron", nil, "s3cre").Code)
	assert.Equal(t, http.StatusUnauthorized, httptest.PerformRequest(t, r, http.MethodPost, "/cron", nil, "").Code)
	// An unset secret never matches, not even an empty bearer.
	assert.Equal(t, http.StatusUnauthorized, httptest.PerformRequest(t, open, http.MethodPost, "/cron", nil, "").Code)
}

func TestRateLimit(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ok := func(c *gin.Context) { c.Status(http.StatusNoContent) }

	t.Run("denied carries retry-after", func(t *testing.T) {
		r := gin.New()
		r.GET("/x", middleware.RateLimit(stubLimiter{decision: ratelimit.Decision{RetryAfter: 1500 * time.Millisecond}}, "bookings"), ok)
		rec := httptest.PerformRequest(t, r, http.MethodGet, "/x", nil, "")
		httptest.AssertErrorResponse(t, rec, http.StatusTooManyRequests, "Too many requests")
		httptest.AssertHeaders(t, rec, map[string]string{"Retry-After": "2"})
	})

	t.Run("allowed", func(t *testing.T) {
		r := gin.New()
		r.GET("/x", middleware.RateLimit(stubLimiter{decision: ratelimit.Decision{Allowed: true}}, "bookings"), ok)
		assert.Equal(t, http.StatusNoContent, httptest.PerformRequest(t, r, http.MethodGet, "/x", nil, "").Code)
	})

	t.Run("limiter outage fails open", func(t *testing.T) {
		r := gin.New()
		r.GET("/x", middleware.RateLimit(stubLimiter{err: errors.New("redis down")}, "bookings"), ok)
		assert.Equal(t, http.StatusNoContent, httptest.PerformRequest(t, r, http.MethodGet, "/x", nil, "").Code)
	})
}

func TestCustomRecovery(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.CustomRecovery())
	r.GET("/panic", func(*gin.Context) { panic("nil map write") })

	rec := httptest.PerformRequest(t, r, http.MethodGet, "/panic", nil, "")
	httptest.AssertErrorResponse(t, rec, http.StatusInternalServerError, "Internal server error")
}
