package middleware

import (
	"log/slog"
	"math"
	"net/http"
	"strconv"

	"bay-booking/internal/handler/httperr"
	"bay-booking/internal/infra/ratelimit"

	"github.com/gin-gonic/gin"
)

// RateLimit throttles per client IP within a route group.
// Limiter errors let the request through.
func RateLimit(limiter ratelimit.Limiter, group string) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := group + "|" + c.ClientIP()

		d, err := limiter.Allow(c.Request.Context(), key)
		if err != nil {
			slog.Warn("Rate limiter unavailable", "group", group, "error", err)
			c.Next()
			return
		}
		if !d.Allowed {
			seconds := max(1, int(math.Ceil(d.RetryAfter.Seconds())))
			c.Header("Retry-After", strconv.Itoa(seconds))
			httperr.AbortWithError(c, http.StatusTooManyRequests, nil, "Too many requests, please try again later", gin.H{"retry_after": seconds})
			return
		}
		c.Next()
	}
}
