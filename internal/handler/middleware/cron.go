package middleware

import (
	"crypto/subtle"
	"net/http"

	"bay-booking/internal/handler/httperr"

	"github.com/gin-gonic/gin"
)

// RequireCronSecret guards scheduler endpoints with a shared bearer secret.
func RequireCronSecret(secret string) gin.HandlerFunc {
	want := []byte(secret)
	return func(c *gin.Context) {
		got := []byte(bearerToken(c))
		if len(want) == 0 || subtle.ConstantTimeCompare(got, want) != 1 {
			httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
			return
		}
		c.Next()
	}
}
