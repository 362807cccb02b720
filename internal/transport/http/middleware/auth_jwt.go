package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"go-account-api/internal/core/auth"
	"go-account-api/internal/transport/http/response"
)

// KeyUsername 鉴权通过后从上下文取当前用户名
const KeyUsername = "username"

func AuthJWT(j *auth.JWTer) gin.HandlerFunc {
	return func(c *gin.Context) {
		ah := c.GetHeader("Authorization")
		if !strings.HasPrefix(ah, "Bearer ") {
			response.Fail(c, http.StatusUnauthorized, "missing token", nil)
			c.Abort()
			return
		}
		claims, err := j.Parse(strings.TrimPrefix(ah, "Bearer "))
		if err != nil {
			response.Fail(c, http.StatusUnauthorized, "invalid token", nil)
			c.Abort()
			return
		}
		c.Set(KeyUsername, claims.Subject)
		c.Next()
	}
}
