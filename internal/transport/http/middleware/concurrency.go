package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/semaphore"

	"go-account-api/internal/transport/http/response"
)

// ConcurrencyLimit 限制在途请求数，保护下游数据库
func ConcurrencyLimit(max int64) gin.HandlerFunc {
	sem := semaphore.NewWeighted(max)
	return func(c *gin.Context) {
		if err := sem.Acquire(c, 1); err != nil {
			response.Fail(c, http.StatusServiceUnavailable, "server busy", nil)
			c.Abort()
			return
		}
		defer sem.Release(1)
		c.Next()
	}
}
