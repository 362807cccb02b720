package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"go-account-api/internal/core/auth"
	"go-account-api/internal/transport/http/handler"
	mdw "go-account-api/internal/transport/http/middleware"
)

// NewEngine 依赖全部显式传入，挂载在启动时一次完成
func NewEngine(l *zap.Logger, jwter *auth.JWTer, authH *handler.AuthHandler, userH *handler.UserHandler, roleH *handler.RoleHandler) *gin.Engine {
	r := gin.New()

	r.Use(
		mdw.RequestID(),
		mdw.RateLimit(200, 400),
		mdw.ConcurrencyLimit(300),
		mdw.MaxBodyBytes(1<<20),
		mdw.Timeout(10*time.Second),
		ginzap.RecoveryWithZap(l, true),
		mdw.Metrics(),
		mdw.AccessLog(l),
		cors.Default(),
	)

	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": 1}) })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")

	authGrp := api.Group("/auth")
	{
		authGrp.POST("/login", authH.Login)
		authGrp.GET("/me", mdw.AuthJWT(jwter), authH.Me)
	}

	userGrp := api.Group("/user")
	{
		userGrp.POST("/", userH.Create)
		userGrp.GET("/", userH.List)
		userGrp.GET("/:id", userH.Get)
	}

	roleGrp := api.Group("/role")
	{
		roleGrp.POST("/", roleH.Create)
		roleGrp.GET("/", roleH.List)
		roleGrp.GET("/:id", roleH.Get)
	}

	return r
}
