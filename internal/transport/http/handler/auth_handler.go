package handler

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"go-account-api/internal/domain/dto"
	"go-account-api/internal/service"
	"go-account-api/internal/transport/http/middleware"
	"go-account-api/internal/transport/http/response"
)

type AuthHandler struct {
	svc service.LoginService
	log *zap.Logger
}

func NewAuthHandler(svc service.LoginService, log *zap.Logger) *AuthHandler {
	return &AuthHandler{svc: svc, log: log}
}

// Login POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var in dto.UserLogin
	if err := c.ShouldBindJSON(&in); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	out, err := h.svc.Login(c.Request.Context(), &in)
	if err != nil {
		response.Error(c, h.log, err)
		return
	}
	response.OK(c, out)
}

// Me GET /api/auth/me（JWT 保护）
func (h *AuthHandler) Me(c *gin.Context) {
	username := c.GetString(middleware.KeyUsername)
	out, err := h.svc.CurrentUser(c.Request.Context(), username)
	if err != nil {
		response.Error(c, h.log, err)
		return
	}
	response.OK(c, out)
}
