package handler

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"go-account-api/internal/domain/dto"
	"go-account-api/internal/service"
	"go-account-api/internal/transport/http/response"
)

type UserHandler struct {
	svc service.UserService
	log *zap.Logger
}

func NewUserHandler(svc service.UserService, log *zap.Logger) *UserHandler {
	return &UserHandler{svc: svc, log: log}
}

// Create POST /api/user/
func (h *UserHandler) Create(c *gin.Context) {
	var in dto.UserCreate
	if err := c.ShouldBindJSON(&in); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	out, err := h.svc.Create(c.Request.Context(), &in)
	if err != nil {
		response.Error(c, h.log, err)
		return
	}
	response.OK(c, out)
}

// Get GET /api/user/:id
func (h *UserHandler) Get(c *gin.Context) {
	out, err := h.svc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, h.log, err)
		return
	}
	if out == nil {
		response.NotFound(c, "User not found")
		return
	}
	response.OK(c, out)
}

// List GET /api/user/?page&page_size&sort_field&ascending
func (h *UserHandler) List(c *gin.Context) {
	var q dto.PageQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	out, err := h.svc.List(c.Request.Context(), q)
	if err != nil {
		response.Error(c, h.log, err)
		return
	}
	response.OK(c, out)
}
