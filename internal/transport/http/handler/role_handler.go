package handler

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"go-account-api/internal/domain/dto"
	"go-account-api/internal/service"
	"go-account-api/internal/transport/http/response"
)

type RoleHandler struct {
	svc service.RoleService
	log *zap.Logger
}

func NewRoleHandler(svc service.RoleService, log *zap.Logger) *RoleHandler {
	return &RoleHandler{svc: svc, log: log}
}

// Create POST /api/role/
func (h *RoleHandler) Create(c *gin.Context) {
	var in dto.RoleCreate
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

// Get GET /api/role/:id
func (h *RoleHandler) Get(c *gin.Context) {
	out, err := h.svc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, h.log, err)
		return
	}
	if out == nil {
		response.NotFound(c, "Role not found")
		return
	}
	response.OK(c, out)
}

// List GET /api/role/?page&page_size&sort_field&ascending
func (h *RoleHandler) List(c *gin.Context) {
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
