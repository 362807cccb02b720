package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"go-account-api/internal/domain"
)

// Envelope 所有端点统一出参形状
type Envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data"`
	Errors  any    `json:"errors"`
}

func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, Envelope{Success: true, Message: "Success", Data: data})
}

func Fail(c *gin.Context, status int, message string, errs any) {
	c.JSON(status, Envelope{Success: false, Message: message, Errors: errs})
}

func NotFound(c *gin.Context, message string) {
	Fail(c, http.StatusNotFound, message, nil)
}

func BadRequest(c *gin.Context, errs any) {
	Fail(c, http.StatusBadRequest, "Bad Request", errs)
}

// Error 领域错误 → 状态码的唯一翻译点；未知错误对外不透出细节，原始错误落日志
func Error(c *gin.Context, log *zap.Logger, err error) {
	var ce *domain.ConflictError
	switch {
	case errors.As(err, &ce):
		Fail(c, http.StatusBadRequest, "Already exists", ce.Error())
	case errors.Is(err, domain.ErrInvalidCredentials):
		Fail(c, http.StatusUnauthorized, domain.ErrInvalidCredentials.Error(), nil)
	case errors.Is(err, domain.ErrNotFound):
		NotFound(c, "Not Found")
	default:
		log.Error("unhandled error",
			zap.String("rid", c.GetString("X-Request-ID")),
			zap.String("path", c.FullPath()),
			zap.Error(err),
		)
		Fail(c, http.StatusInternalServerError, "Internal server error", nil)
	}
}
