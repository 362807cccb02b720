package utils

import (
	"strings"

	"github.com/google/uuid"
)

// NewID 36 位以内的无连字符 UUID，作为 users/roles 主键
func NewID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}
