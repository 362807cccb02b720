package domain

import (
	"errors"
	"fmt"
)

// ErrInvalidCredentials 登录失败：用户不存在和密码错误对外同一个消息
var ErrInvalidCredentials = errors.New("invalid username or password")

// ErrNotFound 按 ID 查不到时边界层转 404；仓储层查不到返回 (nil, nil)，不返回该错误
var ErrNotFound = errors.New("not found")

// ConflictError 唯一键冲突（用户名/邮箱/角色名已被占用），带上冲突的取值
type ConflictError struct {
	Field string
	Value string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s already taken: %s", e.Field, e.Value)
}

func IsConflict(err error) bool {
	var ce *ConflictError
	return errors.As(err, &ce)
}
