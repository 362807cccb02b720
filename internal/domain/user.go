package domain

import (
	"context"
	"time"
)

// User 领域实体（不带 ORM 标签，行模型在 feature 包）
type User struct {
	ID           string
	Username     string
	PasswordHash string
	Email        *string
	RoleID       *string
	CreateDate   time.Time
	IsActive     bool

	// RoleName 仅在列表查询时由 LEFT JOIN 填充，不落库
	RoleName string
}

type UserRepository interface {
	// Create 负责散列密码、生成 ID、落库，返回已持久化的实体
	Create(ctx context.Context, u *User, password string) (*User, error)
	FindByID(ctx context.Context, id string) (*User, error)
	FindByUsername(ctx context.Context, username string) (*User, error)
	// FindByUsernameOrEmail 建新用户前的查重；email 为空串时只按用户名查
	FindByUsernameOrEmail(ctx context.Context, username, email string) (*User, error)
	List(ctx context.Context, q PageQuery) ([]User, int64, error)
}

// PageQuery 分页参数：offset = (Page-1)*PageSize
type PageQuery struct {
	Page      int
	PageSize  int
	SortField string
	Ascending bool
}
