package service

import (
	"context"

	"go-account-api/internal/domain/dto"
)

// handler 依赖这些接口，启动时注入具体实现

type UserService interface {
	Create(ctx context.Context, in *dto.UserCreate) (*dto.UserResponse, error)
	// GetByID 查不到返回 (nil, nil)，404 由边界层决定
	GetByID(ctx context.Context, id string) (*dto.UserResponse, error)
	List(ctx context.Context, q dto.PageQuery) (*dto.PageResult, error)
}

type RoleService interface {
	Create(ctx context.Context, in *dto.RoleCreate) (*dto.RoleResponse, error)
	GetByID(ctx context.Context, id string) (*dto.RoleResponse, error)
	List(ctx context.Context, q dto.PageQuery) (*dto.PageResult, error)
}

type LoginService interface {
	Login(ctx context.Context, in *dto.UserLogin) (*dto.UserLoginResponse, error)
	CurrentUser(ctx context.Context, username string) (*dto.UserResponse, error)
}
