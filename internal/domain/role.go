package domain

import "context"

type Role struct {
	ID       string
	Name     string
	IsActive bool
}

type RoleRepository interface {
	Create(ctx context.Context, r *Role) (*Role, error)
	FindByID(ctx context.Context, id string) (*Role, error)
	FindByName(ctx context.Context, name string) (*Role, error)
	List(ctx context.Context, q PageQuery) ([]Role, int64, error)
}
