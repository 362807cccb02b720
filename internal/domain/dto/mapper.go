package dto

import "go-account-api/internal/domain"

// 实体 → 出参，逐字段显式拷贝。密码散列永远不进任何出参。

func NewUserResponse(u *domain.User) *UserResponse {
	if u == nil {
		return nil
	}
	return &UserResponse{
		ID:         u.ID,
		Username:   u.Username,
		Email:      u.Email,
		RoleID:     u.RoleID,
		CreateDate: u.CreateDate,
		IsActive:   u.IsActive,
		RoleName:   u.RoleName,
	}
}

func NewUserResponseList(users []domain.User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for i := range users {
		out = append(out, *NewUserResponse(&users[i]))
	}
	return out
}

func NewRoleResponse(r *domain.Role) *RoleResponse {
	if r == nil {
		return nil
	}
	return &RoleResponse{ID: r.ID, Name: r.Name, IsActive: r.IsActive}
}

func NewRoleResponseList(roles []domain.Role) []RoleResponse {
	out := make([]RoleResponse, 0, len(roles))
	for i := range roles {
		out = append(out, *NewRoleResponse(&roles[i]))
	}
	return out
}

// 入参 → 实体。IsActive 缺省按 true 处理。

func (in *UserCreate) Entity() *domain.User {
	active := true
	if in.IsActive != nil {
		active = *in.IsActive
	}
	return &domain.User{
		Username: in.Username,
		Email:    in.Email,
		RoleID:   in.RoleID,
		IsActive: active,
	}
}

func (in *RoleCreate) Entity() *domain.Role {
	active := true
	if in.IsActive != nil {
		active = *in.IsActive
	}
	return &domain.Role{Name: in.Name, IsActive: active}
}
