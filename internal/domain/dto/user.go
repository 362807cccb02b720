package dto

import "time"

// UserCreate 建用户请求体；密码只在这里出现，出参一律不带
type UserCreate struct {
	Username string  `json:"username" binding:"required,min=3,max=50"`
	Password string  `json:"password" binding:"required,min=6,max=72"`
	Email    *string `json:"email" binding:"omitempty,email,max=100"`
	RoleID   *string `json:"roleId" binding:"omitempty,max=36"`
	IsActive *bool   `json:"isActive"`
}

type UserResponse struct {
	ID         string    `json:"id"`
	Username   string    `json:"username"`
	Email      *string   `json:"email"`
	RoleID     *string   `json:"roleId"`
	CreateDate time.Time `json:"createDate"`
	IsActive   bool      `json:"isActive"`
	RoleName   string    `json:"roleName,omitempty"`
}

type UserLogin struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type UserLoginResponse struct {
	User  UserResponse `json:"user"`
	Token string       `json:"token"`
}
