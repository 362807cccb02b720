package user

import (
	"time"

	"go-account-api/internal/domain"
)

// UserModel users 表行模型；唯一索引是冲突判定的最终依据
type UserModel struct {
	ID           string    `gorm:"primaryKey;size:36"`
	Username     string    `gorm:"uniqueIndex;size:50;not null"`
	PasswordHash string    `gorm:"size:100;not null"`
	Email        *string   `gorm:"uniqueIndex;size:100"`
	RoleID       *string   `gorm:"index;size:36"`
	CreateDate   time.Time `gorm:"not null"`
	IsActive     bool      `gorm:"not null;default:true"`
}

func (UserModel) TableName() string { return "users" }

// 行 ↔ 实体 逐字段显式转换

func (m *UserModel) Entity() *domain.User {
	return &domain.User{
		ID:           m.ID,
		Username:     m.Username,
		PasswordHash: m.PasswordHash,
		Email:        m.Email,
		RoleID:       m.RoleID,
		CreateDate:   m.CreateDate,
		IsActive:     m.IsActive,
	}
}

func FromEntity(u *domain.User) *UserModel {
	return &UserModel{
		ID:           u.ID,
		Username:     u.Username,
		PasswordHash: u.PasswordHash,
		Email:        u.Email,
		RoleID:       u.RoleID,
		CreateDate:   u.CreateDate,
		IsActive:     u.IsActive,
	}
}
