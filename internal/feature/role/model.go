package role

import "go-account-api/internal/domain"

// RoleModel roles 表行模型
type RoleModel struct {
	ID       string `gorm:"primaryKey;size:36"`
	Name     string `gorm:"uniqueIndex;size:50;not null"`
	IsActive bool   `gorm:"not null;default:true"`
}

func (RoleModel) TableName() string { return "roles" }

func (m *RoleModel) Entity() *domain.Role {
	return &domain.Role{ID: m.ID, Name: m.Name, IsActive: m.IsActive}
}

func FromEntity(r *domain.Role) *RoleModel {
	return &RoleModel{ID: r.ID, Name: r.Name, IsActive: r.IsActive}
}
