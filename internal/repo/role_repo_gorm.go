package repo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"go-account-api/internal/domain"
	"go-account-api/internal/feature/role"
	"go-account-api/pkg/utils"
)

var roleSortColumns = map[string]string{
	"id":       "id",
	"name":     "name",
	"isActive": "is_active",
}

type RoleRepo struct{ db *gorm.DB }

func NewRoleRepo(db *gorm.DB) *RoleRepo { return &RoleRepo{db: db} }

func (r *RoleRepo) Create(ctx context.Context, e *domain.Role) (*domain.Role, error) {
	m := role.FromEntity(e)
	if m.ID == "" {
		m.ID = utils.NewID()
	}
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		if isDupKey(err) {
			return nil, &domain.ConflictError{Field: "role name", Value: e.Name}
		}
		return nil, err
	}
	return m.Entity(), nil
}

func (r *RoleRepo) FindByID(ctx context.Context, id string) (*domain.Role, error) {
	var m role.RoleModel
	err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return m.Entity(), nil
}

func (r *RoleRepo) FindByName(ctx context.Context, name string) (*domain.Role, error) {
	var m role.RoleModel
	err := r.db.WithContext(ctx).First(&m, "name = ?", name).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return m.Entity(), nil
}

func (r *RoleRepo) List(ctx context.Context, q domain.PageQuery) ([]domain.Role, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&role.RoleModel{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var models []role.RoleModel
	err := r.db.WithContext(ctx).
		Model(&role.RoleModel{}).
		Order(orderClause(q.SortField, q.Ascending, roleSortColumns, "name")).
		Offset(pageOffset(q.Page, q.PageSize)).
		Limit(q.PageSize).
		Find(&models).Error
	if err != nil {
		return nil, 0, err
	}

	out := make([]domain.Role, 0, len(models))
	for i := range models {
		out = append(out, *models[i].Entity())
	}
	return out, total, nil
}
