package repo

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"go-account-api/internal/domain"
	"go-account-api/internal/feature/user"
	"go-account-api/pkg/utils"
)

// userSortColumns 排序字段白名单：入参字段 → 列名，挡掉注入和任意列排序
var userSortColumns = map[string]string{
	"id":         "users.id",
	"username":   "users.username",
	"email":      "users.email",
	"createDate": "users.create_date",
	"isActive":   "users.is_active",
}

type UserRepo struct{ db *gorm.DB }

func NewUserRepo(db *gorm.DB) *UserRepo { return &UserRepo{db: db} }

// Create 在这里散列密码、补 ID 和 UTC 创建时间；唯一索引冲突翻译成 ConflictError
func (r *UserRepo) Create(ctx context.Context, u *domain.User, password string) (*domain.User, error) {
	hash, err := utils.HashPassword(password)
	if err != nil {
		return nil, err
	}
	m := user.FromEntity(u)
	m.PasswordHash = hash
	if m.ID == "" {
		m.ID = utils.NewID()
	}
	m.CreateDate = time.Now().UTC()

	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		if isDupKey(err) {
			return nil, &domain.ConflictError{Field: "username or email", Value: u.Username}
		}
		return nil, err
	}
	return m.Entity(), nil
}

func (r *UserRepo) FindByID(ctx context.Context, id string) (*domain.User, error) {
	var m user.UserModel
	err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return m.Entity(), nil
}

func (r *UserRepo) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	var m user.UserModel
	err := r.db.WithContext(ctx).First(&m, "username = ?", username).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return m.Entity(), nil
}

func (r *UserRepo) FindByUsernameOrEmail(ctx context.Context, username, email string) (*domain.User, error) {
	q := r.db.WithContext(ctx).Model(&user.UserModel{})
	if email != "" {
		q = q.Where("username = ? OR email = ?", username, email)
	} else {
		q = q.Where("username = ?", username)
	}
	var m user.UserModel
	err := q.First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return m.Entity(), nil
}

// userRow 列表查询的扫描目标：users.* 外加 LEFT JOIN 来的角色名
type userRow struct {
	user.UserModel `gorm:"embedded"`
	RoleName       *string
}

// List 总数单独全表 count，不受页窗口影响；LEFT JOIN 保证无角色用户也在列表里
func (r *UserRepo) List(ctx context.Context, q domain.PageQuery) ([]domain.User, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&user.UserModel{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []userRow
	err := r.db.WithContext(ctx).
		Model(&user.UserModel{}).
		Select("users.*, roles.name AS role_name").
		Joins("LEFT JOIN roles ON roles.id = users.role_id").
		Order(orderClause(q.SortField, q.Ascending, userSortColumns, "users.username")).
		Offset(pageOffset(q.Page, q.PageSize)).
		Limit(q.PageSize).
		Find(&rows).Error
	if err != nil {
		return nil, 0, err
	}

	out := make([]domain.User, 0, len(rows))
	for i := range rows {
		e := rows[i].UserModel.Entity()
		if rows[i].RoleName != nil {
			e.RoleName = *rows[i].RoleName
		}
		out = append(out, *e)
	}
	return out, total, nil
}
