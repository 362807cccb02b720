package service

import (
	"context"
	"sort"
	"time"

	"go-account-api/internal/domain"
	"go-account-api/pkg/utils"
)

// stubUserRepo in-memory UserRepository that mirrors the gorm repo's contract:
// hashes on Create, enforces uniqueness, honest offset/limit pagination.
type stubUserRepo struct {
	users []domain.User
}

func newStubUserRepo() *stubUserRepo { return &stubUserRepo{} }

func (r *stubUserRepo) Create(_ context.Context, u *domain.User, password string) (*domain.User, error) {
	for i := range r.users {
		if r.users[i].Username == u.Username {
			return nil, &domain.ConflictError{Field: "username or email", Value: u.Username}
		}
		if u.Email != nil && r.users[i].Email != nil && *r.users[i].Email == *u.Email {
			return nil, &domain.ConflictError{Field: "username or email", Value: u.Username}
		}
	}
	hash, err := utils.HashPassword(password)
	if err != nil {
		return nil, err
	}
	saved := *u
	saved.PasswordHash = hash
	if saved.ID == "" {
		saved.ID = utils.NewID()
	}
	saved.CreateDate = time.Now().UTC()
	r.users = append(r.users, saved)
	out := saved
	return &out, nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	for i := range r.users {
		if r.users[i].ID == id {
			u := r.users[i]
			return &u, nil
		}
	}
	return nil, nil
}

func (r *stubUserRepo) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	for i := range r.users {
		if r.users[i].Username == username {
			u := r.users[i]
			return &u, nil
		}
	}
	return nil, nil
}

func (r *stubUserRepo) FindByUsernameOrEmail(_ context.Context, username, email string) (*domain.User, error) {
	for i := range r.users {
		if r.users[i].Username == username {
			u := r.users[i]
			return &u, nil
		}
		if email != "" && r.users[i].Email != nil && *r.users[i].Email == email {
			u := r.users[i]
			return &u, nil
		}
	}
	return nil, nil
}

func (r *stubUserRepo) List(_ context.Context, q domain.PageQuery) ([]domain.User, int64, error) {
	rows := append([]domain.User(nil), r.users...)
	sort.SliceStable(rows, func(i, j int) bool {
		var less bool
		switch q.SortField {
		case "createDate":
			less = rows[i].CreateDate.Before(rows[j].CreateDate)
		case "id":
			less = rows[i].ID < rows[j].ID
		default:
			less = rows[i].Username < rows[j].Username
		}
		if q.Ascending {
			return less
		}
		return !less
	})
	total := int64(len(rows))
	offset := (q.Page - 1) * q.PageSize
	if offset >= len(rows) {
		return nil, total, nil
	}
	end := offset + q.PageSize
	if end > len(rows) {
		end = len(rows)
	}
	return rows[offset:end], total, nil
}

type stubRoleRepo struct {
	roles []domain.Role
}

func newStubRoleRepo() *stubRoleRepo { return &stubRoleRepo{} }

func (r *stubRoleRepo) Create(_ context.Context, e *domain.Role) (*domain.Role, error) {
	for i := range r.roles {
		if r.roles[i].Name == e.Name {
			return nil, &domain.ConflictError{Field: "role name", Value: e.Name}
		}
	}
	saved := *e
	if saved.ID == "" {
		saved.ID = utils.NewID()
	}
	r.roles = append(r.roles, saved)
	out := saved
	return &out, nil
}

func (r *stubRoleRepo) FindByID(_ context.Context, id string) (*domain.Role, error) {
	for i := range r.roles {
		if r.roles[i].ID == id {
			role := r.roles[i]
			return &role, nil
		}
	}
	return nil, nil
}

func (r *stubRoleRepo) FindByName(_ context.Context, name string) (*domain.Role, error) {
	for i := range r.roles {
		if r.roles[i].Name == name {
			role := r.roles[i]
			return &role, nil
		}
	}
	return nil, nil
}

func (r *stubRoleRepo) List(_ context.Context, q domain.PageQuery) ([]domain.Role, int64, error) {
	rows := append([]domain.Role(nil), r.roles...)
	sort.SliceStable(rows, func(i, j int) bool {
		less := rows[i].Name < rows[j].Name
		if q.Ascending {
			return less
		}
		return !less
	})
	total := int64(len(rows))
	offset := (q.Page - 1) * q.PageSize
	if offset >= len(rows) {
		return nil, total, nil
	}
	end := offset + q.PageSize
	if end > len(rows) {
		end = len(rows)
	}
	return rows[offset:end], total, nil
}
