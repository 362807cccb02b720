package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"go-account-api/internal/core/cache"
	"go-account-api/internal/domain"
	"go-account-api/internal/domain/dto"
)

type userService struct {
	repo     domain.UserRepository
	cache    *cache.Cache // 可为 nil，直连仓储
	cacheTTL time.Duration
	log      *zap.Logger
}

func NewUserService(repo domain.UserRepository, c *cache.Cache, cacheTTL time.Duration, log *zap.Logger) UserService {
	return &userService{repo: repo, cache: c, cacheTTL: cacheTTL, log: log}
}

func (s *userService) Create(ctx context.Context, in *dto.UserCreate) (*dto.UserResponse, error) {
	email := ""
	if in.Email != nil {
		email = *in.Email
	}

	// 先查重给友好报错；真正的兜底是唯一索引，冲突由仓储翻译成同一类错误
	existing, err := s.repo.FindByUsernameOrEmail(ctx, in.Username, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, &domain.ConflictError{Field: "username or email", Value: in.Username}
	}

	created, err := s.repo.Create(ctx, in.Entity(), in.Password)
	if err != nil {
		return nil, err
	}
	s.log.Info("user created", zap.String("id", created.ID), zap.String("username", created.Username))
	return dto.NewUserResponse(created), nil
}

func (s *userService) GetByID(ctx context.Context, id string) (*dto.UserResponse, error) {
	if s.cache != nil {
		return cache.GetOrLoadJSON(s.cache, ctx, "user:"+id, s.cacheTTL, func(ctx context.Context) (*dto.UserResponse, error) {
			return s.loadByID(ctx, id)
		})
	}
	return s.loadByID(ctx, id)
}

func (s *userService) loadByID(ctx context.Context, id string) (*dto.UserResponse, error) {
	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, nil
	}
	return dto.NewUserResponse(u), nil
}

func (s *userService) List(ctx context.Context, q dto.PageQuery) (*dto.PageResult, error) {
	pq := normalizePage(q, "username")
	users, total, err := s.repo.List(ctx, pq)
	if err != nil {
		return nil, err
	}
	return &dto.PageResult{
		Total:    total,
		Data:     dto.NewUserResponseList(users),
		Page:     pq.Page,
		PageSize: pq.PageSize,
	}, nil
}

// normalizePage 参数钳制：page>=1，page_size 1..100，排序字段缺省按实体定
func normalizePage(q dto.PageQuery, defaultSort string) domain.PageQuery {
	page := q.Page
	if page < 1 {
		page = 1
	}
	size := q.PageSize
	if size < 1 {
		size = 10
	}
	if size > 100 {
		size = 100
	}
	field := q.SortField
	if field == "" {
		field = defaultSort
	}
	return domain.PageQuery{Page: page, PageSize: size, SortField: field, Ascending: q.Ascending}
}
