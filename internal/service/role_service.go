package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"go-account-api/internal/core/cache"
	"go-account-api/internal/domain"
	"go-account-api/internal/domain/dto"
)

type roleService struct {
	repo     domain.RoleRepository
	cache    *cache.Cache
	cacheTTL time.Duration
	log      *zap.Logger
}

func NewRoleService(repo domain.RoleRepository, c *cache.Cache, cacheTTL time.Duration, log *zap.Logger) RoleService {
	return &roleService{repo: repo, cache: c, cacheTTL: cacheTTL, log: log}
}

func (s *roleService) Create(ctx context.Context, in *dto.RoleCreate) (*dto.RoleResponse, error) {
	existing, err := s.repo.FindByName(ctx, in.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, &domain.ConflictError{Field: "role name", Value: in.Name}
	}

	created, err := s.repo.Create(ctx, in.Entity())
	if err != nil {
		return nil, err
	}
	s.log.Info("role created", zap.String("id", created.ID), zap.String("name", created.Name))
	return dto.NewRoleResponse(created), nil
}

func (s *roleService) GetByID(ctx context.Context, id string) (*dto.RoleResponse, error) {
	if s.cache != nil {
		return cache.GetOrLoadJSON(s.cache, ctx, "role:"+id, s.cacheTTL, func(ctx context.Context) (*dto.RoleResponse, error) {
			return s.loadByID(ctx, id)
		})
	}
	return s.loadByID(ctx, id)
}

func (s *roleService) loadByID(ctx context.Context, id string) (*dto.RoleResponse, error) {
	r, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if r == nil {
		return nil, nil
	}
	return dto.NewRoleResponse(r), nil
}

func (s *roleService) List(ctx context.Context, q dto.PageQuery) (*dto.PageResult, error) {
	pq := normalizePage(q, "name")
	roles, total, err := s.repo.List(ctx, pq)
	if err != nil {
		return nil, err
	}
	return &dto.PageResult{
		Total:    total,
		Data:     dto.NewRoleResponseList(roles),
		Page:     pq.Page,
		PageSize: pq.PageSize,
	}, nil
}
