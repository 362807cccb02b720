package service

import (
	"context"

	"go.uber.org/zap"

	"go-account-api/internal/core/auth"
	"go-account-api/internal/domain"
	"go-account-api/internal/domain/dto"
	"go-account-api/pkg/utils"
)

type loginService struct {
	repo  domain.UserRepository
	jwter *auth.JWTer
	log   *zap.Logger
}

func NewLoginService(repo domain.UserRepository, jwter *auth.JWTer, log *zap.Logger) LoginService {
	return &loginService{repo: repo, jwter: jwter, log: log}
}

// authenticate 用户不存在和密码不匹配返回完全相同的 (nil, nil)
func (s *loginService) authenticate(ctx context.Context, username, password string) (*domain.User, error) {
	u, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if u == nil || !utils.CheckPassword(password, u.PasswordHash) {
		return nil, nil
	}
	return u, nil
}

func (s *loginService) Login(ctx context.Context, in *dto.UserLogin) (*dto.UserLoginResponse, error) {
	u, err := s.authenticate(ctx, in.Username, in.Password)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrInvalidCredentials
	}

	token, err := s.jwter.Issue(u.Username)
	if err != nil {
		return nil, err
	}
	s.log.Info("login", zap.String("username", u.Username))
	return &dto.UserLoginResponse{User: *dto.NewUserResponse(u), Token: token}, nil
}

func (s *loginService) CurrentUser(ctx context.Context, username string) (*dto.UserResponse, error) {
	u, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrNotFound
	}
	return dto.NewUserResponse(u), nil
}
