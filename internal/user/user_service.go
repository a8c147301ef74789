package user

import (
	"context"
	"errors"

	usererrors "github.com/Arun-hash30/Attendence-helix/internal/user/errors"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=user_service.go -destination=mock/user_service_mock.go -package=mock
type Service interface {
	GetAll(ctx context.Context, filter ListFilter) ([]UserResponse, error)
	GetByID(ctx context.Context, id uint) (UserResponse, error)
	Exists(ctx context.Context, id uint) (bool, error)
	ListActive(ctx context.Context, role string) ([]UserResponse, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("user.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("user.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) GetAll(ctx context.Context, filter ListFilter) ([]UserResponse, error) {
	if filter.Role != "" && filter.Role != RoleAdmin && filter.Role != RoleUser {
		return nil, usererrors.ErrInvalidRole
	}

	users, err := s.repo.FindAll(ctx, filter)
	if err != nil {
		s.logger.Error("list users failed", zap.Error(err))
		return nil, err
	}
	return mapToListResponse(users), nil
}

func (s *service) GetByID(ctx context.Context, id uint) (UserResponse, error) {
	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return UserResponse{}, usererrors.ErrUserNotFound
		}
		s.logger.Error("get user failed", zap.Uint("user_id", id), zap.Error(err))
		return UserResponse{}, err
	}
	return mapToResponse(*u), nil
}

func (s *service) Exists(ctx context.Context, id uint) (bool, error) {
	if id == 0 {
		return false, nil
	}
	return s.repo.Exists(ctx, id)
}

// ListActive returns active users ordered by name, optionally restricted to one role.
func (s *service) ListActive(ctx context.Context, role string) ([]UserResponse, error) {
	return s.GetAll(ctx, ListFilter{Role: role, ActiveOnly: true})
}

func mapToResponse(u User) UserResponse {
	return UserResponse{
		ID:       u.ID,
		Name:     u.Name,
		Email:    u.Email,
		Phone:    u.Phone,
		Role:     u.Role,
		IsActive: u.IsActive,
	}
}

func mapToListResponse(users []User) []UserResponse {
	resp := make([]UserResponse, len(users))
	for i, u := range users {
		resp[i] = mapToResponse(u)
	}
	return resp
}
