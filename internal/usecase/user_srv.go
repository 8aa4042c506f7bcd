package usecase

import (
	"context"
	"errors"
	"fmt"

	"movie-review/internal/data/repository"
	"movie-review/internal/dto/response"

	"go.uber.org/zap"
)

var ErrUserNotFound = errors.New("user not found")

type UserService interface {
	GetByID(ctx context.Context, userID int64) (*response.UserResponse, error)
}

type userService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewUserService(repo *repository.Repository, log *zap.Logger) UserService {
	return &userService{
		repo: repo,
		log:  log.With(zap.String("service", "user")),
	}
}

func (s *userService) GetByID(ctx context.Context, userID int64) (*response.UserResponse, error) {
	user, err := s.repo.User.FindByID(ctx, userID)
	if err != nil {
		s.log.Error("Failed to get user", zap.Error(err), zap.Int64("user_id", userID))
		return nil, fmt.Errorf("get user %d: %w", userID, err)
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	resp := response.UserToResponse(user)
	return &resp, nil
}
