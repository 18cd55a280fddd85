package service

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"vinolog/internal/errors"
	"vinolog/internal/model"
	"vinolog/internal/repository"
)

// UserService exposes user lookups and the admin user listing.
type UserService interface {
	GetUser(ctx context.Context, id uint) (*model.User, error)
	ListUsers(ctx context.Context, callerRole string) ([]model.User, error)
}

type userService struct {
	repo repository.UserRepository
}

// NewUserService builds a UserService.
func NewUserService(repo repository.UserRepository) UserService {
	return &userService{repo: repo}
}

func (s *userService) GetUser(ctx context.Context, id uint) (*model.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return user, nil
}

// ListUsers is admin-only.
func (s *userService) ListUsers(ctx context.Context, callerRole string) ([]model.User, error) {
	if callerRole != model.RoleAdmin {
		return nil, errors.ErrForbidden
	}
	return s.repo.List(ctx)
}
