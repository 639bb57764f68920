package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"explorewithme/internal/domain"
)

type userService struct {
	userRepo       domain.UserRepository
	contextTimeout time.Duration
}

func NewUserService(userRepo domain.UserRepository, timeout time.Duration) domain.UserService {
	return &userService{
		userRepo:       userRepo,
		contextTimeout: timeout,
	}
}

func (s *userService) Create(ctx context.Context, name, email string) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	user := &domain.User{
		Name:  strings.TrimSpace(name),
		Email: strings.ToLower(strings.TrimSpace(email)),
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}

func (s *userService) Delete(ctx context.Context, id int64) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if err := s.userRepo.Delete(ctx, id); err != nil {
		return lookupErr(err, "User", id)
	}
	return nil
}

func (s *userService) List(ctx context.Context, ids []int64, page domain.PaginationParams) ([]*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	return s.userRepo.List(ctx, ids, page)
}
