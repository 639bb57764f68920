package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"explorewithme/internal/domain"
)

type categoryService struct {
	categoryRepo   domain.CategoryRepository
	eventRepo      domain.EventRepository
	contextTimeout time.Duration
}

func NewCategoryService(categoryRepo domain.CategoryRepository, eventRepo domain.EventRepository, timeout time.Duration) domain.CategoryService {
	return &categoryService{
		categoryRepo:   categoryRepo,
		eventRepo:      eventRepo,
		contextTimeout: timeout,
	}
}

func (s *categoryService) Create(ctx context.Context, name string) (*domain.Category, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	c := &domain.Category{Name: strings.TrimSpace(name)}
	if err := s.categoryRepo.Create(ctx, c); err != nil {
		return nil, fmt.Errorf("create category: %w", err)
	}
	return c, nil
}

func (s *categoryService) Update(ctx context.Context, id int64, name string) (*domain.Category, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	c, err := s.categoryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, lookupErr(err, "Category", id)
	}
	c.Name = strings.TrimSpace(name)
	if err := s.categoryRepo.Update(ctx, c); err != nil {
		return nil, fmt.Errorf("update category: %w", err)
	}
	return c, nil
}

// Delete refuses to remove a category that events still reference.
func (s *categoryService) Delete(ctx context.Context, id int64) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if _, err := s.categoryRepo.GetByID(ctx, id); err != nil {
		return lookupErr(err, "Category", id)
	}
	used, err := s.eventRepo.ExistsByCategory(ctx, id)
	if err != nil {
		return fmt.Errorf("check category usage: %w", err)
	}
	if used {
		return domain.Conflict(domain.ReasonConflict, "The category is not empty")
	}
	if err := s.categoryRepo.Delete(ctx, id); err != nil {
		return lookupErr(err, "Category", id)
	}
	return nil
}

func (s *categoryService) GetByID(ctx context.Context, id int64) (*domain.Category, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	c, err := s.categoryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, lookupErr(err, "Category", id)
	}
	return c, nil
}

func (s *categoryService) List(ctx context.Context, page domain.PaginationParams) ([]*domain.Category, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	return s.categoryRepo.List(ctx, page)
}
