package category

import (
	"context"
	"fmt"
	"strings"
	"time"

	categoryRepo "maidly/database/repository/category"
	"maidly/models"
	"maidly/services/scheduling"

	"github.com/google/uuid"
)

// CategoryService manages the bookable service catalog.
type CategoryService interface {
	Create(ctx context.Context, input models.CategoryInput) (*models.ServiceCategory, error)
	Get(ctx context.Context, categoryID string) (*models.ServiceCategory, error)
	List(ctx context.Context, activeOnly bool) ([]models.ServiceCategory, error)
	Update(ctx context.Context, categoryID string, input models.CategoryInput) (*models.ServiceCategory, error)
	Delete(ctx context.Context, categoryID string) error
}

// DefaultCategoryService is the production implementation.
type DefaultCategoryService struct {
	Repo categoryRepo.CategoryRepository
}

func (s *DefaultCategoryService) Create(ctx context.Context, input models.CategoryInput) (*models.ServiceCategory, error) {
	code := strings.ToLower(strings.TrimSpace(input.Code))
	if code == "" {
		return nil, scheduling.NewValidationError("category code is required")
	}
	existing, err := s.Repo.GetByCode(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to check category code: %w", err)
	}
	if existing != nil {
		return nil, scheduling.NewConflictError("category code %q already exists", code)
	}

	active := true
	if input.Active != nil {
		active = *input.Active
	}
	now := time.Now()
	cat := &models.ServiceCategory{
		ID:          uuid.New().String(),
		Name:        input.Name,
		Code:        code,
		Description: input.Description,
		BasePrice:   input.BasePrice,
		Active:      active,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.Repo.Create(ctx, cat); err != nil {
		return nil, err
	}
	return cat, nil
}

func (s *DefaultCategoryService) Get(ctx context.Context, categoryID string) (*models.ServiceCategory, error) {
	cat, err := s.Repo.GetByID(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	if cat == nil {
		return nil, scheduling.NewNotFoundError("service category %s not found", categoryID)
	}
	return cat, nil
}

func (s *DefaultCategoryService) List(ctx context.Context, activeOnly bool) ([]models.ServiceCategory, error) {
	return s.Repo.List(ctx, activeOnly)
}

func (s *DefaultCategoryService) Update(ctx context.Context, categoryID string, input models.CategoryInput) (*models.ServiceCategory, error) {
	cat, err := s.Get(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	if input.Name != "" {
		cat.Name = input.Name
	}
	if input.Description != "" {
		cat.Description = input.Description
	}
	if input.BasePrice > 0 {
		cat.BasePrice = input.BasePrice
	}
	if input.Active != nil {
		cat.Active = *input.Active
	}
	cat.UpdatedAt = time.Now()
	if err := s.Repo.Update(ctx, cat); err != nil {
		return nil, err
	}
	return cat, nil
}

func (s *DefaultCategoryService) Delete(ctx context.Context, categoryID string) error {
	if _, err := s.Get(ctx, categoryID); err != nil {
		return err
	}
	return s.Repo.Delete(ctx, categoryID)
}
