package services

import (
	"context"
	"fmt"
	"time"

	"github.com/cardwise/cardwise_backend/internal/apperrors"
	"github.com/cardwise/cardwise_backend/internal/core/domain"
	portsrepo "github.com/cardwise/cardwise_backend/internal/core/ports/repositories"
	portssvc "github.com/cardwise/cardwise_backend/internal/core/ports/services"
	"github.com/cardwise/cardwise_backend/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type categoryService struct {
	BaseService
	categoryRepo portsrepo.CategoryRepository
}

// NewCategoryService creates the category service.
func NewCategoryService(categoryRepo portsrepo.CategoryRepository) portssvc.CategorySvcFacade {
	return &categoryService{categoryRepo: categoryRepo}
}

var _ portssvc.CategorySvcFacade = (*categoryService)(nil)

func (s *categoryService) CreateCategory(ctx context.Context, userID string, req dto.CreateCategoryRequest) (*domain.Category, error) {
	if req.Budget.IsNegative() {
		return nil, fmt.Errorf("budget must be non-negative: %w", apperrors.ErrValidation)
	}

	now := time.Now()
	category := domain.Category{
		CategoryID:  uuid.NewString(),
		UserID:      userID,
		Name:        req.Name,
		Color:       req.Color,
		Budget:      req.Budget,
		TotalSpent:  decimal.Zero,
		AuditFields: domain.AuditFields{CreatedAt: now, LastUpdatedAt: now},
	}

	if err := s.categoryRepo.SaveCategory(ctx, category); err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}
	return &category, nil
}

func (s *categoryService) GetCategoryByID(ctx context.Context, userID, categoryID string) (*domain.Category, error) {
	category, err := s.categoryRepo.FindCategoryByID(ctx, userID, categoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to get category: %w", err)
	}
	return category, nil
}

func (s *categoryService) ListCategories(ctx context.Context, userID string) ([]domain.Category, error) {
	categories, err := s.categoryRepo.FindCategories(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return categories, nil
}

func (s *categoryService) UpdateCategory(ctx context.Context, userID, categoryID string, req dto.UpdateCategoryRequest) (*domain.Category, error) {
	category, err := s.categoryRepo.FindCategoryByID(ctx, userID, categoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to find category for update: %w", err)
	}

	if req.Name != nil {
		category.Name = *req.Name
	}
	if req.Color != nil {
		category.Color = *req.Color
	}
	if req.Budget != nil {
		if req.Budget.IsNegative() {
			return nil, fmt.Errorf("budget must be non-negative: %w", apperrors.ErrValidation)
		}
		category.Budget = *req.Budget
	}
	category.LastUpdatedAt = time.Now()

	if err := s.categoryRepo.UpdateCategory(ctx, *category); err != nil {
		return nil, fmt.Errorf("failed to update category: %w", err)
	}
	return category, nil
}

func (s *categoryService) DeleteCategory(ctx context.Context, userID, categoryID string) error {
	if err := s.categoryRepo.MarkCategoryDeleted(ctx, userID, categoryID, time.Now()); err != nil {
		return fmt.Errorf("failed to delete category: %w", err)
	}
	return nil
}
