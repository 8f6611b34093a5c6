package services

import (
	"context"

	"github.com/cardwise/cardwise_backend/internal/core/domain"
	"github.com/cardwise/cardwise_backend/internal/dto"
)

// CategorySvcFacade exposes category CRUD scoped to the owning user.
type CategorySvcFacade interface {
	CreateCategory(ctx context.Context, userID string, req dto.CreateCategoryRequest) (*domain.Category, error)
	GetCategoryByID(ctx context.Context, userID, categoryID string) (*domain.Category, error)
	ListCategories(ctx context.Context, userID string) ([]domain.Category, error)
	UpdateCategory(ctx context.Context, userID, categoryID string, req dto.UpdateCategoryRequest) (*domain.Category, error)
	DeleteCategory(ctx context.Context, userID, categoryID string) error
}
