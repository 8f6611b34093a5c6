package repositories

import (
	"context"
	"time"

	"github.com/cardwise/cardwise_backend/internal/core/domain"
)

// CategoryRepository defines persistence operations for categories.
// Find operations populate the derived TransactionCount and TotalSpent.
type CategoryRepository interface {
	SaveCategory(ctx context.Context, category domain.Category) error
	FindCategoryByID(ctx context.Context, userID, categoryID string) (*domain.Category, error)
	FindCategories(ctx context.Context, userID string) ([]domain.Category, error)
	UpdateCategory(ctx context.Context, category domain.Category) error
	MarkCategoryDeleted(ctx context.Context, userID, categoryID string, deletedAt time.Time) error
}
