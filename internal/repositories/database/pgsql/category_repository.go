package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/cardwise/cardwise_backend/internal/apperrors"
	"github.com/cardwise/cardwise_backend/internal/core/domain"
	portsrepo "github.com/cardwise/cardwise_backend/internal/core/ports/repositories"
	"github.com/cardwise/cardwise_backend/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxCategoryRepository embeds BaseRepository for its transaction helpers;
// deleting a category touches both the categories and transactions tables.
type PgxCategoryRepository struct {
	BaseRepository
}

func newPgxCategoryRepository(db *pgxpool.Pool) portsrepo.CategoryRepository {
	return &PgxCategoryRepository{BaseRepository{Pool: db}}
}

var _ portsrepo.CategoryRepository = (*PgxCategoryRepository)(nil)

func toModelCategory(d domain.Category) models.Category {
	return models.Category{
		CategoryID: d.CategoryID,
		UserID:     d.UserID,
		Name:       d.Name,
		Color:      d.Color,
		Budget:     d.Budget,
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			LastUpdatedAt: d.LastUpdatedAt,
		},
		DeletedAt: d.DeletedAt,
	}
}

func toDomainCategory(m models.Category) domain.Category {
	return domain.Category{
		CategoryID:       m.CategoryID,
		UserID:           m.UserID,
		Name:             m.Name,
		Color:            m.Color,
		Budget:           m.Budget,
		TransactionCount: m.TransactionCount,
		TotalSpent:       m.TotalSpent,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			LastUpdatedAt: m.LastUpdatedAt,
		},
		DeletedAt: m.DeletedAt,
	}
}

// categorySelect joins the transactions table to derive per-category usage.
// Refunds reduce the spent total; only non-deleted expenses count.
const categorySelect = `
	SELECT c.category_id, c.user_id, c.name, c.color, c.budget, c.created_at, c.last_updated_at, c.deleted_at,
	       COUNT(t.transaction_id) AS transaction_count,
	       COALESCE(SUM(t.amount - COALESCE(t.refund_amount, 0)), 0) AS total_spent
	FROM categories c
	LEFT JOIN transactions t
	       ON t.category_id = c.category_id
	      AND t.transaction_type = 'EXPENSE'
	      AND t.deleted_at IS NULL
`

func scanCategoryRows(rows pgx.Rows) ([]models.Category, error) {
	modelCategories := []models.Category{}
	for rows.Next() {
		var m models.Category
		err := rows.Scan(
			&m.CategoryID,
			&m.UserID,
			&m.Name,
			&m.Color,
			&m.Budget,
			&m.CreatedAt,
			&m.LastUpdatedAt,
			&m.DeletedAt,
			&m.TransactionCount,
			&m.TotalSpent,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan category row: %w", err)
		}
		modelCategories = append(modelCategories, m)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating category rows: %w", rows.Err())
	}
	return modelCategories, nil
}

func (r *PgxCategoryRepository) SaveCategory(ctx context.Context, category domain.Category) error {
	modelCategory := toModelCategory(category)
	query := `
        INSERT INTO categories (category_id, user_id, name, color, budget, created_at, last_updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7);
    `
	_, err := r.Pool.Exec(ctx, query,
		modelCategory.CategoryID,
		modelCategory.UserID,
		modelCategory.Name,
		modelCategory.Color,
		modelCategory.Budget,
		modelCategory.CreatedAt,
		modelCategory.LastUpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save category: %w", err)
	}
	return nil
}

func (r *PgxCategoryRepository) FindCategoryByID(ctx context.Context, userID, categoryID string) (*domain.Category, error) {
	query := categorySelect + `
	WHERE c.category_id = $1 AND c.user_id = $2 AND c.deleted_at IS NULL
	GROUP BY c.category_id;
	`
	rows, err := r.Pool.Query(ctx, query, categoryID, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query category %s: %w", categoryID, err)
	}
	defer rows.Close()

	modelCategories, err := scanCategoryRows(rows)
	if err != nil {
		return nil, err
	}
	if len(modelCategories) == 0 {
		return nil, apperrors.ErrNotFound
	}

	domainCategory := toDomainCategory(modelCategories[0])
	return &domainCategory, nil
}

func (r *PgxCategoryRepository) FindCategories(ctx context.Context, userID string) ([]domain.Category, error) {
	query := categorySelect + `
	WHERE c.user_id = $1 AND c.deleted_at IS NULL
	GROUP BY c.category_id
	ORDER BY c.name;
	`
	rows, err := r.Pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}
	defer rows.Close()

	modelCategories, err := scanCategoryRows(rows)
	if err != nil {
		return nil, err
	}

	domainCategories := make([]domain.Category, len(modelCategories))
	for i, m := range modelCategories {
		domainCategories[i] = toDomainCategory(m)
	}
	return domainCategories, nil
}

func (r *PgxCategoryRepository) UpdateCategory(ctx context.Context, category domain.Category) error {
	modelCategory := toModelCategory(category)
	query := `
        UPDATE categories
        SET name = $1, color = $2, budget = $3, last_updated_at = $4
        WHERE category_id = $5 AND user_id = $6 AND deleted_at IS NULL;
    `
	cmdTag, err := r.Pool.Exec(ctx, query,
		modelCategory.Name,
		modelCategory.Color,
		modelCategory.Budget,
		modelCategory.LastUpdatedAt,
		modelCategory.CategoryID,
		modelCategory.UserID,
	)
	if err != nil {
		return fmt.Errorf("failed to execute update category query: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("category not found or already deleted: %w", apperrors.ErrNotFound)
	}
	return nil
}

// MarkCategoryDeleted soft deletes the category and detaches its transactions
// so they show up as uncategorized afterwards.
func (r *PgxCategoryRepository) MarkCategoryDeleted(ctx context.Context, userID, categoryID string, deletedAt time.Time) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	cmdTag, err := tx.Exec(ctx, `
        UPDATE categories
        SET deleted_at = $1, last_updated_at = $1
        WHERE category_id = $2 AND user_id = $3 AND deleted_at IS NULL;
    `, deletedAt, categoryID, userID)
	if err != nil {
		return fmt.Errorf("failed to mark category as deleted: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("category not found or already deleted: %w", apperrors.ErrNotFound)
	}

	_, err = tx.Exec(ctx, `
        UPDATE transactions
        SET category_id = NULL, last_updated_at = $1
        WHERE category_id = $2 AND user_id = $3;
    `, deletedAt, categoryID, userID)
	if err != nil {
		return fmt.Errorf("failed to detach transactions from category: %w", err)
	}

	return r.Commit(ctx, tx)
}
