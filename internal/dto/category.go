package dto

import (
	"github.com/cardwise/cardwise_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateCategoryRequest is the payload for POST /api/categories.
type CreateCategoryRequest struct {
	Name   string          `json:"name" binding:"required"`
	Color  string          `json:"color" binding:"required,hexcolor"`
	Budget decimal.Decimal `json:"budget"`
}

// UpdateCategoryRequest is the payload for PUT /api/categories/:id.
// Pointers distinguish omitted fields from zero values.
type UpdateCategoryRequest struct {
	Name   *string          `json:"name"`
	Color  *string          `json:"color" binding:"omitempty,hexcolor"`
	Budget *decimal.Decimal `json:"budget"`
}

// CategoryResponse is the wire shape of a category, including the derived
// per-category transaction count and total spent.
type CategoryResponse struct {
	ID               string          `json:"id"`
	Name             string          `json:"name"`
	Color            string          `json:"color"`
	Budget           decimal.Decimal `json:"budget"`
	TransactionCount int             `json:"transaction_count"`
	TotalSpent       decimal.Decimal `json:"total_spent"`
}

// ToCategoryResponse converts a domain.Category to its response DTO.
func ToCategoryResponse(c *domain.Category) CategoryResponse {
	return CategoryResponse{
		ID:               c.CategoryID,
		Name:             c.Name,
		Color:            c.Color,
		Budget:           c.Budget,
		TransactionCount: c.TransactionCount,
		TotalSpent:       c.TotalSpent,
	}
}

// ToListCategoryResponse converts a slice of categories to response DTOs.
func ToListCategoryResponse(categories []domain.Category) []CategoryResponse {
	res := make([]CategoryResponse, len(categories))
	for i := range categories {
		res[i] = ToCategoryResponse(&categories[i])
	}
	return res
}
