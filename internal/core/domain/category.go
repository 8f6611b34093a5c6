package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Category groups transactions for budgeting. TransactionCount and TotalSpent
// are derived from the transactions table at read time, never stored.
type Category struct {
	CategoryID       string          `json:"categoryID"`
	UserID           string          `json:"userID"`
	Name             string          `json:"name"`
	Color            string          `json:"color"` // hex, e.g. "#6366F1"
	Budget           decimal.Decimal `json:"budget"`
	TransactionCount int             `json:"transactionCount"`
	TotalSpent       decimal.Decimal `json:"totalSpent"`
	AuditFields
	DeletedAt *time.Time `json:"deletedAt,omitempty"`
}
