package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Category is the database representation of a spending category.
// TransactionCount and TotalSpent come from an aggregate join, not columns.
type Category struct {
	CategoryID       string          `db:"category_id"`
	UserID           string          `db:"user_id"`
	Name             string          `db:"name"`
	Color            string          `db:"color"`
	Budget           decimal.Decimal `db:"budget"`
	TransactionCount int             `db:"-"`
	TotalSpent       decimal.Decimal `db:"-"`
	AuditFields
	DeletedAt *time.Time `db:"deleted_at"`
}
