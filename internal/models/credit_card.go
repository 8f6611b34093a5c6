package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreditCard is the database representation of a payment card.
// ExpensesByCurrency comes from an aggregate join, not a column.
type CreditCard struct {
	CardID             string                     `db:"card_id"`
	UserID             string                     `db:"user_id"`
	Name               string                     `db:"name"`
	LastFourDigits     string                     `db:"last_four_digits"`
	Brand              string                     `db:"brand"`
	PrimaryCurrency    string                     `db:"primary_currency"`
	SecondaryCurrency  *string                    `db:"secondary_currency"`
	ExpensesByCurrency map[string]decimal.Decimal `db:"-"`
	AuditFields
	DeletedAt *time.Time `db:"deleted_at"`
}
