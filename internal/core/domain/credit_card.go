package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreditCard is a payment card transactions are recorded against.
// ExpensesByCurrency is derived from the transactions table at read time.
type CreditCard struct {
	CardID             string                           `json:"cardID"`
	UserID             string                           `json:"userID"`
	Name               string                           `json:"name"`
	LastFourDigits     string                           `json:"lastFourDigits"`
	Brand              string                           `json:"brand"`
	PrimaryCurrency    CurrencyCode                     `json:"primaryCurrency"`
	SecondaryCurrency  *CurrencyCode                    `json:"secondaryCurrency,omitempty"`
	ExpensesByCurrency map[CurrencyCode]decimal.Decimal `json:"expensesByCurrency"`
	AuditFields
	DeletedAt *time.Time `json:"deletedAt,omitempty"`
}
