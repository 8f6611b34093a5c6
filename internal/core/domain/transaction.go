package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType indicates whether a transaction is an expense or income.
type TransactionType string

const (
	Expense TransactionType = "EXPENSE"
	Income  TransactionType = "INCOME"
)

// Transaction is a single card transaction. Category and CreditCard are weak
// references resolved by id; a nil CategoryID means uncategorized.
type Transaction struct {
	TransactionID      string           `json:"transactionID"`
	UserID             string           `json:"userID"`
	CreditCardID       string           `json:"creditCardID"`
	CategoryID         *string          `json:"categoryID,omitempty"`
	Amount             decimal.Decimal  `json:"amount"`
	Currency           CurrencyCode     `json:"currency"`
	ReferenceID        string           `json:"referenceID"`
	MerchantName       string           `json:"merchantName"`
	City               string           `json:"city,omitempty"`
	Country            string           `json:"country,omitempty"`
	TransactionDate    time.Time        `json:"transactionDate"`
	AuthorizationCode  string           `json:"authorizationCode,omitempty"`
	TransactionType    TransactionType  `json:"transactionType"`
	RefundAmount       *decimal.Decimal `json:"refundAmount,omitempty"`
	RefundedAt         *time.Time       `json:"refundedAt,omitempty"`
	ConversionRate     *decimal.Decimal `json:"conversionRate,omitempty"`
	ConversionCurrency *CurrencyCode    `json:"conversionCurrency,omitempty"`
	ConversionAmount   *decimal.Decimal `json:"conversionAmount,omitempty"`
	EmailContent       string           `json:"emailContent,omitempty"`
	AuditFields
	DeletedAt *time.Time `json:"deletedAt,omitempty"`
}
