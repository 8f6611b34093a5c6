package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is the database representation of a card transaction.
type Transaction struct {
	TransactionID      string           `db:"transaction_id"`
	UserID             string           `db:"user_id"`
	CreditCardID       string           `db:"credit_card_id"`
	CategoryID         *string          `db:"category_id"`
	Amount             decimal.Decimal  `db:"amount"`
	Currency           string           `db:"currency"`
	ReferenceID        string           `db:"reference_id"`
	MerchantName       string           `db:"merchant_name"`
	City               string           `db:"city"`
	Country            string           `db:"country"`
	TransactionDate    time.Time        `db:"transaction_date"`
	AuthorizationCode  string           `db:"authorization_code"`
	TransactionType    string           `db:"transaction_type"`
	RefundAmount       *decimal.Decimal `db:"refund_amount"`
	RefundedAt         *time.Time       `db:"refunded_at"`
	ConversionRate     *decimal.Decimal `db:"conversion_rate"`
	ConversionCurrency *string          `db:"conversion_currency"`
	ConversionAmount   *decimal.Decimal `db:"conversion_amount"`
	EmailContent       string           `db:"email_content"`
	AuditFields
	DeletedAt *time.Time `db:"deleted_at"`
}
