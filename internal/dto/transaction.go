package dto

import (
	"time"

	"github.com/cardwise/cardwise_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// NullCategorySentinel is the category_id query value requesting transactions
// whose category reference is null (uncategorized).
const NullCategorySentinel = "null"

// ListTransactionsParams binds the GET /api/transactions query string.
// CategoryID is a string so the "null" sentinel can travel alongside real ids.
type ListTransactionsParams struct {
	Page            int    `form:"page,default=1" binding:"omitempty,min=1"`
	PerPage         int    `form:"per_page,default=20" binding:"omitempty,min=1,max=100"`
	CategoryID      string `form:"category_id"`
	CreditCardID    string `form:"credit_card_id"`
	TransactionType string `form:"transaction_type" binding:"omitempty,oneof=EXPENSE INCOME"`
	StartDate       string `form:"start_date" binding:"omitempty,datetime=2006-01-02"`
	EndDate         string `form:"end_date" binding:"omitempty,datetime=2006-01-02"`
	Search          string `form:"search"`
}

// CreateTransactionRequest is the payload for POST /api/transactions.
// Amount travels as a decimal string to avoid floating-point loss.
type CreateTransactionRequest struct {
	CreditCardID       string           `json:"credit_card_id" binding:"required"`
	CategoryID         *string          `json:"category_id"`
	Amount             decimal.Decimal  `json:"amount" binding:"required"`
	Currency           string           `json:"currency" binding:"required,currencycode"`
	ReferenceID        string           `json:"reference_id"`
	MerchantName       string           `json:"merchant_name" binding:"required"`
	City               string           `json:"city"`
	Country            string           `json:"country"`
	TransactionDate    time.Time        `json:"transaction_date" binding:"required"`
	AuthorizationCode  string           `json:"authorization_code"`
	TransactionType    string           `json:"transaction_type" binding:"required,oneof=EXPENSE INCOME"`
	ConversionRate     *decimal.Decimal `json:"conversion_rate"`
	ConversionCurrency *string          `json:"conversion_currency" binding:"omitempty,currencycode"`
	ConversionAmount   *decimal.Decimal `json:"conversion_amount"`
	EmailContent       string           `json:"email_content"`
}

// UpdateTransactionRequest is the payload for PUT /api/transactions/:id.
type UpdateTransactionRequest struct {
	CreditCardID    *string          `json:"credit_card_id"`
	CategoryID      *string          `json:"category_id"`
	Amount          *decimal.Decimal `json:"amount"`
	Currency        *string          `json:"currency" binding:"omitempty,currencycode"`
	MerchantName    *string          `json:"merchant_name"`
	City            *string          `json:"city"`
	Country         *string          `json:"country"`
	TransactionDate *time.Time       `json:"transaction_date"`
	TransactionType *string          `json:"transaction_type" binding:"omitempty,oneof=EXPENSE INCOME"`
	RefundAmount    *decimal.Decimal `json:"refund_amount"`
	RefundedAt      *time.Time       `json:"refunded_at"`
}

// TransactionResponse is the wire shape of a transaction.
type TransactionResponse struct {
	ID                 string           `json:"id"`
	CreditCardID       string           `json:"credit_card_id"`
	CategoryID         *string          `json:"category_id,omitempty"`
	Amount             decimal.Decimal  `json:"amount"`
	Currency           string           `json:"currency"`
	ReferenceID        string           `json:"reference_id"`
	MerchantName       string           `json:"merchant_name"`
	City               string           `json:"city,omitempty"`
	Country            string           `json:"country,omitempty"`
	TransactionDate    time.Time        `json:"transaction_date"`
	AuthorizationCode  string           `json:"authorization_code,omitempty"`
	TransactionType    string           `json:"transaction_type"`
	RefundAmount       *decimal.Decimal `json:"refund_amount,omitempty"`
	RefundedAt         *time.Time       `json:"refunded_at,omitempty"`
	ConversionRate     *decimal.Decimal `json:"conversion_rate,omitempty"`
	ConversionCurrency *string          `json:"conversion_currency,omitempty"`
	ConversionAmount   *decimal.Decimal `json:"conversion_amount,omitempty"`
	EmailContent       string           `json:"email_content,omitempty"`
	CreatedAt          time.Time        `json:"created_at"`
	UpdatedAt          time.Time        `json:"updated_at"`
}

// Pagination describes the page window of a list response.
type Pagination struct {
	TotalCount  int `json:"total_count"`
	TotalPages  int `json:"total_pages"`
	CurrentPage int `json:"current_page"`
	PerPage     int `json:"per_page"`
}

// ListTransactionsResponse wraps a page of transactions.
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	Pagination   Pagination            `json:"pagination"`
}

// ToTransactionResponse converts a domain.Transaction to its response DTO.
func ToTransactionResponse(t *domain.Transaction) TransactionResponse {
	var convCurrency *string
	if t.ConversionCurrency != nil {
		s := string(*t.ConversionCurrency)
		convCurrency = &s
	}
	return TransactionResponse{
		ID:                 t.TransactionID,
		CreditCardID:       t.CreditCardID,
		CategoryID:         t.CategoryID,
		Amount:             t.Amount,
		Currency:           string(t.Currency),
		ReferenceID:        t.ReferenceID,
		MerchantName:       t.MerchantName,
		City:               t.City,
		Country:            t.Country,
		TransactionDate:    t.TransactionDate,
		AuthorizationCode:  t.AuthorizationCode,
		TransactionType:    string(t.TransactionType),
		RefundAmount:       t.RefundAmount,
		RefundedAt:         t.RefundedAt,
		ConversionRate:     t.ConversionRate,
		ConversionCurrency: convCurrency,
		ConversionAmount:   t.ConversionAmount,
		EmailContent:       t.EmailContent,
		CreatedAt:          t.CreatedAt,
		UpdatedAt:          t.LastUpdatedAt,
	}
}

// ToListTransactionsResponse builds the paged wire response.
func ToListTransactionsResponse(transactions []domain.Transaction, pagination Pagination) ListTransactionsResponse {
	res := make([]TransactionResponse, len(transactions))
	for i := range transactions {
		res[i] = ToTransactionResponse(&transactions[i])
	}
	return ListTransactionsResponse{Transactions: res, Pagination: pagination}
}
