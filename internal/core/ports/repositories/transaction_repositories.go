package repositories

import (
	"context"
	"time"

	"github.com/cardwise/cardwise_backend/internal/core/domain"
)

// TransactionListFilter narrows a transaction listing. Zero values mean "no
// constraint". CategoryIsNull requests transactions without a category and is
// mutually exclusive with CategoryID.
type TransactionListFilter struct {
	CategoryID      string
	CategoryIsNull  bool
	CreditCardID    string
	TransactionType string
	StartDate       *time.Time
	EndDate         *time.Time
	Search          string
	Limit           int
	Offset          int
}

// TransactionRepository defines persistence operations for transactions.
type TransactionRepository interface {
	SaveTransaction(ctx context.Context, txn domain.Transaction) error
	FindTransactionByID(ctx context.Context, userID, transactionID string) (*domain.Transaction, error)
	FindTransactions(ctx context.Context, userID string, filter TransactionListFilter) ([]domain.Transaction, int, error)
	UpdateTransaction(ctx context.Context, txn domain.Transaction) error
	MarkTransactionDeleted(ctx context.Context, userID, transactionID string, deletedAt time.Time) error
}
