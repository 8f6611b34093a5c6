package services

import (
	"context"

	"github.com/cardwise/cardwise_backend/internal/core/domain"
	"github.com/cardwise/cardwise_backend/internal/dto"
)

// TransactionSvcFacade exposes transaction CRUD and the filtered, paginated
// listing that backs the transactions view.
type TransactionSvcFacade interface {
	CreateTransaction(ctx context.Context, userID string, req dto.CreateTransactionRequest) (*domain.Transaction, error)
	GetTransactionByID(ctx context.Context, userID, transactionID string) (*domain.Transaction, error)
	ListTransactions(ctx context.Context, userID string, params dto.ListTransactionsParams) ([]domain.Transaction, dto.Pagination, error)
	UpdateTransaction(ctx context.Context, userID, transactionID string, req dto.UpdateTransactionRequest) (*domain.Transaction, error)
	DeleteTransaction(ctx context.Context, userID, transactionID string) error
}
