package services

import (
	"context"
	"fmt"
	"time"

	"github.com/cardwise/cardwise_backend/internal/core/domain"
	portsrepo "github.com/cardwise/cardwise_backend/internal/core/ports/repositories"
	portssvc "github.com/cardwise/cardwise_backend/internal/core/ports/services"
	"github.com/cardwise/cardwise_backend/internal/dto"
	"github.com/cardwise/cardwise_backend/internal/utils"
	"github.com/google/uuid"
)

const dateLayout = "2006-01-02"

type transactionService struct {
	BaseService
	txnRepo portsrepo.TransactionRepository
}

// NewTransactionService creates the transaction service.
func NewTransactionService(txnRepo portsrepo.TransactionRepository) portssvc.TransactionSvcFacade {
	return &transactionService{txnRepo: txnRepo}
}

var _ portssvc.TransactionSvcFacade = (*transactionService)(nil)

func (s *transactionService) CreateTransaction(ctx context.Context, userID string, req dto.CreateTransactionRequest) (*domain.Transaction, error) {
	now := time.Now()

	referenceID := req.ReferenceID
	if referenceID == "" {
		generated, err := utils.GenerateSecureRandomString(8)
		if err != nil {
			return nil, fmt.Errorf("failed to generate reference id: %w", err)
		}
		referenceID = generated
	}

	var convCurrency *domain.CurrencyCode
	if req.ConversionCurrency != nil {
		c := domain.CurrencyCode(*req.ConversionCurrency)
		convCurrency = &c
	}

	txn := domain.Transaction{
		TransactionID:      uuid.NewString(),
		UserID:             userID,
		CreditCardID:       req.CreditCardID,
		CategoryID:         req.CategoryID,
		Amount:             req.Amount,
		Currency:           domain.CurrencyCode(req.Currency),
		ReferenceID:        referenceID,
		MerchantName:       req.MerchantName,
		City:               req.City,
		Country:            req.Country,
		TransactionDate:    req.TransactionDate,
		AuthorizationCode:  req.AuthorizationCode,
		TransactionType:    domain.TransactionType(req.TransactionType),
		ConversionRate:     req.ConversionRate,
		ConversionCurrency: convCurrency,
		ConversionAmount:   req.ConversionAmount,
		EmailContent:       req.EmailContent,
		AuditFields:        domain.AuditFields{CreatedAt: now, LastUpdatedAt: now},
	}

	if err := s.txnRepo.SaveTransaction(ctx, txn); err != nil {
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}
	return &txn, nil
}

func (s *transactionService) GetTransactionByID(ctx context.Context, userID, transactionID string) (*domain.Transaction, error) {
	txn, err := s.txnRepo.FindTransactionByID(ctx, userID, transactionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}
	return txn, nil
}

// ListTransactions translates the wire query parameters into a repository
// filter and returns one page with its pagination metadata.
func (s *transactionService) ListTransactions(ctx context.Context, userID string, params dto.ListTransactionsParams) ([]domain.Transaction, dto.Pagination, error) {
	page := params.Page
	if page < 1 {
		page = 1
	}
	perPage := params.PerPage
	if perPage < 1 {
		perPage = 20
	}

	filter := portsrepo.TransactionListFilter{
		CreditCardID:    params.CreditCardID,
		TransactionType: params.TransactionType,
		Search:          params.Search,
		Limit:           perPage,
		Offset:          (page - 1) * perPage,
	}

	// "null" requests uncategorized transactions; anything else is an id.
	if params.CategoryID == dto.NullCategorySentinel {
		filter.CategoryIsNull = true
	} else {
		filter.CategoryID = params.CategoryID
	}

	if params.StartDate != "" {
		start, err := time.ParseInLocation(dateLayout, params.StartDate, time.Local)
		if err != nil {
			return nil, dto.Pagination{}, fmt.Errorf("invalid start_date: %w", err)
		}
		filter.StartDate = &start
	}
	if params.EndDate != "" {
		end, err := time.ParseInLocation(dateLayout, params.EndDate, time.Local)
		if err != nil {
			return nil, dto.Pagination{}, fmt.Errorf("invalid end_date: %w", err)
		}
		// end_date is inclusive; extend to the end of that day.
		end = end.Add(24*time.Hour - time.Nanosecond)
		filter.EndDate = &end
	}

	transactions, total, err := s.txnRepo.FindTransactions(ctx, userID, filter)
	if err != nil {
		return nil, dto.Pagination{}, fmt.Errorf("failed to list transactions: %w", err)
	}

	totalPages := total / perPage
	if total%perPage != 0 {
		totalPages++
	}

	pagination := dto.Pagination{
		TotalCount:  total,
		TotalPages:  totalPages,
		CurrentPage: page,
		PerPage:     perPage,
	}
	return transactions, pagination, nil
}

func (s *transactionService) UpdateTransaction(ctx context.Context, userID, transactionID string, req dto.UpdateTransactionRequest) (*domain.Transaction, error) {
	txn, err := s.txnRepo.FindTransactionByID(ctx, userID, transactionID)
	if err != nil {
		return nil, fmt.Errorf("failed to find transaction for update: %w", err)
	}

	if req.CreditCardID != nil {
		txn.CreditCardID = *req.CreditCardID
	}
	if req.CategoryID != nil {
		// An empty string clears the category reference.
		if *req.CategoryID == "" {
			txn.CategoryID = nil
		} else {
			txn.CategoryID = req.CategoryID
		}
	}
	if req.Amount != nil {
		txn.Amount = *req.Amount
	}
	if req.Currency != nil {
		txn.Currency = domain.CurrencyCode(*req.Currency)
	}
	if req.MerchantName != nil {
		txn.MerchantName = *req.MerchantName
	}
	if req.City != nil {
		txn.City = *req.City
	}
	if req.Country != nil {
		txn.Country = *req.Country
	}
	if req.TransactionDate != nil {
		txn.TransactionDate = *req.TransactionDate
	}
	if req.TransactionType != nil {
		txn.TransactionType = domain.TransactionType(*req.TransactionType)
	}
	if req.RefundAmount != nil {
		txn.RefundAmount = req.RefundAmount
	}
	if req.RefundedAt != nil {
		txn.RefundedAt = req.RefundedAt
	}
	txn.LastUpdatedAt = time.Now()

	if err := s.txnRepo.UpdateTransaction(ctx, *txn); err != nil {
		return nil, fmt.Errorf("failed to update transaction: %w", err)
	}
	return txn, nil
}

func (s *transactionService) DeleteTransaction(ctx context.Context, userID, transactionID string) error {
	if err := s.txnRepo.MarkTransactionDeleted(ctx, userID, transactionID, time.Now()); err != nil {
		return fmt.Errorf("failed to delete transaction: %w", err)
	}
	return nil
}
