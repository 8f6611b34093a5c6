package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/cardwise/cardwise_backend/internal/apperrors"
	"github.com/cardwise/cardwise_backend/internal/core/domain"
	portsrepo "github.com/cardwise/cardwise_backend/internal/core/ports/repositories"
	"github.com/cardwise/cardwise_backend/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxTransactionRepository struct {
	db *pgxpool.Pool
}

func newPgxTransactionRepository(db *pgxpool.Pool) portsrepo.TransactionRepository {
	return &PgxTransactionRepository{db: db}
}

var _ portsrepo.TransactionRepository = (*PgxTransactionRepository)(nil)

func toModelTransaction(d domain.Transaction) models.Transaction {
	var convCurrency *string
	if d.ConversionCurrency != nil {
		c := string(*d.ConversionCurrency)
		convCurrency = &c
	}
	return models.Transaction{
		TransactionID:      d.TransactionID,
		UserID:             d.UserID,
		CreditCardID:       d.CreditCardID,
		CategoryID:         d.CategoryID,
		Amount:             d.Amount,
		Currency:           string(d.Currency),
		ReferenceID:        d.ReferenceID,
		MerchantName:       d.MerchantName,
		City:               d.City,
		Country:            d.Country,
		TransactionDate:    d.TransactionDate,
		AuthorizationCode:  d.AuthorizationCode,
		TransactionType:    string(d.TransactionType),
		RefundAmount:       d.RefundAmount,
		RefundedAt:         d.RefundedAt,
		ConversionRate:     d.ConversionRate,
		ConversionCurrency: convCurrency,
		ConversionAmount:   d.ConversionAmount,
		EmailContent:       d.EmailContent,
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			LastUpdatedAt: d.LastUpdatedAt,
		},
		DeletedAt: d.DeletedAt,
	}
}

func toDomainTransaction(m models.Transaction) domain.Transaction {
	var convCurrency *domain.CurrencyCode
	if m.ConversionCurrency != nil {
		c := domain.CurrencyCode(*m.ConversionCurrency)
		convCurrency = &c
	}
	return domain.Transaction{
		TransactionID:      m.TransactionID,
		UserID:             m.UserID,
		CreditCardID:       m.CreditCardID,
		CategoryID:         m.CategoryID,
		Amount:             m.Amount,
		Currency:           domain.CurrencyCode(m.Currency),
		ReferenceID:        m.ReferenceID,
		MerchantName:       m.MerchantName,
		City:               m.City,
		Country:            m.Country,
		TransactionDate:    m.TransactionDate,
		AuthorizationCode:  m.AuthorizationCode,
		TransactionType:    domain.TransactionType(m.TransactionType),
		RefundAmount:       m.RefundAmount,
		RefundedAt:         m.RefundedAt,
		ConversionRate:     m.ConversionRate,
		ConversionCurrency: convCurrency,
		ConversionAmount:   m.ConversionAmount,
		EmailContent:       m.EmailContent,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			LastUpdatedAt: m.LastUpdatedAt,
		},
		DeletedAt: m.DeletedAt,
	}
}

const transactionColumns = `transaction_id, user_id, credit_card_id, category_id, amount, currency, reference_id,
	merchant_name, city, country, transaction_date, authorization_code, transaction_type,
	refund_amount, refunded_at, conversion_rate, conversion_currency, conversion_amount,
	email_content, created_at, last_updated_at, deleted_at`

func scanTransaction(row pgx.Row) (models.Transaction, error) {
	var m models.Transaction
	err := row.Scan(
		&m.TransactionID,
		&m.UserID,
		&m.CreditCardID,
		&m.CategoryID,
		&m.Amount,
		&m.Currency,
		&m.ReferenceID,
		&m.MerchantName,
		&m.City,
		&m.Country,
		&m.TransactionDate,
		&m.AuthorizationCode,
		&m.TransactionType,
		&m.RefundAmount,
		&m.RefundedAt,
		&m.ConversionRate,
		&m.ConversionCurrency,
		&m.ConversionAmount,
		&m.EmailContent,
		&m.CreatedAt,
		&m.LastUpdatedAt,
		&m.DeletedAt,
	)
	return m, err
}

// buildListConditions translates a filter into WHERE clauses with positional
// args. The first arg is always the user id.
func buildListConditions(userID string, filter portsrepo.TransactionListFilter) ([]string, []any) {
	conditions := []string{"user_id = $1", "deleted_at IS NULL"}
	args := []any{userID}

	next := func() int { return len(args) + 1 }

	if filter.CategoryIsNull {
		conditions = append(conditions, "category_id IS NULL")
	} else if filter.CategoryID != "" {
		conditions = append(conditions, fmt.Sprintf("category_id = $%d", next()))
		args = append(args, filter.CategoryID)
	}
	if filter.CreditCardID != "" {
		conditions = append(conditions, fmt.Sprintf("credit_card_id = $%d", next()))
		args = append(args, filter.CreditCardID)
	}
	if filter.TransactionType != "" {
		conditions = append(conditions, fmt.Sprintf("transaction_type = $%d", next()))
		args = append(args, filter.TransactionType)
	}
	if filter.StartDate != nil {
		conditions = append(conditions, fmt.Sprintf("transaction_date >= $%d", next()))
		args = append(args, *filter.StartDate)
	}
	if filter.EndDate != nil {
		conditions = append(conditions, fmt.Sprintf("transaction_date <= $%d", next()))
		args = append(args, *filter.EndDate)
	}
	if filter.Search != "" {
		conditions = append(conditions, fmt.Sprintf("(merchant_name ILIKE $%d OR reference_id ILIKE $%d)", next(), next()))
		args = append(args, "%"+filter.Search+"%")
	}

	return conditions, args
}

func (r *PgxTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	m := toModelTransaction(txn)
	query := `
        INSERT INTO transactions (` + transactionColumns + `)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22);
    `
	_, err := r.db.Exec(ctx, query,
		m.TransactionID, m.UserID, m.CreditCardID, m.CategoryID, m.Amount, m.Currency, m.ReferenceID,
		m.MerchantName, m.City, m.Country, m.TransactionDate, m.AuthorizationCode, m.TransactionType,
		m.RefundAmount, m.RefundedAt, m.ConversionRate, m.ConversionCurrency, m.ConversionAmount,
		m.EmailContent, m.CreatedAt, m.LastUpdatedAt, m.DeletedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save transaction: %w", err)
	}
	return nil
}

func (r *PgxTransactionRepository) FindTransactionByID(ctx context.Context, userID, transactionID string) (*domain.Transaction, error) {
	query := `
		SELECT ` + transactionColumns + `
		FROM transactions
		WHERE transaction_id = $1 AND user_id = $2 AND deleted_at IS NULL;
	`
	m, err := scanTransaction(r.db.QueryRow(ctx, query, transactionID, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find transaction %s: %w", transactionID, err)
	}

	domainTxn := toDomainTransaction(m)
	return &domainTxn, nil
}

// FindTransactions returns one page matching the filter plus the total count
// of matching rows, newest transaction first.
func (r *PgxTransactionRepository) FindTransactions(ctx context.Context, userID string, filter portsrepo.TransactionListFilter) ([]domain.Transaction, int, error) {
	conditions, args := buildListConditions(userID, filter)
	where := strings.Join(conditions, " AND ")

	var total int
	countQuery := `SELECT COUNT(*) FROM transactions WHERE ` + where + `;`
	if err := r.db.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count transactions: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT `+transactionColumns+`
		FROM transactions
		WHERE %s
		ORDER BY transaction_date DESC, transaction_id DESC
		LIMIT $%d OFFSET $%d;
	`, where, len(args)+1, len(args)+2)
	args = append(args, filter.Limit, filter.Offset)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer rows.Close()

	transactions := []domain.Transaction{}
	for rows.Next() {
		m, err := scanTransaction(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan transaction row: %w", err)
		}
		transactions = append(transactions, toDomainTransaction(m))
	}
	if rows.Err() != nil {
		return nil, 0, fmt.Errorf("error iterating transaction rows: %w", rows.Err())
	}

	return transactions, total, nil
}

func (r *PgxTransactionRepository) UpdateTransaction(ctx context.Context, txn domain.Transaction) error {
	m := toModelTransaction(txn)
	query := `
        UPDATE transactions
        SET credit_card_id = $1, category_id = $2, amount = $3, currency = $4,
            merchant_name = $5, city = $6, country = $7, transaction_date = $8,
            transaction_type = $9, refund_amount = $10, refunded_at = $11,
            last_updated_at = $12
        WHERE transaction_id = $13 AND user_id = $14 AND deleted_at IS NULL;
    `
	cmdTag, err := r.db.Exec(ctx, query,
		m.CreditCardID, m.CategoryID, m.Amount, m.Currency,
		m.MerchantName, m.City, m.Country, m.TransactionDate,
		m.TransactionType, m.RefundAmount, m.RefundedAt,
		m.LastUpdatedAt,
		m.TransactionID, m.UserID,
	)
	if err != nil {
		return fmt.Errorf("failed to execute update transaction query: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("transaction not found or already deleted: %w", apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxTransactionRepository) MarkTransactionDeleted(ctx context.Context, userID, transactionID string, deletedAt time.Time) error {
	query := `
        UPDATE transactions
        SET deleted_at = $1, last_updated_at = $1
        WHERE transaction_id = $2 AND user_id = $3 AND deleted_at IS NULL;
    `
	cmdTag, err := r.db.Exec(ctx, query, deletedAt, transactionID, userID)
	if err != nil {
		return fmt.Errorf("failed to mark transaction as deleted: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("transaction not found or already deleted: %w", apperrors.ErrNotFound)
	}
	return nil
}
