package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/cardwise/cardwise_backend/internal/core/domain"
	portsrepo "github.com/cardwise/cardwise_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// PgxDashboardRepository serves the aggregate queries behind dashboard stats.
// Every query groups by currency and leaves normalization to the service.
type PgxDashboardRepository struct {
	db *pgxpool.Pool
}

func newPgxDashboardRepository(db *pgxpool.Pool) portsrepo.DashboardRepository {
	return &PgxDashboardRepository{db: db}
}

var _ portsrepo.DashboardRepository = (*PgxDashboardRepository)(nil)

func (r *PgxDashboardRepository) GetPeriodTotals(ctx context.Context, userID string, from, to time.Time) (map[domain.CurrencyCode]domain.PeriodTotals, error) {
	query := `
		SELECT currency,
		       COALESCE(SUM(amount - COALESCE(refund_amount, 0)), 0) AS total_spending,
		       COUNT(*) AS transaction_count
		FROM transactions
		WHERE user_id = $1
		  AND transaction_type = 'EXPENSE'
		  AND deleted_at IS NULL
		  AND transaction_date >= $2
		  AND transaction_date <= $3
		GROUP BY currency;
	`
	rows, err := r.db.Query(ctx, query, userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to query period totals: %w", err)
	}
	defer rows.Close()

	totals := map[domain.CurrencyCode]domain.PeriodTotals{}
	for rows.Next() {
		var currency string
		var spending decimal.Decimal
		var count int
		if err := rows.Scan(&currency, &spending, &count); err != nil {
			return nil, fmt.Errorf("failed to scan period total row: %w", err)
		}
		totals[domain.CurrencyCode(currency)] = domain.PeriodTotals{
			TotalSpending:    spending,
			TransactionCount: count,
		}
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating period total rows: %w", rows.Err())
	}
	return totals, nil
}

func (r *PgxDashboardRepository) GetDailySpending(ctx context.Context, userID string, from, to time.Time) ([]domain.CurrencyDailySpend, error) {
	query := `
		SELECT date_trunc('day', transaction_date) AS day, currency,
		       COALESCE(SUM(amount - COALESCE(refund_amount, 0)), 0)
		FROM transactions
		WHERE user_id = $1
		  AND transaction_type = 'EXPENSE'
		  AND deleted_at IS NULL
		  AND transaction_date >= $2
		  AND transaction_date <= $3
		GROUP BY day, currency
		ORDER BY day;
	`
	rows, err := r.db.Query(ctx, query, userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to query daily spending: %w", err)
	}
	defer rows.Close()

	daily := []domain.CurrencyDailySpend{}
	for rows.Next() {
		var row domain.CurrencyDailySpend
		var currency string
		if err := rows.Scan(&row.Date, &currency, &row.Amount); err != nil {
			return nil, fmt.Errorf("failed to scan daily spending row: %w", err)
		}
		row.Currency = domain.CurrencyCode(currency)
		daily = append(daily, row)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating daily spending rows: %w", rows.Err())
	}
	return daily, nil
}

// GetSpendingByCategory groups expenses by category name, with uncategorized
// transactions reported under "Uncategorized".
func (r *PgxDashboardRepository) GetSpendingByCategory(ctx context.Context, userID string, from, to time.Time) ([]domain.CurrencyCategorySpend, error) {
	query := `
		SELECT COALESCE(c.name, 'Uncategorized') AS category, t.currency,
		       COALESCE(SUM(t.amount - COALESCE(t.refund_amount, 0)), 0)
		FROM transactions t
		LEFT JOIN categories c ON c.category_id = t.category_id AND c.deleted_at IS NULL
		WHERE t.user_id = $1
		  AND t.transaction_type = 'EXPENSE'
		  AND t.deleted_at IS NULL
		  AND t.transaction_date >= $2
		  AND t.transaction_date <= $3
		GROUP BY category, t.currency;
	`
	rows, err := r.db.Query(ctx, query, userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to query spending by category: %w", err)
	}
	defer rows.Close()

	spending := []domain.CurrencyCategorySpend{}
	for rows.Next() {
		var row domain.CurrencyCategorySpend
		var currency string
		if err := rows.Scan(&row.Category, &currency, &row.Amount); err != nil {
			return nil, fmt.Errorf("failed to scan category spending row: %w", err)
		}
		row.Currency = domain.CurrencyCode(currency)
		spending = append(spending, row)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating category spending rows: %w", rows.Err())
	}
	return spending, nil
}

func (r *PgxDashboardRepository) GetTopVendors(ctx context.Context, userID string, from, to time.Time, limit int) ([]domain.CurrencyVendorSpend, error) {
	query := `
		SELECT merchant_name, currency,
		       COALESCE(SUM(amount - COALESCE(refund_amount, 0)), 0) AS total
		FROM transactions
		WHERE user_id = $1
		  AND transaction_type = 'EXPENSE'
		  AND deleted_at IS NULL
		  AND transaction_date >= $2
		  AND transaction_date <= $3
		GROUP BY merchant_name, currency
		ORDER BY total DESC
		LIMIT $4;
	`
	rows, err := r.db.Query(ctx, query, userID, from, to, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query top vendors: %w", err)
	}
	defer rows.Close()

	vendors := []domain.CurrencyVendorSpend{}
	for rows.Next() {
		var row domain.CurrencyVendorSpend
		var currency string
		if err := rows.Scan(&row.Merchant, &currency, &row.Amount); err != nil {
			return nil, fmt.Errorf("failed to scan vendor spending row: %w", err)
		}
		row.Currency = domain.CurrencyCode(currency)
		vendors = append(vendors, row)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating vendor spending rows: %w", rows.Err())
	}
	return vendors, nil
}
