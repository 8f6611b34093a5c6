package repositories

import (
	"context"
	"time"

	"github.com/cardwise/cardwise_backend/internal/core/domain"
)

// DashboardRepository defines the aggregate queries behind dashboard stats.
// All aggregations cover EXPENSE transactions in [from, to] for one user and
// return amounts in each transaction's own currency grouped per currency row;
// the service layer normalizes them to the display currency.
type DashboardRepository interface {
	GetPeriodTotals(ctx context.Context, userID string, from, to time.Time) (map[domain.CurrencyCode]domain.PeriodTotals, error)
	GetDailySpending(ctx context.Context, userID string, from, to time.Time) ([]domain.CurrencyDailySpend, error)
	GetSpendingByCategory(ctx context.Context, userID string, from, to time.Time) ([]domain.CurrencyCategorySpend, error)
	GetTopVendors(ctx context.Context, userID string, from, to time.Time, limit int) ([]domain.CurrencyVendorSpend, error)
}
