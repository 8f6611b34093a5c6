package services

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/cardwise/cardwise_backend/internal/core/domain"
	portsrepo "github.com/cardwise/cardwise_backend/internal/core/ports/repositories"
	portssvc "github.com/cardwise/cardwise_backend/internal/core/ports/services"
	"github.com/cardwise/cardwise_backend/internal/utils"
	"github.com/shopspring/decimal"
)

// topVendorLimit caps the merchants returned in the stats bundle.
const topVendorLimit = 5

var hundred = decimal.NewFromInt(100)

type dashboardService struct {
	BaseService
	dashboardRepo portsrepo.DashboardRepository
}

// NewDashboardService creates the dashboard service.
func NewDashboardService(dashboardRepo portsrepo.DashboardRepository) portssvc.DashboardSvcFacade {
	return &dashboardService{dashboardRepo: dashboardRepo}
}

var _ portssvc.DashboardSvcFacade = (*dashboardService)(nil)

// GetStats aggregates expenses in [from, to], converts everything into the
// display currency, and derives the trend against the previous window of
// equal length ending the day before from.
func (s *dashboardService) GetStats(ctx context.Context, userID string, from, to time.Time, currency domain.CurrencyCode) (*domain.DashboardStats, error) {
	if !domain.IsValidCurrency(currency) {
		currency = domain.USD
	}

	curTotals, err := s.dashboardRepo.GetPeriodTotals(ctx, userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to get period totals: %w", err)
	}

	windowDays := int(to.Sub(from).Hours()/24) + 1
	prevTo := from.Add(-time.Nanosecond)
	prevFrom := from.AddDate(0, 0, -windowDays)
	prevTotals, err := s.dashboardRepo.GetPeriodTotals(ctx, userID, prevFrom, prevTo)
	if err != nil {
		return nil, fmt.Errorf("failed to get previous period totals: %w", err)
	}

	totalSpending, txnCount := normalizeTotals(curTotals, currency)
	prevSpending, prevCount := normalizeTotals(prevTotals, currency)

	average := decimal.Zero
	if txnCount > 0 {
		average = totalSpending.DivRound(decimal.NewFromInt(int64(txnCount)), 2)
	}
	prevAverage := decimal.Zero
	if prevCount > 0 {
		prevAverage = prevSpending.DivRound(decimal.NewFromInt(int64(prevCount)), 2)
	}

	daily, err := s.dailySpending(ctx, userID, from, to, currency)
	if err != nil {
		return nil, err
	}

	byCategory, err := s.spendingByCategory(ctx, userID, from, to, currency, totalSpending)
	if err != nil {
		return nil, err
	}

	vendors, err := s.topVendors(ctx, userID, from, to, currency)
	if err != nil {
		return nil, err
	}

	largest := domain.CategorySpend{Amount: decimal.Zero, Percent: decimal.Zero}
	if len(byCategory) > 0 {
		largest = byCategory[0]
	}

	return &domain.DashboardStats{
		Currency: currency,
		Summary: domain.DashboardSummary{
			TotalSpending:      totalSpending,
			LargestCategory:    largest,
			TransactionCount:   txnCount,
			AverageTransaction: average,
			Trend: domain.SpendingTrend{
				TotalSpendingPctChange:      pctChange(prevSpending, totalSpending),
				TransactionCountPctChange:   pctChange(decimal.NewFromInt(int64(prevCount)), decimal.NewFromInt(int64(txnCount))),
				AverageTransactionPctChange: pctChange(prevAverage, average),
			},
		},
		DailySpendingTrend: daily,
		SpendingByCategory: byCategory,
		TopVendors:         vendors,
	}, nil
}

func (s *dashboardService) dailySpending(ctx context.Context, userID string, from, to time.Time, currency domain.CurrencyCode) ([]domain.DailySpend, error) {
	rows, err := s.dashboardRepo.GetDailySpending(ctx, userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to get daily spending: %w", err)
	}

	byDate := map[time.Time]decimal.Decimal{}
	for _, row := range rows {
		day := row.Date.Truncate(24 * time.Hour)
		converted := utils.ConvertCurrency(row.Amount, row.Currency, currency)
		byDate[day] = byDate[day].Add(converted)
	}

	daily := make([]domain.DailySpend, 0, len(byDate))
	for day, amount := range byDate {
		daily = append(daily, domain.DailySpend{Date: day, Amount: amount.Round(2)})
	}
	sort.Slice(daily, func(i, j int) bool { return daily[i].Date.Before(daily[j].Date) })
	return daily, nil
}

func (s *dashboardService) spendingByCategory(ctx context.Context, userID string, from, to time.Time, currency domain.CurrencyCode, total decimal.Decimal) ([]domain.CategorySpend, error) {
	rows, err := s.dashboardRepo.GetSpendingByCategory(ctx, userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to get spending by category: %w", err)
	}

	byCategory := map[string]decimal.Decimal{}
	for _, row := range rows {
		converted := utils.ConvertCurrency(row.Amount, row.Currency, currency)
		byCategory[row.Category] = byCategory[row.Category].Add(converted)
	}

	result := make([]domain.CategorySpend, 0, len(byCategory))
	for name, amount := range byCategory {
		percent := decimal.Zero
		if total.IsPositive() {
			percent = amount.Mul(hundred).DivRound(total, 2)
		}
		result = append(result, domain.CategorySpend{Category: name, Amount: amount.Round(2), Percent: percent})
	}
	sort.Slice(result, func(i, j int) bool {
		if !result[i].Amount.Equal(result[j].Amount) {
			return result[i].Amount.GreaterThan(result[j].Amount)
		}
		return result[i].Category < result[j].Category
	})
	return result, nil
}

func (s *dashboardService) topVendors(ctx context.Context, userID string, from, to time.Time, currency domain.CurrencyCode) ([]domain.VendorSpend, error) {
	rows, err := s.dashboardRepo.GetTopVendors(ctx, userID, from, to, topVendorLimit*len(domain.Currencies))
	if err != nil {
		return nil, fmt.Errorf("failed to get top vendors: %w", err)
	}

	byMerchant := map[string]decimal.Decimal{}
	for _, row := range rows {
		converted := utils.ConvertCurrency(row.Amount, row.Currency, currency)
		byMerchant[row.Merchant] = byMerchant[row.Merchant].Add(converted)
	}

	vendors := make([]domain.VendorSpend, 0, len(byMerchant))
	for merchant, amount := range byMerchant {
		vendors = append(vendors, domain.VendorSpend{Merchant: merchant, Amount: amount.Round(2)})
	}
	sort.Slice(vendors, func(i, j int) bool {
		if !vendors[i].Amount.Equal(vendors[j].Amount) {
			return vendors[i].Amount.GreaterThan(vendors[j].Amount)
		}
		return vendors[i].Merchant < vendors[j].Merchant
	})
	if len(vendors) > topVendorLimit {
		vendors = vendors[:topVendorLimit]
	}
	return vendors, nil
}

// normalizeTotals converts per-currency totals into the display currency.
func normalizeTotals(totals map[domain.CurrencyCode]domain.PeriodTotals, display domain.CurrencyCode) (decimal.Decimal, int) {
	sum := decimal.Zero
	count := 0
	for code, t := range totals {
		sum = sum.Add(utils.ConvertCurrency(t.TotalSpending, code, display))
		count += t.TransactionCount
	}
	return sum.Round(2), count
}

// pctChange returns the percentage change from prev to cur, zero when the
// previous window had no activity.
func pctChange(prev, cur decimal.Decimal) decimal.Decimal {
	if prev.IsZero() {
		return decimal.Zero
	}
	return cur.Sub(prev).Mul(hundred).DivRound(prev, 2)
}
