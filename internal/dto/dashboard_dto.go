package dto

import (
	"github.com/cardwise/cardwise_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// DashboardStatsParams binds the GET /api/dashboard/stats query string.
type DashboardStatsParams struct {
	From     string `form:"from" binding:"required,datetime=2006-01-02"`
	To       string `form:"to" binding:"required,datetime=2006-01-02"`
	Currency string `form:"currency" binding:"omitempty,currencycode"`
}

// CategorySpendResponse is one category's share of spending.
type CategorySpendResponse struct {
	Category string          `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
	Percent  decimal.Decimal `json:"percent"`
}

// DailySpendResponse is the spending total for one day.
type DailySpendResponse struct {
	Date   string          `json:"date"`
	Amount decimal.Decimal `json:"amount"`
}

// VendorSpendResponse is spending aggregated per merchant.
type VendorSpendResponse struct {
	Merchant string          `json:"merchant"`
	Amount   decimal.Decimal `json:"amount"`
}

// TrendResponse compares the requested window with the previous one.
type TrendResponse struct {
	TotalSpendingPctChange      decimal.Decimal `json:"total_spending_pct_change"`
	TransactionCountPctChange   decimal.Decimal `json:"transaction_count_pct_change"`
	AverageTransactionPctChange decimal.Decimal `json:"average_transaction_pct_change"`
}

// DashboardSummaryResponse is the headline block of the stats payload.
type DashboardSummaryResponse struct {
	TotalSpending      decimal.Decimal       `json:"total_spending"`
	LargestCategory    CategorySpendResponse `json:"largest_category"`
	TransactionCount   int                   `json:"transaction_count"`
	AverageTransaction decimal.Decimal       `json:"average_transaction"`
	Trend              TrendResponse         `json:"trend"`
}

// DashboardStatsResponse is the full GET /api/dashboard/stats payload.
// Currency is the display currency actually used, which may differ from the
// requested one when the server fell back to USD.
type DashboardStatsResponse struct {
	Currency           string                   `json:"currency"`
	Summary            DashboardSummaryResponse `json:"summary"`
	DailySpendingTrend []DailySpendResponse     `json:"daily_spending_trend"`
	SpendingByCategory []CategorySpendResponse  `json:"spending_by_category"`
	TopVendors         []VendorSpendResponse    `json:"top_vendors"`
}

// ToDashboardStatsResponse converts domain stats to the wire shape.
func ToDashboardStatsResponse(stats *domain.DashboardStats) DashboardStatsResponse {
	daily := make([]DailySpendResponse, len(stats.DailySpendingTrend))
	for i, d := range stats.DailySpendingTrend {
		daily[i] = DailySpendResponse{Date: d.Date.Format("2006-01-02"), Amount: d.Amount}
	}
	byCategory := make([]CategorySpendResponse, len(stats.SpendingByCategory))
	for i, c := range stats.SpendingByCategory {
		byCategory[i] = CategorySpendResponse{Category: c.Category, Amount: c.Amount, Percent: c.Percent}
	}
	vendors := make([]VendorSpendResponse, len(stats.TopVendors))
	for i, v := range stats.TopVendors {
		vendors[i] = VendorSpendResponse{Merchant: v.Merchant, Amount: v.Amount}
	}
	return DashboardStatsResponse{
		Currency: string(stats.Currency),
		Summary: DashboardSummaryResponse{
			TotalSpending: stats.Summary.TotalSpending,
			LargestCategory: CategorySpendResponse{
				Category: stats.Summary.LargestCategory.Category,
				Amount:   stats.Summary.LargestCategory.Amount,
				Percent:  stats.Summary.LargestCategory.Percent,
			},
			TransactionCount:   stats.Summary.TransactionCount,
			AverageTransaction: stats.Summary.AverageTransaction,
			Trend: TrendResponse{
				TotalSpendingPctChange:      stats.Summary.Trend.TotalSpendingPctChange,
				TransactionCountPctChange:   stats.Summary.Trend.TransactionCountPctChange,
				AverageTransactionPctChange: stats.Summary.Trend.AverageTransactionPctChange,
			},
		},
		DailySpendingTrend: daily,
		SpendingByCategory: byCategory,
		TopVendors:         vendors,
	}
}
