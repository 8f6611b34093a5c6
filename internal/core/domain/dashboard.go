package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// CategorySpend is one category's share of spending over a period.
type CategorySpend struct {
	Category string          `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
	Percent  decimal.Decimal `json:"percent"`
}

// DailySpend is the spending total for a single day.
type DailySpend struct {
	Date   time.Time       `json:"date"`
	Amount decimal.Decimal `json:"amount"`
}

// VendorSpend is spending aggregated per merchant.
type VendorSpend struct {
	Merchant string          `json:"merchant"`
	Amount   decimal.Decimal `json:"amount"`
}

// SpendingTrend compares a window against the previous window of equal length.
type SpendingTrend struct {
	TotalSpendingPctChange      decimal.Decimal `json:"totalSpendingPctChange"`
	TransactionCountPctChange   decimal.Decimal `json:"transactionCountPctChange"`
	AverageTransactionPctChange decimal.Decimal `json:"averageTransactionPctChange"`
}

// DashboardSummary is the headline numbers for a period.
type DashboardSummary struct {
	TotalSpending      decimal.Decimal `json:"totalSpending"`
	LargestCategory    CategorySpend   `json:"largestCategory"`
	TransactionCount   int             `json:"transactionCount"`
	AverageTransaction decimal.Decimal `json:"averageTransaction"`
	Trend              SpendingTrend   `json:"trend"`
}

// DashboardStats bundles everything the dashboard shows for one period,
// with all amounts normalized to a single display currency.
type DashboardStats struct {
	Currency           CurrencyCode     `json:"currency"`
	Summary            DashboardSummary `json:"summary"`
	DailySpendingTrend []DailySpend     `json:"dailySpendingTrend"`
	SpendingByCategory []CategorySpend  `json:"spendingByCategory"`
	TopVendors         []VendorSpend    `json:"topVendors"`
}

// PeriodTotals are the raw aggregates for a window, before trend math.
type PeriodTotals struct {
	TotalSpending    decimal.Decimal
	TransactionCount int
}

// CurrencyDailySpend is a daily total in a single transaction currency, the
// raw row shape the aggregate queries return before currency normalization.
type CurrencyDailySpend struct {
	Date     time.Time
	Currency CurrencyCode
	Amount   decimal.Decimal
}

// CurrencyCategorySpend is a per-category total in one transaction currency.
type CurrencyCategorySpend struct {
	Category string
	Currency CurrencyCode
	Amount   decimal.Decimal
}

// CurrencyVendorSpend is a per-merchant total in one transaction currency.
type CurrencyVendorSpend struct {
	Merchant string
	Currency CurrencyCode
	Amount   decimal.Decimal
}
