package services

import (
	"context"
	"time"

	"github.com/cardwise/cardwise_backend/internal/core/domain"
)

// DashboardSvcFacade computes the stats bundle for a period, with amounts
// normalized to the requested display currency.
type DashboardSvcFacade interface {
	GetStats(ctx context.Context, userID string, from, to time.Time, currency domain.CurrencyCode) (*domain.DashboardStats, error)
}
