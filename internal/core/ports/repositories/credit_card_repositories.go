package repositories

import (
	"context"
	"time"

	"github.com/cardwise/cardwise_backend/internal/core/domain"
)

// CreditCardRepository defines persistence operations for credit cards.
// Find operations populate the derived ExpensesByCurrency map.
type CreditCardRepository interface {
	SaveCreditCard(ctx context.Context, card domain.CreditCard) error
	FindCreditCardByID(ctx context.Context, userID, cardID string) (*domain.CreditCard, error)
	FindCreditCards(ctx context.Context, userID string) ([]domain.CreditCard, error)
	UpdateCreditCard(ctx context.Context, card domain.CreditCard) error
	MarkCreditCardDeleted(ctx context.Context, userID, cardID string, deletedAt time.Time) error
}
