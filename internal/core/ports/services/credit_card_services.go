package services

import (
	"context"

	"github.com/cardwise/cardwise_backend/internal/core/domain"
	"github.com/cardwise/cardwise_backend/internal/dto"
)

// CreditCardSvcFacade exposes credit card CRUD scoped to the owning user.
type CreditCardSvcFacade interface {
	CreateCreditCard(ctx context.Context, userID string, req dto.CreateCreditCardRequest) (*domain.CreditCard, error)
	GetCreditCardByID(ctx context.Context, userID, cardID string) (*domain.CreditCard, error)
	ListCreditCards(ctx context.Context, userID string) ([]domain.CreditCard, error)
	UpdateCreditCard(ctx context.Context, userID, cardID string, req dto.UpdateCreditCardRequest) (*domain.CreditCard, error)
	DeleteCreditCard(ctx context.Context, userID, cardID string) error
}
