package services

import (
	"context"
	"fmt"
	"time"

	"github.com/cardwise/cardwise_backend/internal/core/domain"
	portsrepo "github.com/cardwise/cardwise_backend/internal/core/ports/repositories"
	portssvc "github.com/cardwise/cardwise_backend/internal/core/ports/services"
	"github.com/cardwise/cardwise_backend/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type creditCardService struct {
	BaseService
	cardRepo portsrepo.CreditCardRepository
}

// NewCreditCardService creates the credit card service.
func NewCreditCardService(cardRepo portsrepo.CreditCardRepository) portssvc.CreditCardSvcFacade {
	return &creditCardService{cardRepo: cardRepo}
}

var _ portssvc.CreditCardSvcFacade = (*creditCardService)(nil)

func (s *creditCardService) CreateCreditCard(ctx context.Context, userID string, req dto.CreateCreditCardRequest) (*domain.CreditCard, error) {
	now := time.Now()
	var secondary *domain.CurrencyCode
	if req.SecondaryCurrency != nil {
		c := domain.CurrencyCode(*req.SecondaryCurrency)
		secondary = &c
	}

	card := domain.CreditCard{
		CardID:             uuid.NewString(),
		UserID:             userID,
		Name:               req.Name,
		LastFourDigits:     req.LastFourDigits,
		Brand:              req.Brand,
		PrimaryCurrency:    domain.CurrencyCode(req.PrimaryCurrency),
		SecondaryCurrency:  secondary,
		ExpensesByCurrency: map[domain.CurrencyCode]decimal.Decimal{},
		AuditFields:        domain.AuditFields{CreatedAt: now, LastUpdatedAt: now},
	}

	if err := s.cardRepo.SaveCreditCard(ctx, card); err != nil {
		return nil, fmt.Errorf("failed to create credit card: %w", err)
	}
	return &card, nil
}

func (s *creditCardService) GetCreditCardByID(ctx context.Context, userID, cardID string) (*domain.CreditCard, error) {
	card, err := s.cardRepo.FindCreditCardByID(ctx, userID, cardID)
	if err != nil {
		return nil, fmt.Errorf("failed to get credit card: %w", err)
	}
	return card, nil
}

func (s *creditCardService) ListCreditCards(ctx context.Context, userID string) ([]domain.CreditCard, error) {
	cards, err := s.cardRepo.FindCreditCards(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list credit cards: %w", err)
	}
	return cards, nil
}

func (s *creditCardService) UpdateCreditCard(ctx context.Context, userID, cardID string, req dto.UpdateCreditCardRequest) (*domain.CreditCard, error) {
	card, err := s.cardRepo.FindCreditCardByID(ctx, userID, cardID)
	if err != nil {
		return nil, fmt.Errorf("failed to find credit card for update: %w", err)
	}

	if req.Name != nil {
		card.Name = *req.Name
	}
	if req.LastFourDigits != nil {
		card.LastFourDigits = *req.LastFourDigits
	}
	if req.Brand != nil {
		card.Brand = *req.Brand
	}
	if req.PrimaryCurrency != nil {
		card.PrimaryCurrency = domain.CurrencyCode(*req.PrimaryCurrency)
	}
	if req.SecondaryCurrency != nil {
		c := domain.CurrencyCode(*req.SecondaryCurrency)
		card.SecondaryCurrency = &c
	}
	card.LastUpdatedAt = time.Now()

	if err := s.cardRepo.UpdateCreditCard(ctx, *card); err != nil {
		return nil, fmt.Errorf("failed to update credit card: %w", err)
	}
	return card, nil
}

func (s *creditCardService) DeleteCreditCard(ctx context.Context, userID, cardID string) error {
	if err := s.cardRepo.MarkCreditCardDeleted(ctx, userID, cardID, time.Now()); err != nil {
		return fmt.Errorf("failed to delete credit card: %w", err)
	}
	return nil
}
