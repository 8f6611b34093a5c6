package dto

import (
	"github.com/cardwise/cardwise_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateCreditCardRequest is the payload for POST /api/credit_cards.
type CreateCreditCardRequest struct {
	Name              string  `json:"name" binding:"required"`
	LastFourDigits    string  `json:"last_four_digits" binding:"required,len=4,numeric"`
	Brand             string  `json:"brand" binding:"required"`
	PrimaryCurrency   string  `json:"primary_currency" binding:"required,currencycode"`
	SecondaryCurrency *string `json:"secondary_currency" binding:"omitempty,currencycode"`
}

// UpdateCreditCardRequest is the payload for PUT /api/credit_cards/:id.
type UpdateCreditCardRequest struct {
	Name              *string `json:"name"`
	LastFourDigits    *string `json:"last_four_digits" binding:"omitempty,len=4,numeric"`
	Brand             *string `json:"brand"`
	PrimaryCurrency   *string `json:"primary_currency" binding:"omitempty,currencycode"`
	SecondaryCurrency *string `json:"secondary_currency" binding:"omitempty,currencycode"`
}

// CreditCardResponse is the wire shape of a credit card, including the
// derived per-currency expense totals.
type CreditCardResponse struct {
	ID                 string                     `json:"id"`
	Name               string                     `json:"name"`
	LastFourDigits     string                     `json:"last_four_digits"`
	Brand              string                     `json:"brand"`
	PrimaryCurrency    string                     `json:"primary_currency"`
	SecondaryCurrency  *string                    `json:"secondary_currency,omitempty"`
	ExpensesByCurrency map[string]decimal.Decimal `json:"expenses_by_currency"`
}

// ToCreditCardResponse converts a domain.CreditCard to its response DTO.
func ToCreditCardResponse(card *domain.CreditCard) CreditCardResponse {
	expenses := make(map[string]decimal.Decimal, len(card.ExpensesByCurrency))
	for code, amount := range card.ExpensesByCurrency {
		expenses[string(code)] = amount
	}
	var secondary *string
	if card.SecondaryCurrency != nil {
		s := string(*card.SecondaryCurrency)
		secondary = &s
	}
	return CreditCardResponse{
		ID:                 card.CardID,
		Name:               card.Name,
		LastFourDigits:     card.LastFourDigits,
		Brand:              card.Brand,
		PrimaryCurrency:    string(card.PrimaryCurrency),
		SecondaryCurrency:  secondary,
		ExpensesByCurrency: expenses,
	}
}

// ToListCreditCardResponse converts a slice of cards to response DTOs.
func ToListCreditCardResponse(cards []domain.CreditCard) []CreditCardResponse {
	res := make([]CreditCardResponse, len(cards))
	for i := range cards {
		res[i] = ToCreditCardResponse(&cards[i])
	}
	return res
}
