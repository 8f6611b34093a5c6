package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cardwise/cardwise_backend/internal/apperrors"
	"github.com/cardwise/cardwise_backend/internal/core/domain"
	portsrepo "github.com/cardwise/cardwise_backend/internal/core/ports/repositories"
	"github.com/cardwise/cardwise_backend/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type PgxCreditCardRepository struct {
	db *pgxpool.Pool
}

func newPgxCreditCardRepository(db *pgxpool.Pool) portsrepo.CreditCardRepository {
	return &PgxCreditCardRepository{db: db}
}

var _ portsrepo.CreditCardRepository = (*PgxCreditCardRepository)(nil)

func toModelCreditCard(d domain.CreditCard) models.CreditCard {
	var secondary *string
	if d.SecondaryCurrency != nil {
		s := string(*d.SecondaryCurrency)
		secondary = &s
	}
	return models.CreditCard{
		CardID:            d.CardID,
		UserID:            d.UserID,
		Name:              d.Name,
		LastFourDigits:    d.LastFourDigits,
		Brand:             d.Brand,
		PrimaryCurrency:   string(d.PrimaryCurrency),
		SecondaryCurrency: secondary,
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			LastUpdatedAt: d.LastUpdatedAt,
		},
		DeletedAt: d.DeletedAt,
	}
}

func toDomainCreditCard(m models.CreditCard) domain.CreditCard {
	var secondary *domain.CurrencyCode
	if m.SecondaryCurrency != nil {
		s := domain.CurrencyCode(*m.SecondaryCurrency)
		secondary = &s
	}
	expenses := make(map[domain.CurrencyCode]decimal.Decimal, len(m.ExpensesByCurrency))
	for code, amount := range m.ExpensesByCurrency {
		expenses[domain.CurrencyCode(code)] = amount
	}
	return domain.CreditCard{
		CardID:             m.CardID,
		UserID:             m.UserID,
		Name:               m.Name,
		LastFourDigits:     m.LastFourDigits,
		Brand:              m.Brand,
		PrimaryCurrency:    domain.CurrencyCode(m.PrimaryCurrency),
		SecondaryCurrency:  secondary,
		ExpensesByCurrency: expenses,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			LastUpdatedAt: m.LastUpdatedAt,
		},
		DeletedAt: m.DeletedAt,
	}
}

const creditCardSelect = `
	SELECT card_id, user_id, name, last_four_digits, brand, primary_currency, secondary_currency, created_at, last_updated_at, deleted_at
	FROM credit_cards
`

func (r *PgxCreditCardRepository) scanCard(row pgx.Row) (models.CreditCard, error) {
	var m models.CreditCard
	err := row.Scan(
		&m.CardID,
		&m.UserID,
		&m.Name,
		&m.LastFourDigits,
		&m.Brand,
		&m.PrimaryCurrency,
		&m.SecondaryCurrency,
		&m.CreatedAt,
		&m.LastUpdatedAt,
		&m.DeletedAt,
	)
	return m, err
}

// loadExpenses fills ExpensesByCurrency from an aggregate over non-deleted
// expense transactions, refunds subtracted.
func (r *PgxCreditCardRepository) loadExpenses(ctx context.Context, userID string, cards []models.CreditCard) error {
	if len(cards) == 0 {
		return nil
	}
	query := `
		SELECT credit_card_id, currency, COALESCE(SUM(amount - COALESCE(refund_amount, 0)), 0)
		FROM transactions
		WHERE user_id = $1 AND transaction_type = 'EXPENSE' AND deleted_at IS NULL
		GROUP BY credit_card_id, currency;
	`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return fmt.Errorf("failed to query card expenses: %w", err)
	}
	defer rows.Close()

	type cardCurrency struct {
		cardID   string
		currency string
	}
	totals := map[cardCurrency]decimal.Decimal{}
	for rows.Next() {
		var cardID, currency string
		var amount decimal.Decimal
		if err := rows.Scan(&cardID, &currency, &amount); err != nil {
			return fmt.Errorf("failed to scan card expense row: %w", err)
		}
		totals[cardCurrency{cardID, currency}] = amount
	}
	if rows.Err() != nil {
		return fmt.Errorf("error iterating card expense rows: %w", rows.Err())
	}

	for i := range cards {
		cards[i].ExpensesByCurrency = map[string]decimal.Decimal{}
		for key, amount := range totals {
			if key.cardID == cards[i].CardID {
				cards[i].ExpensesByCurrency[key.currency] = amount
			}
		}
	}
	return nil
}

func (r *PgxCreditCardRepository) SaveCreditCard(ctx context.Context, card domain.CreditCard) error {
	modelCard := toModelCreditCard(card)
	query := `
        INSERT INTO credit_cards (card_id, user_id, name, last_four_digits, brand, primary_currency, secondary_currency, created_at, last_updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
    `
	_, err := r.db.Exec(ctx, query,
		modelCard.CardID,
		modelCard.UserID,
		modelCard.Name,
		modelCard.LastFourDigits,
		modelCard.Brand,
		modelCard.PrimaryCurrency,
		modelCard.SecondaryCurrency,
		modelCard.CreatedAt,
		modelCard.LastUpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save credit card: %w", err)
	}
	return nil
}

func (r *PgxCreditCardRepository) FindCreditCardByID(ctx context.Context, userID, cardID string) (*domain.CreditCard, error) {
	query := creditCardSelect + `
	WHERE card_id = $1 AND user_id = $2 AND deleted_at IS NULL;
	`
	modelCard, err := r.scanCard(r.db.QueryRow(ctx, query, cardID, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find credit card %s: %w", cardID, err)
	}

	cards := []models.CreditCard{modelCard}
	if err := r.loadExpenses(ctx, userID, cards); err != nil {
		return nil, err
	}

	domainCard := toDomainCreditCard(cards[0])
	return &domainCard, nil
}

func (r *PgxCreditCardRepository) FindCreditCards(ctx context.Context, userID string) ([]domain.CreditCard, error) {
	query := creditCardSelect + `
	WHERE user_id = $1 AND deleted_at IS NULL
	ORDER BY created_at;
	`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query credit cards: %w", err)
	}
	defer rows.Close()

	modelCards := []models.CreditCard{}
	for rows.Next() {
		m, err := r.scanCard(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan credit card row: %w", err)
		}
		modelCards = append(modelCards, m)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating credit card rows: %w", rows.Err())
	}

	if err := r.loadExpenses(ctx, userID, modelCards); err != nil {
		return nil, err
	}

	domainCards := make([]domain.CreditCard, len(modelCards))
	for i, m := range modelCards {
		domainCards[i] = toDomainCreditCard(m)
	}
	return domainCards, nil
}

func (r *PgxCreditCardRepository) UpdateCreditCard(ctx context.Context, card domain.CreditCard) error {
	modelCard := toModelCreditCard(card)
	query := `
        UPDATE credit_cards
        SET name = $1, last_four_digits = $2, brand = $3, primary_currency = $4, secondary_currency = $5, last_updated_at = $6
        WHERE card_id = $7 AND user_id = $8 AND deleted_at IS NULL;
    `
	cmdTag, err := r.db.Exec(ctx, query,
		modelCard.Name,
		modelCard.LastFourDigits,
		modelCard.Brand,
		modelCard.PrimaryCurrency,
		modelCard.SecondaryCurrency,
		modelCard.LastUpdatedAt,
		modelCard.CardID,
		modelCard.UserID,
	)
	if err != nil {
		return fmt.Errorf("failed to execute update credit card query: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("credit card not found or already deleted: %w", apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxCreditCardRepository) MarkCreditCardDeleted(ctx context.Context, userID, cardID string, deletedAt time.Time) error {
	query := `
        UPDATE credit_cards
        SET deleted_at = $1, last_updated_at = $1
        WHERE card_id = $2 AND user_id = $3 AND deleted_at IS NULL;
    `
	cmdTag, err := r.db.Exec(ctx, query, deletedAt, cardID, userID)
	if err != nil {
		return fmt.Errorf("failed to mark credit card as deleted: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("credit card not found or already deleted: %w", apperrors.ErrNotFound)
	}
	return nil
}
