package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/cardwise/cardwise_backend/internal/apperrors"
	"github.com/cardwise/cardwise_backend/internal/core/domain"
	portsrepo "github.com/cardwise/cardwise_backend/internal/core/ports/repositories"
	"github.com/cardwise/cardwise_backend/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxSettingsRepository struct {
	db *pgxpool.Pool
}

func newPgxSettingsRepository(db *pgxpool.Pool) portsrepo.SettingsRepository {
	return &PgxSettingsRepository{db: db}
}

var _ portsrepo.SettingsRepository = (*PgxSettingsRepository)(nil)

func toModelSettings(d domain.UserSettings) models.UserSettings {
	enabled := make([]string, len(d.EnabledCurrencies))
	for i, c := range d.EnabledCurrencies {
		enabled[i] = string(c)
	}
	return models.UserSettings{
		UserID:            d.UserID,
		Name:              d.Name,
		DefaultCurrency:   string(d.DefaultCurrency),
		PreferredTheme:    string(d.PreferredTheme),
		EnabledCurrencies: enabled,
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			LastUpdatedAt: d.LastUpdatedAt,
		},
	}
}

func toDomainSettings(m models.UserSettings) domain.UserSettings {
	enabled := make([]domain.CurrencyCode, len(m.EnabledCurrencies))
	for i, c := range m.EnabledCurrencies {
		enabled[i] = domain.CurrencyCode(c)
	}
	return domain.UserSettings{
		UserID:            m.UserID,
		Name:              m.Name,
		DefaultCurrency:   domain.CurrencyCode(m.DefaultCurrency),
		PreferredTheme:    domain.Theme(m.PreferredTheme),
		EnabledCurrencies: enabled,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			LastUpdatedAt: m.LastUpdatedAt,
		},
	}
}

// SaveSettings replaces the whole settings row, creating it if missing.
func (r *PgxSettingsRepository) SaveSettings(ctx context.Context, settings domain.UserSettings) error {
	modelSettings := toModelSettings(settings)
	query := `
        INSERT INTO user_settings (user_id, name, default_currency, preferred_theme, enabled_currencies, created_at, last_updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        ON CONFLICT (user_id) DO UPDATE SET
            name = EXCLUDED.name,
            default_currency = EXCLUDED.default_currency,
            preferred_theme = EXCLUDED.preferred_theme,
            enabled_currencies = EXCLUDED.enabled_currencies,
            last_updated_at = EXCLUDED.last_updated_at;
    `
	_, err := r.db.Exec(ctx, query,
		modelSettings.UserID,
		modelSettings.Name,
		modelSettings.DefaultCurrency,
		modelSettings.PreferredTheme,
		modelSettings.EnabledCurrencies,
		modelSettings.CreatedAt,
		modelSettings.LastUpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	return nil
}

func (r *PgxSettingsRepository) FindSettingsByUserID(ctx context.Context, userID string) (*domain.UserSettings, error) {
	query := `
		SELECT user_id, name, default_currency, preferred_theme, enabled_currencies, created_at, last_updated_at
		FROM user_settings
		WHERE user_id = $1;
	`
	var modelSettings models.UserSettings
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&modelSettings.UserID,
		&modelSettings.Name,
		&modelSettings.DefaultCurrency,
		&modelSettings.PreferredTheme,
		&modelSettings.EnabledCurrencies,
		&modelSettings.CreatedAt,
		&modelSettings.LastUpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find settings for user %s: %w", userID, err)
	}

	domainSettings := toDomainSettings(modelSettings)
	return &domainSettings, nil
}
