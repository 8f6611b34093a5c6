package dto

import (
	"github.com/cardwise/cardwise_backend/internal/core/domain"
)

// UpdateSettingsRequest replaces the whole settings record (PUT semantics).
type UpdateSettingsRequest struct {
	Name              string   `json:"name" binding:"required"`
	DefaultCurrency   string   `json:"default_currency" binding:"required,currencycode"`
	PreferredTheme    string   `json:"preferred_theme" binding:"required,oneof=light dark system"`
	EnabledCurrencies []string `json:"enabled_currencies" binding:"required,min=1,dive,currencycode"`
}

// SettingsResponse is the wire shape of a user's settings.
type SettingsResponse struct {
	Name              string   `json:"name"`
	DefaultCurrency   string   `json:"default_currency"`
	PreferredTheme    string   `json:"preferred_theme"`
	EnabledCurrencies []string `json:"enabled_currencies"`
}

// ToSettingsResponse converts domain settings to the response DTO.
func ToSettingsResponse(s *domain.UserSettings) SettingsResponse {
	enabled := make([]string, len(s.EnabledCurrencies))
	for i, c := range s.EnabledCurrencies {
		enabled[i] = string(c)
	}
	return SettingsResponse{
		Name:              s.Name,
		DefaultCurrency:   string(s.DefaultCurrency),
		PreferredTheme:    string(s.PreferredTheme),
		EnabledCurrencies: enabled,
	}
}

// ToDomainSettings converts an update request to domain settings for userID.
func (r UpdateSettingsRequest) ToDomainSettings(userID string) domain.UserSettings {
	enabled := make([]domain.CurrencyCode, len(r.EnabledCurrencies))
	for i, c := range r.EnabledCurrencies {
		enabled[i] = domain.CurrencyCode(c)
	}
	return domain.UserSettings{
		UserID:            userID,
		Name:              r.Name,
		DefaultCurrency:   domain.CurrencyCode(r.DefaultCurrency),
		PreferredTheme:    domain.Theme(r.PreferredTheme),
		EnabledCurrencies: enabled,
	}
}
