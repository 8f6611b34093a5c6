package client

import (
	"testing"

	"github.com/cardwise/cardwise_backend/internal/core/domain"
	"github.com/cardwise/cardwise_backend/internal/dto"
	"github.com/stretchr/testify/assert"
)

func twoCurrencySettings() *dto.SettingsResponse {
	return &dto.SettingsResponse{
		Name:              "Ana",
		DefaultCurrency:   "CRC",
		PreferredTheme:    "dark",
		EnabledCurrencies: []string{"CRC", "USD"},
	}
}

func TestSession_DisplayCurrency_Defaults(t *testing.T) {
	s := NewSession()

	// Before settings arrive everything shows in USD.
	assert.Equal(t, domain.USD, s.DisplayCurrency())

	s.SetSettings(twoCurrencySettings())
	assert.Equal(t, domain.CRC, s.DisplayCurrency())
}

func TestSession_Override(t *testing.T) {
	s := NewSession()
	s.SetSettings(twoCurrencySettings())

	s.SetDisplayCurrency(domain.USD)
	assert.Equal(t, domain.USD, s.DisplayCurrency())

	s.ClearDisplayCurrency()
	assert.Equal(t, domain.CRC, s.DisplayCurrency())
}

func TestSession_OverrideIgnoresDisabledCurrency(t *testing.T) {
	s := NewSession()
	s.SetSettings(twoCurrencySettings())

	s.SetDisplayCurrency(domain.EUR)

	assert.Equal(t, domain.CRC, s.DisplayCurrency())
}

func TestSession_SetSettingsDropsStaleOverride(t *testing.T) {
	s := NewSession()
	s.SetSettings(twoCurrencySettings())
	s.SetDisplayCurrency(domain.USD)

	// The user disables USD; the override must not survive.
	s.SetSettings(&dto.SettingsResponse{
		DefaultCurrency:   "CRC",
		EnabledCurrencies: []string{"CRC"},
	})

	assert.Equal(t, domain.CRC, s.DisplayCurrency())
}

func TestSession_CurrencyChoices(t *testing.T) {
	s := NewSession()

	assert.Nil(t, s.CurrencyChoices())

	s.SetSettings(&dto.SettingsResponse{DefaultCurrency: "USD", EnabledCurrencies: []string{"USD"}})
	assert.Nil(t, s.CurrencyChoices(), "a single enabled currency hides the toggle")

	s.SetSettings(twoCurrencySettings())
	assert.Equal(t, []domain.CurrencyCode{domain.CRC, domain.USD}, s.CurrencyChoices())
}
