package client

import (
	"sync"

	"github.com/cardwise/cardwise_backend/internal/core/domain"
	"github.com/cardwise/cardwise_backend/internal/dto"
)

// Session holds the client-side state of an authenticated user: their
// settings as fetched after login plus a session-local display currency
// override. The override is never persisted; a fresh session starts back on
// the default currency.
type Session struct {
	mu       sync.RWMutex
	settings *dto.SettingsResponse
	override domain.CurrencyCode
}

// NewSession creates an empty session. Call SetSettings once the settings
// have been fetched.
func NewSession() *Session {
	return &Session{}
}

// SetSettings stores the fetched settings and drops any stale currency
// override that is no longer among the enabled currencies.
func (s *Session) SetSettings(settings *dto.SettingsResponse) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings = settings
	if s.override != "" && !s.currencyEnabledLocked(s.override) {
		s.override = ""
	}
}

// Settings returns the stored settings, nil before login completes.
func (s *Session) Settings() *dto.SettingsResponse {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings
}

// DisplayCurrency returns the currency amounts should be shown in: the
// session override when set, otherwise the user's default, otherwise USD.
func (s *Session) DisplayCurrency() domain.CurrencyCode {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.override != "" {
		return s.override
	}
	if s.settings != nil && s.settings.DefaultCurrency != "" {
		return domain.CurrencyCode(s.settings.DefaultCurrency)
	}
	return domain.USD
}

// SetDisplayCurrency sets the session-local override. Codes not in the
// enabled list are ignored.
func (s *Session) SetDisplayCurrency(code domain.CurrencyCode) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.currencyEnabledLocked(code) {
		s.override = code
	}
}

// ClearDisplayCurrency reverts to the default currency.
func (s *Session) ClearDisplayCurrency() {
	s.mu.Lock()
	s.override = ""
	s.mu.Unlock()
}

// CurrencyChoices returns the currencies the user may toggle between, or nil
// when fewer than two are enabled, in which case the toggle is hidden.
func (s *Session) CurrencyChoices() []domain.CurrencyCode {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.settings == nil || len(s.settings.EnabledCurrencies) < 2 {
		return nil
	}
	choices := make([]domain.CurrencyCode, len(s.settings.EnabledCurrencies))
	for i, c := range s.settings.EnabledCurrencies {
		choices[i] = domain.CurrencyCode(c)
	}
	return choices
}

func (s *Session) currencyEnabledLocked(code domain.CurrencyCode) bool {
	if s.settings == nil {
		return false
	}
	for _, c := range s.settings.EnabledCurrencies {
		if domain.CurrencyCode(c) == code {
			return true
		}
	}
	return false
}
