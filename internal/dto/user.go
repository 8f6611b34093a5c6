package dto

import (
	"github.com/cardwise/cardwise_backend/internal/core/domain"
)

// UserResponse is the public shape of a user, returned by /api/me and auth.
type UserResponse struct {
	ID              string `json:"id"`
	Email           string `json:"email"`
	Name            string `json:"name,omitempty"`
	DefaultCurrency string `json:"default_currency,omitempty"`
	PreferredTheme  string `json:"preferred_theme,omitempty"`
}

// ToUserResponse converts a domain.User to its response DTO. Settings may be
// nil when the caller has not loaded them.
func ToUserResponse(user *domain.User, settings *domain.UserSettings) UserResponse {
	resp := UserResponse{
		ID:    user.UserID,
		Email: user.Email,
		Name:  user.Name,
	}
	if settings != nil {
		resp.DefaultCurrency = string(settings.DefaultCurrency)
		resp.PreferredTheme = string(settings.PreferredTheme)
	}
	return resp
}
