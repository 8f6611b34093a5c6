package services

import (
	"context"

	"github.com/cardwise/cardwise_backend/internal/core/domain"
	"github.com/cardwise/cardwise_backend/internal/dto"
)

// SettingsSvcFacade exposes the user settings operations. UpdateSettings
// replaces the whole record (PUT semantics per the settings endpoint).
type SettingsSvcFacade interface {
	GetSettings(ctx context.Context, userID string) (*domain.UserSettings, error)
	UpdateSettings(ctx context.Context, userID string, req dto.UpdateSettingsRequest) (*domain.UserSettings, error)
}
