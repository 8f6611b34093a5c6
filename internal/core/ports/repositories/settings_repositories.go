package repositories

import (
	"context"

	"github.com/cardwise/cardwise_backend/internal/core/domain"
)

// SettingsRepository defines persistence operations for user settings.
// SaveSettings performs an upsert; the settings row is created with the user
// and replaced wholesale on update.
type SettingsRepository interface {
	SaveSettings(ctx context.Context, settings domain.UserSettings) error
	FindSettingsByUserID(ctx context.Context, userID string) (*domain.UserSettings, error)
}
