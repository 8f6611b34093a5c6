package services

import (
	"context"
	"fmt"
	"time"

	"github.com/cardwise/cardwise_backend/internal/core/domain"
	portsrepo "github.com/cardwise/cardwise_backend/internal/core/ports/repositories"
	portssvc "github.com/cardwise/cardwise_backend/internal/core/ports/services"
	"github.com/cardwise/cardwise_backend/internal/dto"
)

type settingsService struct {
	BaseService
	settingsRepo portsrepo.SettingsRepository
}

// NewSettingsService creates the settings service.
func NewSettingsService(settingsRepo portsrepo.SettingsRepository) portssvc.SettingsSvcFacade {
	return &settingsService{settingsRepo: settingsRepo}
}

var _ portssvc.SettingsSvcFacade = (*settingsService)(nil)

func (s *settingsService) GetSettings(ctx context.Context, userID string) (*domain.UserSettings, error) {
	settings, err := s.settingsRepo.FindSettingsByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get settings: %w", err)
	}
	return settings, nil
}

// UpdateSettings replaces the whole settings record server-side; partial
// updates are the caller's responsibility to merge before sending.
func (s *settingsService) UpdateSettings(ctx context.Context, userID string, req dto.UpdateSettingsRequest) (*domain.UserSettings, error) {
	settings := req.ToDomainSettings(userID)
	settings.LastUpdatedAt = time.Now()

	if err := s.settingsRepo.SaveSettings(ctx, settings); err != nil {
		return nil, fmt.Errorf("failed to update settings: %w", err)
	}

	saved, err := s.settingsRepo.FindSettingsByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload settings after update: %w", err)
	}
	return saved, nil
}
