package services_test

import (
	"context"
	"testing"

	"github.com/cardwise/cardwise_backend/internal/apperrors"
	"github.com/cardwise/cardwise_backend/internal/core/domain"
	portssvc "github.com/cardwise/cardwise_backend/internal/core/ports/services"
	"github.com/cardwise/cardwise_backend/internal/core/services"
	"github.com/cardwise/cardwise_backend/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type SettingsServiceTestSuite struct {
	suite.Suite
	mockRepo *MockSettingsRepository
	service  portssvc.SettingsSvcFacade
	userID   string
}

func (suite *SettingsServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockSettingsRepository)
	suite.service = services.NewSettingsService(suite.mockRepo)
	suite.userID = "user-1"
}

func (suite *SettingsServiceTestSuite) TestGetSettings_Success() {
	ctx := context.Background()
	expected := &domain.UserSettings{
		UserID:            suite.userID,
		Name:              "Ana",
		DefaultCurrency:   domain.CRC,
		PreferredTheme:    domain.ThemeDark,
		EnabledCurrencies: []domain.CurrencyCode{domain.CRC, domain.USD},
	}

	suite.mockRepo.On("FindSettingsByUserID", ctx, suite.userID).Return(expected, nil).Once()

	settings, err := suite.service.GetSettings(ctx, suite.userID)

	suite.Require().NoError(err)
	suite.Equal(expected, settings)
}

func (suite *SettingsServiceTestSuite) TestGetSettings_NotFound() {
	ctx := context.Background()

	suite.mockRepo.On("FindSettingsByUserID", ctx, suite.userID).Return(nil, apperrors.ErrNotFound).Once()

	settings, err := suite.service.GetSettings(ctx, suite.userID)

	suite.Require().Error(err)
	suite.Nil(settings)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *SettingsServiceTestSuite) TestUpdateSettings_SavesThenReloads() {
	ctx := context.Background()
	req := dto.UpdateSettingsRequest{
		Name:              "Ana",
		DefaultCurrency:   "CRC",
		PreferredTheme:    "dark",
		EnabledCurrencies: []string{"CRC", "USD"},
	}
	reloaded := &domain.UserSettings{
		UserID:            suite.userID,
		Name:              "Ana",
		DefaultCurrency:   domain.CRC,
		PreferredTheme:    domain.ThemeDark,
		EnabledCurrencies: []domain.CurrencyCode{domain.CRC, domain.USD},
	}

	suite.mockRepo.On("SaveSettings", ctx, mock.MatchedBy(func(s domain.UserSettings) bool {
		return s.UserID == suite.userID && s.DefaultCurrency == domain.CRC &&
			s.PreferredTheme == domain.ThemeDark && len(s.EnabledCurrencies) == 2
	})).Return(nil).Once()
	suite.mockRepo.On("FindSettingsByUserID", ctx, suite.userID).Return(reloaded, nil).Once()

	settings, err := suite.service.UpdateSettings(ctx, suite.userID, req)

	suite.Require().NoError(err)
	suite.Equal(reloaded, settings)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *SettingsServiceTestSuite) TestUpdateSettings_SaveError() {
	ctx := context.Background()
	req := dto.UpdateSettingsRequest{Name: "Ana", DefaultCurrency: "USD", PreferredTheme: "light", EnabledCurrencies: []string{"USD"}}

	suite.mockRepo.On("SaveSettings", ctx, mock.AnythingOfType("domain.UserSettings")).Return(assert.AnError).Once()

	settings, err := suite.service.UpdateSettings(ctx, suite.userID, req)

	suite.Require().Error(err)
	suite.Nil(settings)
	suite.ErrorIs(err, assert.AnError)
	suite.mockRepo.AssertNotCalled(suite.T(), "FindSettingsByUserID")
}

func TestSettingsServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SettingsServiceTestSuite))
}
