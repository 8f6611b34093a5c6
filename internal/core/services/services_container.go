package services

import (
	portsrepo "github.com/cardwise/cardwise_backend/internal/core/ports/repositories"
	portssvc "github.com/cardwise/cardwise_backend/internal/core/ports/services"
	"github.com/cardwise/cardwise_backend/internal/platform/config"
)

// NewServiceContainer creates a service container with all dependencies wired.
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.User = NewUserService(repos.UserRepo, repos.SettingsRepo)
	container.Settings = NewSettingsService(repos.SettingsRepo)
	container.Category = NewCategoryService(repos.CategoryRepo)
	container.CreditCard = NewCreditCardService(repos.CreditCardRepo)
	container.Transaction = NewTransactionService(repos.TransactionRepo)
	container.Dashboard = NewDashboardService(repos.DashboardRepo)
	container.Token = NewTokenService(cfg)
	container.GoogleOAuth = NewGoogleOAuthService(cfg)

	return container
}
