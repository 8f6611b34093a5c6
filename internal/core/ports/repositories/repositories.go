package repositories

// RepositoryProvider bundles all repository implementations so wiring code
// can pass one value around instead of six.
type RepositoryProvider struct {
	UserRepo        UserRepository
	SettingsRepo    SettingsRepository
	CategoryRepo    CategoryRepository
	CreditCardRepo  CreditCardRepository
	TransactionRepo TransactionRepository
	DashboardRepo   DashboardRepository
}
