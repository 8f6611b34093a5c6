package services

// ServiceContainer holds instances of all the application services. It is the
// main entry point for accessing service functionality and is what the
// handlers are wired against.
type ServiceContainer struct {
	User        UserSvcFacade
	Settings    SettingsSvcFacade
	Category    CategorySvcFacade
	CreditCard  CreditCardSvcFacade
	Transaction TransactionSvcFacade
	Dashboard   DashboardSvcFacade
	Token       TokenSvcFacade
	GoogleOAuth GoogleOAuthSvcFacade
}
