package pgsql

import (
	portsrepo "github.com/cardwise/cardwise_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		UserRepo:        newPgxUserRepository(dbPool),
		SettingsRepo:    newPgxSettingsRepository(dbPool),
		CategoryRepo:    newPgxCategoryRepository(dbPool),
		CreditCardRepo:  newPgxCreditCardRepository(dbPool),
		TransactionRepo: newPgxTransactionRepository(dbPool),
		DashboardRepo:   newPgxDashboardRepository(dbPool),
	}
}
