package pgsql

import (
	portsrepo "github.com/SscSPs/wealthsync_backend/internal/core/ports/repositories"
	"github.com/SscSPs/wealthsync_backend/internal/repositories/memory"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider persists budget history in PostgreSQL. The economic
// data and currency tables are static and stay in memory.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		LocationRepo:      memory.NewDefaultLocationRepository(),
		CurrencyRepo:      memory.NewDefaultCurrencyRepository(),
		BudgetHistoryRepo: NewPgxBudgetHistoryRepository(dbPool),
	}
}
