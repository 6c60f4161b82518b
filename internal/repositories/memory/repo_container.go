package memory

import (
	portsrepo "github.com/SscSPs/wealthsync_backend/internal/core/ports/repositories"
)

// NewRepositoryProvider keeps everything in process. History is lost on restart.
func NewRepositoryProvider() portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		LocationRepo:      NewDefaultLocationRepository(),
		CurrencyRepo:      NewDefaultCurrencyRepository(),
		BudgetHistoryRepo: NewBudgetHistoryRepository(),
	}
}
