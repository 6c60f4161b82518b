package services

import (
	"log/slog"

	portsrepo "github.com/SscSPs/wealthsync_backend/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/wealthsync_backend/internal/core/ports/services"
	"github.com/SscSPs/wealthsync_backend/internal/integrations/ecb"
	"github.com/SscSPs/wealthsync_backend/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, logger *slog.Logger) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Location = NewLocationService(repos.LocationRepo)
	container.Currency = NewCurrencyService(repos.CurrencyRepo)

	// The budget service depends on both lookups above.
	container.Budget = NewBudgetService(repos.BudgetHistoryRepo, container.Location, container.Currency)

	container.ExchangeRateSync = NewExchangeRateSyncService(
		ecb.NewClient(cfg.RatesFeedURL, logger),
		repos.CurrencyRepo,
		cfg.RatesSyncSchedule,
		logger,
	)

	return container
}
