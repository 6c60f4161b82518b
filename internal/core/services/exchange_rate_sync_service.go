package services

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	portsrepo "github.com/SscSPs/wealthsync_backend/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/wealthsync_backend/internal/core/ports/services"
	"github.com/SscSPs/wealthsync_backend/internal/middleware"
	"github.com/robfig/cron/v3"
)

// syncTimeout bounds a single scheduled feed refresh.
const syncTimeout = 30 * time.Second

// RatesFetcher retrieves exchange rates relative to the base currency.
type RatesFetcher interface {
	FetchRates(ctx context.Context) (map[string]float64, error)
}

// ExchangeRateSyncService periodically replaces the exchange rate table with
// rates from an external feed. Currencies the feed does not quote keep their
// current rate.
type ExchangeRateSyncService struct {
	BaseService
	fetcher   RatesFetcher
	rateRepo  portsrepo.ExchangeRateWriter
	schedule  string
	logger    *slog.Logger
	mu        sync.Mutex
	scheduler *cron.Cron
}

// NewExchangeRateSyncService creates a sync service. schedule uses cron syntax
// including descriptors such as "@every 6h".
func NewExchangeRateSyncService(fetcher RatesFetcher, rateRepo portsrepo.ExchangeRateWriter, schedule string, logger *slog.Logger) *ExchangeRateSyncService {
	if logger == nil {
		logger = slog.Default()
	}
	return &ExchangeRateSyncService{
		fetcher:  fetcher,
		rateRepo: rateRepo,
		schedule: schedule,
		logger:   logger,
	}
}

var _ portssvc.ExchangeRateSyncSvc = (*ExchangeRateSyncService)(nil)

// SyncRates fetches the feed once and applies it.
func (s *ExchangeRateSyncService) SyncRates(ctx context.Context) error {
	rates, err := s.fetcher.FetchRates(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch exchange rates: %w", err)
	}

	applied, err := s.rateRepo.UpdateRates(ctx, rates)
	if err != nil {
		return fmt.Errorf("failed to store exchange rates: %w", err)
	}

	s.LogInfo(ctx, "Exchange rates synced", slog.Int("fetched", len(rates)), slog.Int("applied", applied))
	return nil
}

// Start schedules SyncRates. Runs use ctx as their parent context.
func (s *ExchangeRateSyncService) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.scheduler != nil {
		return fmt.Errorf("exchange rate sync already started")
	}

	scheduler := cron.New()
	_, err := scheduler.AddFunc(s.schedule, func() {
		runCtx, cancel := context.WithTimeout(middleware.WithLogger(ctx, s.logger), syncTimeout)
		defer cancel()
		if err := s.SyncRates(runCtx); err != nil {
			s.logger.Error("Scheduled exchange rate sync failed", slog.String("error", err.Error()))
		}
	})
	if err != nil {
		return fmt.Errorf("invalid exchange rate sync schedule %q: %w", s.schedule, err)
	}

	scheduler.Start()
	s.scheduler = scheduler
	s.logger.Info("Exchange rate sync scheduled", slog.String("schedule", s.schedule))
	return nil
}

// Stop halts the schedule and waits for a running sync to finish.
func (s *ExchangeRateSyncService) Stop() {
	s.mu.Lock()
	scheduler := s.scheduler
	s.scheduler = nil
	s.mu.Unlock()

	if scheduler != nil {
		<-scheduler.Stop().Done()
	}
}
