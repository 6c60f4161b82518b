package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/SscSPs/wealthsync_backend/internal/core/services"
	"github.com/SscSPs/wealthsync_backend/internal/repositories/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// --- Mock RatesFetcher ---
type MockRatesFetcher struct {
	mock.Mock
}

func (m *MockRatesFetcher) FetchRates(ctx context.Context) (map[string]float64, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]float64), args.Error(1)
}

func TestExchangeRateSync_SyncRatesUpdatesKnownCurrencies(t *testing.T) {
	ctx := context.Background()
	fetcher := new(MockRatesFetcher)
	repo := memory.NewDefaultCurrencyRepository()
	fetcher.On("FetchRates", mock.Anything).Return(map[string]float64{
		"USD": 1,
		"EUR": 0.8,
		"JPY": 130,
		"CHF": 0.9,
	}, nil).Once()

	svc := services.NewExchangeRateSyncService(fetcher, repo, "@every 1h", nil)
	require.NoError(t, svc.SyncRates(ctx))

	eur, err := repo.FindCurrencyByCode(ctx, "EUR")
	require.NoError(t, err)
	assert.Equal(t, 0.8, eur.Rate)
	jpy, err := repo.FindCurrencyByCode(ctx, "JPY")
	require.NoError(t, err)
	assert.Equal(t, 130.0, jpy.Rate)
	gbp, err := repo.FindCurrencyByCode(ctx, "GBP")
	require.NoError(t, err)
	assert.Equal(t, 0.78, gbp.Rate)
	fetcher.AssertExpectations(t)
}

func TestExchangeRateSync_FetchFailureKeepsRates(t *testing.T) {
	ctx := context.Background()
	fetcher := new(MockRatesFetcher)
	repo := memory.NewDefaultCurrencyRepository()
	fetcher.On("FetchRates", mock.Anything).Return(nil, errors.New("feed unavailable")).Once()

	svc := services.NewExchangeRateSyncService(fetcher, repo, "@every 1h", nil)
	err := svc.SyncRates(ctx)

	assert.ErrorContains(t, err, "failed to fetch exchange rates")
	eur, _ := repo.FindCurrencyByCode(ctx, "EUR")
	assert.Equal(t, 0.93, eur.Rate)
}

func TestExchangeRateSync_StartStop(t *testing.T) {
	fetcher := new(MockRatesFetcher)
	svc := services.NewExchangeRateSyncService(fetcher, memory.NewDefaultCurrencyRepository(), "@every 1h", nil)

	require.NoError(t, svc.Start(context.Background()))
	assert.Error(t, svc.Start(context.Background()), "second start must fail")
	svc.Stop()
	svc.Stop()

	// Restart after stop is allowed.
	require.NoError(t, svc.Start(context.Background()))
	svc.Stop()
	fetcher.AssertNotCalled(t, "FetchRates", mock.Anything)
}

func TestExchangeRateSync_InvalidSchedule(t *testing.T) {
	svc := services.NewExchangeRateSyncService(new(MockRatesFetcher), memory.NewDefaultCurrencyRepository(), "not a schedule", nil)

	assert.Error(t, svc.Start(context.Background()))
	svc.Stop()
}
