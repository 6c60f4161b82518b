package services

import (
	"context"

	"github.com/SscSPs/wealthsync_backend/internal/core/domain"
)

// CurrencyReaderSvc defines read operations for currency data
type CurrencyReaderSvc interface {
	// ResolveCurrency returns the currency for code. Unknown codes resolve to
	// the default rate and use the code as their symbol.
	ResolveCurrency(ctx context.Context, currencyCode string) (domain.Currency, error)

	// ListCurrencies retrieves all available currencies.
	ListCurrencies(ctx context.Context) ([]domain.Currency, error)
}

// CurrencyConverterSvc converts amounts between a currency and the base currency.
type CurrencyConverterSvc interface {
	ToBase(amount float64, currency domain.Currency) float64
	FromBase(amount float64, currency domain.Currency) float64
}

// CurrencySvcFacade combines all currency-related service interfaces
type CurrencySvcFacade interface {
	CurrencyReaderSvc
	CurrencyConverterSvc
}

// ExchangeRateSyncSvc refreshes exchange rates from an external feed.
type ExchangeRateSyncSvc interface {
	// SyncRates fetches the feed once and applies it.
	SyncRates(ctx context.Context) error

	// Start schedules periodic syncs until Stop is called.
	Start(ctx context.Context) error

	// Stop halts the schedule and waits for a running sync to finish.
	Stop()
}
