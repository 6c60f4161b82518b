package repositories

import (
	"context"

	"github.com/SscSPs/wealthsync_backend/internal/core/domain"
)

// CurrencyReader defines read operations for currency data
type CurrencyReader interface {
	// FindCurrencyByCode retrieves a currency by its upper-case code, or apperrors.ErrNotFound.
	FindCurrencyByCode(ctx context.Context, currencyCode string) (*domain.Currency, error)

	// ListCurrencies retrieves all known currencies ordered by code.
	ListCurrencies(ctx context.Context) ([]domain.Currency, error)
}

// ExchangeRateWriter replaces exchange rates relative to the base currency.
type ExchangeRateWriter interface {
	// UpdateRates stores the given rates and reports how many were applied.
	UpdateRates(ctx context.Context, rates map[string]float64) (int, error)
}

// CurrencyRepositoryFacade combines all currency-related repository interfaces
type CurrencyRepositoryFacade interface {
	CurrencyReader
	ExchangeRateWriter
}
