package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/SscSPs/wealthsync_backend/internal/apperrors"
	"github.com/SscSPs/wealthsync_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/wealthsync_backend/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/wealthsync_backend/internal/core/ports/services"
)

// CurrencyService resolves currencies and converts amounts to and from the
// base currency.
type CurrencyService struct {
	BaseService
	currencyRepo portsrepo.CurrencyReader
}

// NewCurrencyService creates a CurrencyService.
func NewCurrencyService(currencyRepo portsrepo.CurrencyReader) *CurrencyService {
	return &CurrencyService{currencyRepo: currencyRepo}
}

var _ portssvc.CurrencySvcFacade = (*CurrencyService)(nil)

// ResolveCurrency looks up code case-insensitively. A code missing from the
// table is treated as the base currency: rate 1.0, with the code itself as
// its display symbol.
func (s *CurrencyService) ResolveCurrency(ctx context.Context, currencyCode string) (domain.Currency, error) {
	code := strings.ToUpper(currencyCode)

	currency, err := s.currencyRepo.FindCurrencyByCode(ctx, code)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			s.LogDebug(ctx, "Unknown currency, using default rate", "currency_code", code)
			return domain.Currency{
				CurrencyCode: code,
				Symbol:       code,
				Rate:         domain.DefaultExchangeRate,
			}, nil
		}
		return domain.Currency{}, fmt.Errorf("failed to resolve currency %s: %w", code, err)
	}
	return *currency, nil
}

// ListCurrencies retrieves all known currencies.
func (s *CurrencyService) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	currencies, err := s.currencyRepo.ListCurrencies(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list currencies in service: %w", err)
	}
	if currencies == nil {
		return []domain.Currency{}, nil
	}
	return currencies, nil
}

// ToBase converts amount from currency into the base currency.
func (s *CurrencyService) ToBase(amount float64, currency domain.Currency) float64 {
	return amount / currency.Rate
}

// FromBase converts amount from the base currency into currency.
func (s *CurrencyService) FromBase(amount float64, currency domain.Currency) float64 {
	return amount * currency.Rate
}
