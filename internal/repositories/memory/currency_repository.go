package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/SscSPs/wealthsync_backend/internal/apperrors"
	"github.com/SscSPs/wealthsync_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/wealthsync_backend/internal/core/ports/repositories"
)

// CurrencyRepository holds exchange rates and display symbols. Rates may be
// replaced at runtime by the rate feed, hence the lock.
type CurrencyRepository struct {
	mu         sync.RWMutex
	currencies map[string]domain.Currency
}

var _ portsrepo.CurrencyRepositoryFacade = (*CurrencyRepository)(nil)

// NewCurrencyRepository creates a repository seeded with currencies.
func NewCurrencyRepository(currencies []domain.Currency) *CurrencyRepository {
	r := &CurrencyRepository{currencies: make(map[string]domain.Currency, len(currencies))}
	for _, c := range currencies {
		r.currencies[c.CurrencyCode] = c
	}
	return r
}

// NewDefaultCurrencyRepository serves DefaultCurrencies.
func NewDefaultCurrencyRepository() *CurrencyRepository {
	return NewCurrencyRepository(DefaultCurrencies())
}

// FindCurrencyByCode retrieves a currency by its code.
func (r *CurrencyRepository) FindCurrencyByCode(_ context.Context, currencyCode string) (*domain.Currency, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.currencies[currencyCode]
	if !ok {
		return nil, fmt.Errorf("currency %q: %w", currencyCode, apperrors.ErrNotFound)
	}
	return &c, nil
}

// ListCurrencies retrieves all currencies ordered by code.
func (r *CurrencyRepository) ListCurrencies(_ context.Context) ([]domain.Currency, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	list := make([]domain.Currency, 0, len(r.currencies))
	for _, c := range r.currencies {
		list = append(list, c)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].CurrencyCode < list[j].CurrencyCode })
	return list, nil
}

// UpdateRates overwrites the rate of every known currency present in rates.
// Unknown codes and non-positive rates are skipped; symbols and names are kept.
func (r *CurrencyRepository) UpdateRates(_ context.Context, rates map[string]float64) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	applied := 0
	for code, rate := range rates {
		c, ok := r.currencies[code]
		if !ok || rate <= 0 {
			continue
		}
		c.Rate = rate
		r.currencies[code] = c
		applied++
	}
	return applied, nil
}
