package handlers_test

import (
	"context"

	"github.com/SscSPs/wealthsync_backend/internal/core/domain"
	portssvc "github.com/SscSPs/wealthsync_backend/internal/core/ports/services"
	"github.com/stretchr/testify/mock"
)

// --- Mock LocationService ---
type MockLocationService struct {
	mock.Mock
}

func (m *MockLocationService) ListContinents(ctx context.Context) ([]domain.LocationSummary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LocationSummary), args.Error(1)
}
func (m *MockLocationService) ListCountries(ctx context.Context, continent string) ([]domain.LocationSummary, error) {
	args := m.Called(ctx, continent)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LocationSummary), args.Error(1)
}
func (m *MockLocationService) ListCities(ctx context.Context, continent, country string) ([]domain.LocationSummary, error) {
	args := m.Called(ctx, continent, country)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LocationSummary), args.Error(1)
}
func (m *MockLocationService) ResolveProfile(ctx context.Context, continent, country, city string) (*domain.EconomicProfile, error) {
	args := m.Called(ctx, continent, country, city)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.EconomicProfile), args.Error(1)
}

var _ portssvc.LocationSvcFacade = (*MockLocationService)(nil)

// --- Mock CurrencyService ---
type MockCurrencyService struct {
	mock.Mock
}

func (m *MockCurrencyService) ResolveCurrency(ctx context.Context, currencyCode string) (domain.Currency, error) {
	args := m.Called(ctx, currencyCode)
	return args.Get(0).(domain.Currency), args.Error(1)
}
func (m *MockCurrencyService) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Currency), args.Error(1)
}
func (m *MockCurrencyService) ToBase(amount float64, currency domain.Currency) float64 {
	args := m.Called(amount, currency)
	return args.Get(0).(float64)
}
func (m *MockCurrencyService) FromBase(amount float64, currency domain.Currency) float64 {
	args := m.Called(amount, currency)
	return args.Get(0).(float64)
}

var _ portssvc.CurrencySvcFacade = (*MockCurrencyService)(nil)

// --- Mock BudgetService ---
type MockBudgetService struct {
	mock.Mock
}

func (m *MockBudgetService) CalculateBudget(ctx context.Context, input domain.BudgetInput) (*domain.BudgetResult, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BudgetResult), args.Error(1)
}
func (m *MockBudgetService) GetBudgetHistory(ctx context.Context, email string) ([]domain.BudgetEntry, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BudgetEntry), args.Error(1)
}

var _ portssvc.BudgetSvcFacade = (*MockBudgetService)(nil)
