package services

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"strings"

	"github.com/SscSPs/wealthsync_backend/internal/apperrors"
	"github.com/SscSPs/wealthsync_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/wealthsync_backend/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/wealthsync_backend/internal/core/ports/services"
	"github.com/SscSPs/wealthsync_backend/internal/utils"
)

// referenceCostOfLivingIndex is the calibration point for expense projections:
// a location at this index leaves expenses unscaled.
const referenceCostOfLivingIndex = 50.0

const (
	MessageGoalMet    = "Great job! You're meeting your savings goal."
	MessageGoalMissed = "You need to save more to meet your goal. Consider reducing expenses."
)

type budgetService struct {
	BaseService
	historyRepo portsrepo.BudgetHistoryRepositoryFacade
	locations   portssvc.EconomicProfileSvc
	currencies  portssvc.CurrencySvcFacade
}

// NewBudgetService creates the budget calculator. Every calculated budget is
// appended to historyRepo.
func NewBudgetService(
	historyRepo portsrepo.BudgetHistoryRepositoryFacade,
	locations portssvc.EconomicProfileSvc,
	currencies portssvc.CurrencySvcFacade,
) portssvc.BudgetSvcFacade {
	return &budgetService{
		historyRepo: historyRepo,
		locations:   locations,
		currencies:  currencies,
	}
}

var _ portssvc.BudgetSvcFacade = (*budgetService)(nil)

// CalculateBudget evaluates input against its location and records it.
func (s *budgetService) CalculateBudget(ctx context.Context, input domain.BudgetInput) (*domain.BudgetResult, error) {
	profile, err := s.locations.ResolveProfile(ctx, input.Continent, input.Country, input.City)
	if err != nil {
		return nil, err
	}

	// The rate is resolved once so a concurrent feed refresh cannot mix rates
	// within a single calculation.
	currency, err := s.currencies.ResolveCurrency(ctx, input.CurrencyCode)
	if err != nil {
		return nil, err
	}
	toBase := func(v float64) float64 { return s.currencies.ToBase(v, currency) }
	fromBase := func(v float64) float64 { return s.currencies.FromBase(v, currency) }

	incomeBase := toBase(input.Income)
	expensesBase := toBase(input.Expenses)
	savingsGoalBase := toBase(input.SavingsGoal)

	savingsBase := incomeBase - expensesBase
	recommendedSavingsBase := savingsGoalBase * (1 + profile.Inflation/100)
	expenseRatio := profile.CostOfLivingIndex / referenceCostOfLivingIndex
	adjustedSavingsBase := incomeBase - expensesBase*expenseRatio

	savings := fromBase(savingsBase)
	adjustedSavings := fromBase(adjustedSavingsBase)
	recommendedSavings := fromBase(recommendedSavingsBase)
	categories := input.Categories.Map(toBase).Map(fromBase)

	// Non-finite amounts cannot be encoded as JSON, so they are rejected
	// before anything is recorded.
	if !allFinite(input.Income, input.Expenses, input.SavingsGoal, savings, adjustedSavings, recommendedSavings) ||
		!categoriesFinite(categories) {
		s.LogDebug(ctx, "Budget amounts out of range", slog.String("country", profile.Country))
		return nil, fmt.Errorf("budget amounts out of range: %w", apperrors.ErrValidation)
	}

	message := MessageGoalMissed
	if savings >= input.SavingsGoal {
		message = MessageGoalMet
	}

	// The note names the requested city even when it was not in the table.
	locationName := utils.Capitalize(strings.ToLower(input.Country))
	if input.City != "" {
		locationName = utils.Capitalize(strings.ToLower(input.City))
	}

	result := &domain.BudgetResult{
		Savings:            savings,
		AdjustedSavings:    adjustedSavings,
		RecommendedSavings: recommendedSavings,
		Inflation:          profile.Inflation,
		CostOfLivingIndex:  profile.CostOfLivingIndex,
		Message:            message,
		CurrencyCode:       currency.CurrencyCode,
		CurrencySymbol:     currency.Symbol,
		Categories:         categories,
		Recommendations: BuildRecommendations(RecommendationInput{
			Income:            input.Income,
			Expenses:          input.Expenses,
			Savings:           savings,
			CostOfLivingIndex: profile.CostOfLivingIndex,
			Categories:        categories,
			CurrencySymbol:    currency.Symbol,
			LocationName:      locationName,
		}),
	}

	entry, err := s.historyRepo.AppendEntry(ctx, domain.BudgetEntry{
		Email:              input.Email,
		Income:             input.Income,
		Expenses:           input.Expenses,
		Savings:            result.Savings,
		SavingsGoal:        input.SavingsGoal,
		RecommendedSavings: result.RecommendedSavings,
		Message:            result.Message,
		CurrencyCode:       result.CurrencyCode,
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to record budget entry", slog.String("country", profile.Country))
		return nil, fmt.Errorf("failed to record budget: %w", err)
	}

	s.LogInfo(ctx, "Budget calculated",
		slog.Int64("entry_id", entry.ID),
		slog.String("country", profile.Country),
		slog.String("currency_code", currency.CurrencyCode),
		slog.Int("recommendations", len(result.Recommendations)),
	)
	return result, nil
}

func allFinite(values ...float64) bool {
	for _, v := range values {
		if math.IsInf(v, 0) || math.IsNaN(v) {
			return false
		}
	}
	return true
}

func categoriesFinite(categories domain.ExpenseCategories) bool {
	for _, category := range domain.NeedCategories {
		if !allFinite(categories.Amount(category)) {
			return false
		}
	}
	return true
}

// GetBudgetHistory returns the budgets recorded for email in insertion order.
func (s *budgetService) GetBudgetHistory(ctx context.Context, email string) ([]domain.BudgetEntry, error) {
	entries, err := s.historyRepo.ListEntriesByEmail(ctx, email)
	if err != nil {
		s.LogError(ctx, err, "Failed to list budget history")
		return nil, fmt.Errorf("failed to get budget history: %w", err)
	}
	if entries == nil {
		return []domain.BudgetEntry{}, nil
	}
	return entries, nil
}
