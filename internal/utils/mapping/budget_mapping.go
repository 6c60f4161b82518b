package mapping

import (
	"strings"

	"github.com/SscSPs/wealthsync_backend/internal/core/domain"
	"github.com/SscSPs/wealthsync_backend/internal/dto"
	"github.com/SscSPs/wealthsync_backend/internal/models"
)

// ToDomainBudgetInput converts a bound request into a domain.BudgetInput.
// The currency defaults to the base currency when omitted.
func ToDomainBudgetInput(req dto.CalculateBudgetRequest) domain.BudgetInput {
	currency := strings.ToUpper(req.Currency)
	if currency == "" {
		currency = domain.BaseCurrencyCode
	}

	input := domain.BudgetInput{
		Email:        req.Email,
		Income:       req.Income.Float64(),
		Expenses:     req.Expenses.Float64(),
		SavingsGoal:  req.SavingsGoal.Float64(),
		Continent:    req.Continent,
		Country:      req.Country,
		City:         req.City,
		CurrencyCode: currency,
	}
	if c := req.ExpenseCategories; c != nil {
		input.Categories = domain.ExpenseCategories{
			Physiological:     float64(c.Physiological),
			Safety:            float64(c.Safety),
			Social:            float64(c.Social),
			Esteem:            float64(c.Esteem),
			SelfActualization: float64(c.SelfActualization),
		}
	}
	return input
}

// ToModelBudgetEntry converts a domain BudgetEntry to a model BudgetEntry
func ToModelBudgetEntry(d domain.BudgetEntry) models.BudgetEntry {
	return models.BudgetEntry{
		ID:                 d.ID,
		Email:              d.Email,
		Income:             d.Income,
		Expenses:           d.Expenses,
		Savings:            d.Savings,
		SavingsGoal:        d.SavingsGoal,
		RecommendedSavings: d.RecommendedSavings,
		Message:            d.Message,
		CurrencyCode:       d.CurrencyCode,
		CreatedAt:          d.CreatedAt,
	}
}

// ToDomainBudgetEntry converts a model BudgetEntry to a domain BudgetEntry
func ToDomainBudgetEntry(m models.BudgetEntry) domain.BudgetEntry {
	return domain.BudgetEntry{
		ID:                 m.ID,
		Email:              m.Email,
		Income:             m.Income,
		Expenses:           m.Expenses,
		Savings:            m.Savings,
		SavingsGoal:        m.SavingsGoal,
		RecommendedSavings: m.RecommendedSavings,
		Message:            m.Message,
		CurrencyCode:       m.CurrencyCode,
		CreatedAt:          m.CreatedAt.UTC(),
	}
}

// ToDomainBudgetEntrySlice converts model entries to domain entries
func ToDomainBudgetEntrySlice(ms []models.BudgetEntry) []domain.BudgetEntry {
	ds := make([]domain.BudgetEntry, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainBudgetEntry(m)
	}
	return ds
}
