package mapping

import (
	"testing"
	"time"

	"github.com/SscSPs/wealthsync_backend/internal/core/domain"
	"github.com/SscSPs/wealthsync_backend/internal/dto"
	"github.com/stretchr/testify/assert"
)

func amountPtr(v float64) *dto.Amount {
	a := dto.Amount(v)
	return &a
}

func TestToDomainBudgetInput(t *testing.T) {
	req := dto.CalculateBudgetRequest{
		Email:       "user@example.com",
		Income:      amountPtr(3000),
		Expenses:    amountPtr(1500),
		SavingsGoal: amountPtr(500),
		Continent:   "Europe",
		Country:     "France",
		City:        "Paris",
		Currency:    "eur",
		ExpenseCategories: &dto.ExpenseCategories{
			Physiological: 1200,
			Esteem:        150,
		},
	}

	got := ToDomainBudgetInput(req)

	assert.Equal(t, domain.BudgetInput{
		Email:        "user@example.com",
		Income:       3000,
		Expenses:     1500,
		SavingsGoal:  500,
		Continent:    "Europe",
		Country:      "France",
		City:         "Paris",
		CurrencyCode: "EUR",
		Categories:   domain.ExpenseCategories{Physiological: 1200, Esteem: 150},
	}, got)
}

func TestToDomainBudgetInput_Defaults(t *testing.T) {
	got := ToDomainBudgetInput(dto.CalculateBudgetRequest{
		Income:      amountPtr(1000),
		Expenses:    amountPtr(1000),
		SavingsGoal: amountPtr(100),
	})

	assert.Equal(t, domain.BaseCurrencyCode, got.CurrencyCode)
	assert.Equal(t, domain.ExpenseCategories{}, got.Categories)
}

func TestBudgetEntryModelMapping(t *testing.T) {
	created := time.Date(2025, 6, 1, 12, 30, 0, 0, time.UTC)
	entry := domain.BudgetEntry{
		ID:                 7,
		Email:              "user@example.com",
		Income:             1000,
		Expenses:           800,
		Savings:            200,
		SavingsGoal:        100,
		RecommendedSavings: 103.2,
		Message:            "Great job! You're meeting your savings goal.",
		CurrencyCode:       "USD",
		CreatedAt:          created,
	}

	assert.Equal(t, entry, ToDomainBudgetEntry(ToModelBudgetEntry(entry)))
}
