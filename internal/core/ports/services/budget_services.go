package services

import (
	"context"

	"github.com/SscSPs/wealthsync_backend/internal/core/domain"
)

// BudgetCalculatorSvc evaluates a budget and records it in the user's history.
type BudgetCalculatorSvc interface {
	CalculateBudget(ctx context.Context, input domain.BudgetInput) (*domain.BudgetResult, error)
}

// BudgetHistorySvc reads recorded budgets.
type BudgetHistorySvc interface {
	GetBudgetHistory(ctx context.Context, email string) ([]domain.BudgetEntry, error)
}

// BudgetSvcFacade combines all budget-related service interfaces
type BudgetSvcFacade interface {
	BudgetCalculatorSvc
	BudgetHistorySvc
}
