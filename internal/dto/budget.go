package dto

import (
	"time"

	"github.com/SscSPs/wealthsync_backend/internal/core/domain"
)

// ExpenseCategories is the per-tier expense breakdown. Missing tiers are zero.
type ExpenseCategories struct {
	Physiological     Amount `json:"physiological"`
	Safety            Amount `json:"safety"`
	Social            Amount `json:"social"`
	Esteem            Amount `json:"esteem"`
	SelfActualization Amount `json:"self_actualization"`
}

// CalculateBudgetRequest is the body of POST /budget. Amounts are in Currency.
type CalculateBudgetRequest struct {
	Email             string             `json:"email"`
	Income            *Amount            `json:"income" binding:"required"`
	Expenses          *Amount            `json:"expenses" binding:"required"`
	SavingsGoal       *Amount            `json:"savings_goal" binding:"required"`
	Continent         string             `json:"continent"`
	Country           string             `json:"country"`
	City              string             `json:"city"`
	Currency          string             `json:"currency"`
	ExpenseCategories *ExpenseCategories `json:"expense_categories"`
}

// ExpenseCategoriesResponse echoes the breakdown in the user's currency.
type ExpenseCategoriesResponse struct {
	Physiological     float64 `json:"physiological"`
	Safety            float64 `json:"safety"`
	Social            float64 `json:"social"`
	Esteem            float64 `json:"esteem"`
	SelfActualization float64 `json:"self_actualization"`
}

// BudgetResponse is the evaluated budget.
type BudgetResponse struct {
	Savings            float64                   `json:"savings"`
	AdjustedSavings    float64                   `json:"adjusted_savings"`
	RecommendedSavings float64                   `json:"recommended_savings"`
	Inflation          float64                   `json:"inflation"`
	CostOfLivingIndex  float64                   `json:"cost_of_living_index"`
	Message            string                    `json:"message"`
	Currency           string                    `json:"currency"`
	CurrencySymbol     string                    `json:"currency_symbol"`
	Recommendations    []string                  `json:"recommendations"`
	ExpenseCategories  ExpenseCategoriesResponse `json:"expense_categories"`
}

// BudgetHistoryRequest is the body of POST /budget/history.
type BudgetHistoryRequest struct {
	Email string `json:"email"`
}

// BudgetEntryResponse is one recorded budget.
type BudgetEntryResponse struct {
	ID                 int64     `json:"id"`
	Email              string    `json:"email"`
	Income             float64   `json:"income"`
	Expenses           float64   `json:"expenses"`
	Savings            float64   `json:"savings"`
	SavingsGoal        float64   `json:"savings_goal"`
	RecommendedSavings float64   `json:"recommended_savings"`
	Message            string    `json:"message"`
	Currency           string    `json:"currency"`
	Timestamp          time.Time `json:"timestamp"`
}

// ToBudgetResponse converts a domain.BudgetResult to BudgetResponse DTO
func ToBudgetResponse(r *domain.BudgetResult) BudgetResponse {
	recs := r.Recommendations
	if recs == nil {
		recs = []string{}
	}
	return BudgetResponse{
		Savings:            r.Savings,
		AdjustedSavings:    r.AdjustedSavings,
		RecommendedSavings: r.RecommendedSavings,
		Inflation:          r.Inflation,
		CostOfLivingIndex:  r.CostOfLivingIndex,
		Message:            r.Message,
		Currency:           r.CurrencyCode,
		CurrencySymbol:     r.CurrencySymbol,
		Recommendations:    recs,
		ExpenseCategories: ExpenseCategoriesResponse{
			Physiological:     r.Categories.Physiological,
			Safety:            r.Categories.Safety,
			Social:            r.Categories.Social,
			Esteem:            r.Categories.Esteem,
			SelfActualization: r.Categories.SelfActualization,
		},
	}
}

// ToBudgetEntryResponse converts a domain.BudgetEntry to BudgetEntryResponse DTO
func ToBudgetEntryResponse(e domain.BudgetEntry) BudgetEntryResponse {
	return BudgetEntryResponse{
		ID:                 e.ID,
		Email:              e.Email,
		Income:             e.Income,
		Expenses:           e.Expenses,
		Savings:            e.Savings,
		SavingsGoal:        e.SavingsGoal,
		RecommendedSavings: e.RecommendedSavings,
		Message:            e.Message,
		Currency:           e.CurrencyCode,
		Timestamp:          e.CreatedAt,
	}
}

// ToListBudgetEntryResponse converts budget entries to BudgetEntryResponse DTOs
func ToListBudgetEntryResponse(entries []domain.BudgetEntry) []BudgetEntryResponse {
	res := make([]BudgetEntryResponse, len(entries))
	for i, e := range entries {
		res[i] = ToBudgetEntryResponse(e)
	}
	return res
}
