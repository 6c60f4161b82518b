package domain

import "time"

// BudgetInput is a budget submitted by a user. Amounts are in CurrencyCode.
type BudgetInput struct {
	Email        string
	Income       float64
	Expenses     float64
	SavingsGoal  float64
	Continent    string
	Country      string
	City         string
	CurrencyCode string
	Categories   ExpenseCategories
}

// BudgetResult is the evaluated budget. Amounts are in CurrencyCode.
type BudgetResult struct {
	Savings            float64
	AdjustedSavings    float64
	RecommendedSavings float64
	Inflation          float64
	CostOfLivingIndex  float64
	Message            string
	CurrencyCode       string
	CurrencySymbol     string
	Recommendations    []string
	Categories         ExpenseCategories
}

// BudgetEntry is one recorded budget in a user's history. Entries are
// immutable once stored.
type BudgetEntry struct {
	ID                 int64
	Email              string
	Income             float64
	Expenses           float64
	Savings            float64
	SavingsGoal        float64
	RecommendedSavings float64
	Message            string
	CurrencyCode       string
	CreatedAt          time.Time
}
