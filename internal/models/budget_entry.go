package models

import "time"

// BudgetEntry mirrors a row of the budget_entries table.
type BudgetEntry struct {
	ID                 int64     `db:"id"`
	Email              string    `db:"email"`
	Income             float64   `db:"income"`
	Expenses           float64   `db:"expenses"`
	Savings            float64   `db:"savings"`
	SavingsGoal        float64   `db:"savings_goal"`
	RecommendedSavings float64   `db:"recommended_savings"`
	Message            string    `db:"message"`
	CurrencyCode       string    `db:"currency_code"`
	CreatedAt          time.Time `db:"created_at"`
}
