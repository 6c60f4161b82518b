package services

import (
	"fmt"

	"github.com/SscSPs/wealthsync_backend/internal/core/domain"
	"github.com/SscSPs/wealthsync_backend/internal/utils"
)

const (
	// highExpenseRatio flags budgets whose expenses exceed this share of income.
	highExpenseRatio = 0.7
	// Cost-of-living thresholds are exclusive: 45 and 60 get no location note.
	expensiveLocationIndex  = 60
	affordableLocationIndex = 45

	investingSuggestion = "Consider investing in low-risk options like bonds or savings accounts."
)

// RecommendationInput is everything the needs-hierarchy rules look at.
// Amounts are in the user's currency.
type RecommendationInput struct {
	Income            float64
	Expenses          float64
	Savings           float64
	CostOfLivingIndex float64
	Categories        domain.ExpenseCategories
	CurrencySymbol    string
	LocationName      string
}

// BuildRecommendations runs the needs-hierarchy rules in order and returns
// the advisory messages. The order of the messages is part of the API.
func BuildRecommendations(in RecommendationInput) []string {
	money := func(amount float64) string {
		return utils.FormatMoney(in.CurrencySymbol, amount)
	}

	cats := in.Categories
	minimums := make(map[domain.NeedCategory]float64, len(domain.NeedCategories))
	for _, category := range domain.NeedCategories {
		minimums[category] = domain.MinimumFor(category, in.Income)
	}
	below := func(category domain.NeedCategory) bool {
		return cats.Amount(category) < minimums[category]
	}

	var recs []string

	if below(domain.Physiological) {
		recs = append(recs, fmt.Sprintf("Your physiological expenses (%s) are below the recommended minimum (%s). Reallocate funds from higher-level needs (e.g., social, self-actualization) to cover basic needs like food and shelter.",
			money(cats.Physiological), money(minimums[domain.Physiological])))
	}

	// Safety is only checked once physiological needs are met.
	if !below(domain.Physiological) {
		if below(domain.Safety) {
			recs = append(recs, fmt.Sprintf("Your safety expenses (%s) are below the recommended minimum (%s). Ensure you allocate enough for insurance, emergency savings, or financial security.",
				money(cats.Safety), money(minimums[domain.Safety])))
		}
	}

	// Higher-level needs are only checked once both lower tiers are met.
	if !below(domain.Physiological) && !below(domain.Safety) {
		if below(domain.Social) {
			recs = append(recs, fmt.Sprintf("Your social expenses (%s) are below the recommended minimum (%s). Consider allocating more for social activities to improve your relationships and well-being.",
				money(cats.Social), money(minimums[domain.Social])))
		}
		if below(domain.Esteem) {
			recs = append(recs, fmt.Sprintf("Your esteem expenses (%s) are below the recommended minimum (%s). Allocate some funds for education or personal achievements.",
				money(cats.Esteem), money(minimums[domain.Esteem])))
		}
		// Dead branch: the enclosing guard already requires both tiers to be
		// met, so this never fires. Kept as-is until product decides whether
		// it belongs outside the guard.
		if cats.SelfActualization > 0 && (below(domain.Physiological) || below(domain.Safety)) {
			recs = append(recs, fmt.Sprintf("You’re spending %s on self-actualization (e.g., hobbies), but your basic needs aren’t fully met. Reallocate these funds to physiological or safety needs.",
				money(cats.SelfActualization)))
		}
	}

	if in.Expenses > highExpenseRatio*in.Income {
		recs = append(recs, "Your expenses are high. Try cutting down on non-essential spending.")
	}
	if in.Savings < 0 {
		recs = append(recs, "You're spending more than you earn. Create a stricter budget.")
	}

	if in.CostOfLivingIndex > expensiveLocationIndex {
		recs = append(recs, fmt.Sprintf("Living in %s is expensive. Consider finding cheaper alternatives for housing and daily expenses.", in.LocationName))
	} else if in.CostOfLivingIndex < affordableLocationIndex {
		recs = append(recs, fmt.Sprintf("Living in %s is relatively affordable. You can allocate more towards savings or investments.", in.LocationName))
	}

	return append(recs, investingSuggestion)
}
