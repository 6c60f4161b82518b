package domain

// NeedCategory is one tier of the needs hierarchy used to floor-check spending.
type NeedCategory string

const (
	Physiological     NeedCategory = "physiological"
	Safety            NeedCategory = "safety"
	Social            NeedCategory = "social"
	Esteem            NeedCategory = "esteem"
	SelfActualization NeedCategory = "self_actualization"
)

// NeedCategories lists the tiers from the most basic upwards.
var NeedCategories = []NeedCategory{Physiological, Safety, Social, Esteem, SelfActualization}

// MaslowMinimums holds the minimum recommended share of income per tier.
// The floors are independent and do not sum to 1.
var MaslowMinimums = map[NeedCategory]float64{
	Physiological:     0.40,
	Safety:            0.20,
	Social:            0.10,
	Esteem:            0.05,
	SelfActualization: 0.05,
}

// MinimumFor returns the recommended minimum spend for category given income.
func MinimumFor(category NeedCategory, income float64) float64 {
	return MaslowMinimums[category] * income
}

// ExpenseCategories breaks expenses down by need tier.
type ExpenseCategories struct {
	Physiological     float64
	Safety            float64
	Social            float64
	Esteem            float64
	SelfActualization float64
}

// Map applies fn to every tier amount.
func (e ExpenseCategories) Map(fn func(float64) float64) ExpenseCategories {
	return ExpenseCategories{
		Physiological:     fn(e.Physiological),
		Safety:            fn(e.Safety),
		Social:            fn(e.Social),
		Esteem:            fn(e.Esteem),
		SelfActualization: fn(e.SelfActualization),
	}
}

// Amount returns the amount recorded for category.
func (e ExpenseCategories) Amount(category NeedCategory) float64 {
	switch category {
	case Physiological:
		return e.Physiological
	case Safety:
		return e.Safety
	case Social:
		return e.Social
	case Esteem:
		return e.Esteem
	case SelfActualization:
		return e.SelfActualization
	default:
		return 0
	}
}
