package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMinimumFor(t *testing.T) {
	assert.Equal(t, 400.0, MinimumFor(Physiological, 1000))
	assert.Equal(t, 200.0, MinimumFor(Safety, 1000))
	assert.Equal(t, 100.0, MinimumFor(Social, 1000))
	assert.Equal(t, 50.0, MinimumFor(Esteem, 1000))
	assert.Equal(t, 50.0, MinimumFor(SelfActualization, 1000))
	assert.Equal(t, 0.0, MinimumFor(NeedCategory("unknown"), 1000))
}

func TestMaslowMinimumsCoverEveryCategory(t *testing.T) {
	for _, c := range NeedCategories {
		_, ok := MaslowMinimums[c]
		assert.True(t, ok, "missing minimum for %s", c)
	}
}

func TestExpenseCategories_MapAndAmount(t *testing.T) {
	e := ExpenseCategories{Physiological: 1, Safety: 2, Social: 3, Esteem: 4, SelfActualization: 5}

	doubled := e.Map(func(v float64) float64 { return v * 2 })

	for i, c := range NeedCategories {
		assert.Equal(t, float64(i+1), e.Amount(c))
		assert.Equal(t, float64(2*(i+1)), doubled.Amount(c))
	}
	assert.Equal(t, 0.0, e.Amount(NeedCategory("unknown")))
}
