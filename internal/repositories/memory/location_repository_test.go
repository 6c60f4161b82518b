package memory_test

import (
	"context"
	"testing"

	"github.com/SscSPs/wealthsync_backend/internal/apperrors"
	"github.com/SscSPs/wealthsync_backend/internal/repositories/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocationRepository_ListContinents(t *testing.T) {
	repo := memory.NewDefaultLocationRepository()

	continents, err := repo.ListContinents(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []string{"africa", "asia", "europe", "north america", "oceania", "south america"}, continents)
}

func TestLocationRepository_ListCountries(t *testing.T) {
	repo := memory.NewDefaultLocationRepository()

	countries, err := repo.ListCountries(context.Background(), "europe")

	require.NoError(t, err)
	require.Len(t, countries, 2)
	names := []string{countries[0].Name, countries[1].Name}
	assert.ElementsMatch(t, []string{"france", "united kingdom"}, names)
	for _, c := range countries {
		assert.Equal(t, "europe", c.Continent)
	}
}

func TestLocationRepository_ListCountries_UnknownContinent(t *testing.T) {
	repo := memory.NewDefaultLocationRepository()

	_, err := repo.ListCountries(context.Background(), "atlantis")

	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestLocationRepository_FindCountry(t *testing.T) {
	repo := memory.NewDefaultLocationRepository()

	country, err := repo.FindCountry(context.Background(), "north america", "united states")

	require.NoError(t, err)
	assert.Equal(t, 3.2, country.Inflation)
	assert.Equal(t, 70.0, country.CostOfLivingIndex)
	assert.Equal(t, "USD", country.CurrencyCode)
	city, ok := country.FindCity("new york")
	require.True(t, ok)
	assert.Equal(t, 1.5, city.CostOfLivingAdjustment)
}

func TestLocationRepository_FindCountry_WrongContinent(t *testing.T) {
	repo := memory.NewDefaultLocationRepository()

	_, err := repo.FindCountry(context.Background(), "europe", "united states")

	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestLocationRepository_ReturnsCopies(t *testing.T) {
	repo := memory.NewDefaultLocationRepository()
	ctx := context.Background()

	country, err := repo.FindCountry(ctx, "asia", "japan")
	require.NoError(t, err)
	country.Cities[0].CostOfLivingAdjustment = 99
	country.Inflation = 99

	again, err := repo.FindCountry(ctx, "asia", "japan")
	require.NoError(t, err)
	assert.Equal(t, 2.5, again.Inflation)
	assert.NotEqual(t, 99.0, again.Cities[0].CostOfLivingAdjustment)
}
