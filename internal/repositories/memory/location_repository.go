package memory

import (
	"context"
	"fmt"
	"sort"

	"github.com/SscSPs/wealthsync_backend/internal/apperrors"
	"github.com/SscSPs/wealthsync_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/wealthsync_backend/internal/core/ports/repositories"
)

// LocationRepository serves the economic data table. It is built once and
// never mutated, so it is safe for concurrent use without locking.
type LocationRepository struct {
	continents  []string
	byContinent map[string][]domain.Country
	byKey       map[string]domain.Country // continent|country
}

var _ portsrepo.LocationReader = (*LocationRepository)(nil)

// NewLocationRepository indexes continents by composite key.
func NewLocationRepository(continents []domain.Continent) *LocationRepository {
	r := &LocationRepository{
		byContinent: make(map[string][]domain.Country, len(continents)),
		byKey:       make(map[string]domain.Country),
	}
	for _, continent := range continents {
		r.continents = append(r.continents, continent.Name)
		countries := make([]domain.Country, 0, len(continent.Countries))
		for _, country := range continent.Countries {
			country.Continent = continent.Name
			country.Cities = append([]domain.City(nil), country.Cities...)
			countries = append(countries, country)
			r.byKey[countryKey(continent.Name, country.Name)] = country
		}
		r.byContinent[continent.Name] = countries
	}
	sort.Strings(r.continents)
	return r
}

// NewDefaultLocationRepository serves DefaultEconomicData.
func NewDefaultLocationRepository() *LocationRepository {
	return NewLocationRepository(DefaultEconomicData())
}

func countryKey(continent, country string) string {
	return continent + "|" + country
}

// ListContinents returns every continent key.
func (r *LocationRepository) ListContinents(_ context.Context) ([]string, error) {
	return append([]string(nil), r.continents...), nil
}

// ListCountries returns the countries of continent.
func (r *LocationRepository) ListCountries(_ context.Context, continent string) ([]domain.Country, error) {
	countries, ok := r.byContinent[continent]
	if !ok {
		return nil, fmt.Errorf("continent %q: %w", continent, apperrors.ErrNotFound)
	}
	return append([]domain.Country(nil), countries...), nil
}

// FindCountry returns the country keyed by continent and country.
func (r *LocationRepository) FindCountry(_ context.Context, continent, country string) (*domain.Country, error) {
	c, ok := r.byKey[countryKey(continent, country)]
	if !ok {
		return nil, fmt.Errorf("country %q in continent %q: %w", country, continent, apperrors.ErrNotFound)
	}
	c.Cities = append([]domain.City(nil), c.Cities...)
	return &c, nil
}
