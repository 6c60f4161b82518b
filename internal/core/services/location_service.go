package services

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/SscSPs/wealthsync_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/wealthsync_backend/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/wealthsync_backend/internal/core/ports/services"
	"github.com/SscSPs/wealthsync_backend/internal/utils"
)

type locationService struct {
	BaseService
	locationRepo portsrepo.LocationReader
}

// NewLocationService creates a location service over the economic data table.
func NewLocationService(repo portsrepo.LocationReader) portssvc.LocationSvcFacade {
	return &locationService{locationRepo: repo}
}

var _ portssvc.LocationSvcFacade = (*locationService)(nil)

// locationKey normalizes user input to the table's lower-case keys.
func locationKey(s string) string {
	return strings.ToLower(s)
}

func sortSummaries(list []domain.LocationSummary) {
	sort.Slice(list, func(i, j int) bool { return list[i].Name < list[j].Name })
}

func (s *locationService) ListContinents(ctx context.Context) ([]domain.LocationSummary, error) {
	keys, err := s.locationRepo.ListContinents(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list continents: %w", err)
	}

	list := make([]domain.LocationSummary, 0, len(keys))
	for _, k := range keys {
		list = append(list, domain.LocationSummary{Name: utils.Capitalize(k)})
	}
	sortSummaries(list)
	return list, nil
}

func (s *locationService) ListCountries(ctx context.Context, continent string) ([]domain.LocationSummary, error) {
	countries, err := s.locationRepo.ListCountries(ctx, locationKey(continent))
	if err != nil {
		return nil, fmt.Errorf("failed to list countries: %w", err)
	}

	list := make([]domain.LocationSummary, 0, len(countries))
	for _, c := range countries {
		list = append(list, domain.LocationSummary{Name: utils.Capitalize(c.Name), CurrencyCode: c.CurrencyCode})
	}
	sortSummaries(list)
	return list, nil
}

func (s *locationService) ListCities(ctx context.Context, continent, country string) ([]domain.LocationSummary, error) {
	c, err := s.locationRepo.FindCountry(ctx, locationKey(continent), locationKey(country))
	if err != nil {
		return nil, fmt.Errorf("failed to list cities: %w", err)
	}

	list := make([]domain.LocationSummary, 0, len(c.Cities))
	for _, city := range c.Cities {
		list = append(list, domain.LocationSummary{Name: utils.Capitalize(city.Name)})
	}
	sortSummaries(list)
	return list, nil
}

func (s *locationService) ResolveProfile(ctx context.Context, continent, country, city string) (*domain.EconomicProfile, error) {
	c, err := s.locationRepo.FindCountry(ctx, locationKey(continent), locationKey(country))
	if err != nil {
		return nil, fmt.Errorf("failed to resolve location: %w", err)
	}

	profile := &domain.EconomicProfile{
		Continent:         c.Continent,
		Country:           c.Name,
		Inflation:         c.Inflation,
		CostOfLivingIndex: c.CostOfLivingIndex,
		CurrencyCode:      c.CurrencyCode,
	}

	// An unknown city falls back to country-level figures.
	if city != "" {
		if adj, ok := c.FindCity(locationKey(city)); ok {
			profile.City = adj.Name
			profile.Inflation *= adj.InflationAdjustment
			profile.CostOfLivingIndex *= adj.CostOfLivingAdjustment
		} else {
			s.LogDebug(ctx, "City not found, using country figures",
				slog.String("country", c.Name), slog.String("city", city))
		}
	}

	return profile, nil
}
