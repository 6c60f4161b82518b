package services

import (
	"context"

	"github.com/SscSPs/wealthsync_backend/internal/core/domain"
)

// LocationReaderSvc lists the locations covered by the economic data.
// Inputs are case-insensitive; names are returned capitalized and sorted.
type LocationReaderSvc interface {
	ListContinents(ctx context.Context) ([]domain.LocationSummary, error)
	ListCountries(ctx context.Context, continent string) ([]domain.LocationSummary, error)
	ListCities(ctx context.Context, continent, country string) ([]domain.LocationSummary, error)
}

// EconomicProfileSvc resolves the economic figures for a location.
type EconomicProfileSvc interface {
	// ResolveProfile applies city adjustments when city is known. An unknown
	// city is ignored; an unknown continent or country yields apperrors.ErrNotFound.
	ResolveProfile(ctx context.Context, continent, country, city string) (*domain.EconomicProfile, error)
}

// LocationSvcFacade combines all location-related service interfaces
type LocationSvcFacade interface {
	LocationReaderSvc
	EconomicProfileSvc
}
