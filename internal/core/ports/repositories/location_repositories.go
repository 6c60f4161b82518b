package repositories

import (
	"context"

	"github.com/SscSPs/wealthsync_backend/internal/core/domain"
)

// LocationReader defines read operations over the economic data table.
// All keys are lower-case.
type LocationReader interface {
	// ListContinents returns the keys of every known continent.
	ListContinents(ctx context.Context) ([]string, error)

	// ListCountries returns the countries of a continent, or apperrors.ErrNotFound.
	ListCountries(ctx context.Context, continent string) ([]domain.Country, error)

	// FindCountry returns a country with its cities, or apperrors.ErrNotFound
	// when either the continent or the country is unknown.
	FindCountry(ctx context.Context, continent, country string) (*domain.Country, error)
}
