package dto

import "github.com/SscSPs/wealthsync_backend/internal/core/domain"

// LocationResponse is a continent or city.
type LocationResponse struct {
	Name string `json:"name"`
}

// CountryResponse is a country with its local currency.
type CountryResponse struct {
	Name     string `json:"name"`
	Currency string `json:"currency"`
}

// ToListLocationResponse converts location summaries into LocationResponse DTOs
func ToListLocationResponse(list []domain.LocationSummary) []LocationResponse {
	res := make([]LocationResponse, len(list))
	for i, l := range list {
		res[i] = LocationResponse{Name: l.Name}
	}
	return res
}

// ToListCountryResponse converts location summaries into CountryResponse DTOs
func ToListCountryResponse(list []domain.LocationSummary) []CountryResponse {
	res := make([]CountryResponse, len(list))
	for i, l := range list {
		res[i] = CountryResponse{Name: l.Name, Currency: l.CurrencyCode}
	}
	return res
}
