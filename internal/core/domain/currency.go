package domain

// BaseCurrencyCode is the currency all budget arithmetic is carried out in.
const BaseCurrencyCode = "USD"

// DefaultExchangeRate is used for currency codes missing from the rate table,
// which treats them as already being in the base currency.
const DefaultExchangeRate = 1.0

// Currency represents a supported currency in the domain.
type Currency struct {
	CurrencyCode string  // e.g. "EUR"
	Symbol       string  // e.g. "€"
	Name         string  // e.g. "Euro"
	Rate         float64 // units of this currency per one unit of the base currency
}
