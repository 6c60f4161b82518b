package domain

// City scales its country's base figures. Both factors are multiplicative.
type City struct {
	Name                   string
	InflationAdjustment    float64
	CostOfLivingAdjustment float64
}

// Country holds the base economic figures for a country. Names are the
// lower-case lookup keys; display names are derived from them.
type Country struct {
	Name              string
	Continent         string
	Inflation         float64 // percent per year
	CostOfLivingIndex float64
	CurrencyCode      string
	Cities            []City
}

// FindCity returns the city with the given lower-case key.
func (c Country) FindCity(name string) (City, bool) {
	for _, city := range c.Cities {
		if city.Name == name {
			return city, true
		}
	}
	return City{}, false
}

// Continent groups the countries covered by the economic data table.
type Continent struct {
	Name      string
	Countries []Country
}

// EconomicProfile is the location-adjusted economic data a budget is evaluated against.
type EconomicProfile struct {
	Continent         string
	Country           string
	City              string // empty unless a known city was matched
	Inflation         float64
	CostOfLivingIndex float64
	CurrencyCode      string
}


// LocationSummary is the display form of a continent, country or city.
// CurrencyCode is only set for countries.
type LocationSummary struct {
	Name         string
	CurrencyCode string
}
