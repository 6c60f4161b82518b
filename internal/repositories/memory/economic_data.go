package memory

import "github.com/SscSPs/wealthsync_backend/internal/core/domain"

// DefaultEconomicData returns the built-in continent → country → city table.
// Keys are lower-case.
func DefaultEconomicData() []domain.Continent {
	return []domain.Continent{
		{
			Name: "africa",
			Countries: []domain.Country{
				{
					Name: "nigeria", Inflation: 12.0, CostOfLivingIndex: 25, CurrencyCode: "NGN",
					Cities: []domain.City{
						{Name: "lagos", InflationAdjustment: 1.2, CostOfLivingAdjustment: 1.3},
						{Name: "abuja", InflationAdjustment: 1.1, CostOfLivingAdjustment: 1.2},
					},
				},
				{
					Name: "south africa", Inflation: 5.8, CostOfLivingIndex: 38, CurrencyCode: "ZAR",
					Cities: []domain.City{
						{Name: "johannesburg", InflationAdjustment: 1.1, CostOfLivingAdjustment: 1.2},
						{Name: "cape town", InflationAdjustment: 1.0, CostOfLivingAdjustment: 1.1},
					},
				},
			},
		},
		{
			Name: "asia",
			Countries: []domain.Country{
				{
					Name: "india", Inflation: 5.0, CostOfLivingIndex: 30, CurrencyCode: "INR",
					Cities: []domain.City{
						{Name: "mumbai", InflationAdjustment: 1.2, CostOfLivingAdjustment: 1.3},
						{Name: "delhi", InflationAdjustment: 1.1, CostOfLivingAdjustment: 1.2},
						{Name: "bangalore", InflationAdjustment: 1.0, CostOfLivingAdjustment: 1.4},
					},
				},
				{
					Name: "japan", Inflation: 2.5, CostOfLivingIndex: 75, CurrencyCode: "JPY",
					Cities: []domain.City{
						{Name: "tokyo", InflationAdjustment: 1.3, CostOfLivingAdjustment: 1.4},
						{Name: "osaka", InflationAdjustment: 1.1, CostOfLivingAdjustment: 1.2},
					},
				},
			},
		},
		{
			Name: "europe",
			Countries: []domain.Country{
				{
					Name: "france", Inflation: 3.0, CostOfLivingIndex: 63, CurrencyCode: "EUR",
					Cities: []domain.City{
						{Name: "paris", InflationAdjustment: 1.2, CostOfLivingAdjustment: 1.3},
						{Name: "lyon", InflationAdjustment: 1.0, CostOfLivingAdjustment: 1.1},
					},
				},
				{
					Name: "united kingdom", Inflation: 4.0, CostOfLivingIndex: 65, CurrencyCode: "GBP",
					Cities: []domain.City{
						{Name: "london", InflationAdjustment: 1.3, CostOfLivingAdjustment: 1.4},
						{Name: "manchester", InflationAdjustment: 1.1, CostOfLivingAdjustment: 1.2},
					},
				},
			},
		},
		{
			Name: "north america",
			Countries: []domain.Country{
				{
					Name: "united states", Inflation: 3.2, CostOfLivingIndex: 70, CurrencyCode: "USD",
					Cities: []domain.City{
						{Name: "new york", InflationAdjustment: 1.3, CostOfLivingAdjustment: 1.5},
						{Name: "los angeles", InflationAdjustment: 1.2, CostOfLivingAdjustment: 1.3},
					},
				},
				{
					Name: "canada", Inflation: 3.5, CostOfLivingIndex: 62, CurrencyCode: "CAD",
					Cities: []domain.City{
						{Name: "toronto", InflationAdjustment: 1.2, CostOfLivingAdjustment: 1.3},
						{Name: "vancouver", InflationAdjustment: 1.1, CostOfLivingAdjustment: 1.2},
					},
				},
			},
		},
		{
			Name: "south america",
			Countries: []domain.Country{
				{
					Name: "brazil", Inflation: 6.5, CostOfLivingIndex: 45, CurrencyCode: "BRL",
					Cities: []domain.City{
						{Name: "sao paulo", InflationAdjustment: 1.2, CostOfLivingAdjustment: 1.3},
						{Name: "rio de janeiro", InflationAdjustment: 1.1, CostOfLivingAdjustment: 1.2},
					},
				},
			},
		},
		{
			Name: "oceania",
			Countries: []domain.Country{
				{
					Name: "australia", Inflation: 3.8, CostOfLivingIndex: 68, CurrencyCode: "AUD",
					Cities: []domain.City{
						{Name: "sydney", InflationAdjustment: 1.2, CostOfLivingAdjustment: 1.3},
						{Name: "melbourne", InflationAdjustment: 1.1, CostOfLivingAdjustment: 1.2},
					},
				},
			},
		},
	}
}

// DefaultCurrencies returns the built-in currency table. Rates are units of
// the currency per US dollar.
func DefaultCurrencies() []domain.Currency {
	return []domain.Currency{
		{CurrencyCode: "USD", Symbol: "$", Name: "US Dollar", Rate: 1.0},
		{CurrencyCode: "EUR", Symbol: "€", Name: "Euro", Rate: 0.93},
		{CurrencyCode: "GBP", Symbol: "£", Name: "British Pound", Rate: 0.78},
		{CurrencyCode: "CAD", Symbol: "C$", Name: "Canadian Dollar", Rate: 1.38},
		{CurrencyCode: "AUD", Symbol: "A$", Name: "Australian Dollar", Rate: 1.50},
		{CurrencyCode: "JPY", Symbol: "¥", Name: "Japanese Yen", Rate: 150.0},
		{CurrencyCode: "INR", Symbol: "₹", Name: "Indian Rupee", Rate: 85.0},
		{CurrencyCode: "BRL", Symbol: "R$", Name: "Brazilian Real", Rate: 5.60},
		{CurrencyCode: "ZAR", Symbol: "R", Name: "South African Rand", Rate: 18.0},
		{CurrencyCode: "NGN", Symbol: "₦", Name: "Nigerian Naira", Rate: 1600.0},
	}
}
