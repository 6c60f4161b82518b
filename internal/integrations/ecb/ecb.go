// Package ecb reads the European Central Bank's daily reference rates.
package ecb

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/beevik/etree"
	"github.com/shopspring/decimal"
)

// DefaultFeedURL is the ECB daily euro foreign exchange reference rates feed.
const DefaultFeedURL = "https://www.ecb.europa.eu/stats/eurofxref/eurofxref-daily.xml"

const (
	euroCode   = "EUR"
	dollarCode = "USD"
)

// Client fetches the ECB feed.
type Client struct {
	url    string
	client *http.Client
	log    *slog.Logger
}

// NewClient initializes a new ECB client. An empty url uses DefaultFeedURL.
func NewClient(url string, log *slog.Logger) *Client {
	if url == "" {
		url = DefaultFeedURL
	}
	if log == nil {
		log = slog.Default()
	}
	return &Client{
		url: url,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
		log: log,
	}
}

// FetchRates retrieves the latest rates expressed against the US dollar,
// i.e. units of each currency per one dollar.
func (c *Client) FetchRates(ctx context.Context) (map[string]float64, error) {
	body, err := c.sendRequest(ctx)
	if err != nil {
		return nil, err
	}

	snapshot, err := ParseEuroRates(body)
	if err != nil {
		return nil, err
	}

	rates, err := RebaseToDollar(snapshot.Rates)
	if err != nil {
		return nil, err
	}

	c.log.Info("Retrieved ECB reference rates",
		slog.String("date", snapshot.Date),
		slog.Int("currencies", len(rates)))
	return rates, nil
}

func (c *Client) sendRequest(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/xml")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	c.log.Debug("ECB XML response", slog.Int("bytes", len(body)))
	return body, nil
}

// Snapshot is one day of euro reference rates.
type Snapshot struct {
	Date  string
	Rates map[string]decimal.Decimal // units per euro, EUR itself included
}

// ParseEuroRates extracts the currency/rate pairs of an ECB feed document.
func ParseEuroRates(raw []byte) (*Snapshot, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(raw); err != nil {
		return nil, fmt.Errorf("failed to parse XML: %w", err)
	}

	snapshot := &Snapshot{Rates: map[string]decimal.Decimal{euroCode: decimal.NewFromInt(1)}}
	if day := doc.FindElement("//Cube[@time]"); day != nil {
		snapshot.Date = day.SelectAttrValue("time", "")
	}

	cubes := doc.FindElements("//Cube[@currency]")
	if len(cubes) == 0 {
		return nil, fmt.Errorf("no rate data found in XML")
	}

	for _, cube := range cubes {
		code := cube.SelectAttrValue("currency", "")
		rate, err := decimal.NewFromString(cube.SelectAttrValue("rate", ""))
		if err != nil {
			return nil, fmt.Errorf("failed to parse rate for %s: %w", code, err)
		}
		if !rate.IsPositive() {
			return nil, fmt.Errorf("non-positive rate for %s: %s", code, rate)
		}
		snapshot.Rates[code] = rate
	}

	return snapshot, nil
}

// RebaseToDollar converts per-euro rates into per-dollar rates.
func RebaseToDollar(perEuro map[string]decimal.Decimal) (map[string]float64, error) {
	dollarsPerEuro, ok := perEuro[dollarCode]
	if !ok {
		return nil, fmt.Errorf("feed has no %s rate", dollarCode)
	}

	rates := make(map[string]float64, len(perEuro))
	for code, rate := range perEuro {
		rates[code] = rate.DivRound(dollarsPerEuro, 8).InexactFloat64()
	}
	rates[dollarCode] = 1.0
	return rates, nil
}
