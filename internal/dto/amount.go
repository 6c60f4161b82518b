package dto

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Amount is a monetary input that accepts a JSON number or a numeric string,
// so both 1200.5 and "1200.5" bind. Infinities and NaN are rejected.
type Amount float64

// UnmarshalJSON implements json.Unmarshaler.
func (a *Amount) UnmarshalJSON(data []byte) error {
	raw := strings.TrimSpace(string(data))
	if raw == "null" {
		return nil
	}
	if strings.HasPrefix(raw, `"`) {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("invalid amount %s: %w", raw, err)
		}
		raw = strings.TrimSpace(s)
	}

	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return fmt.Errorf("invalid amount %s: %w", string(data), err)
	}
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return fmt.Errorf("invalid amount %s: must be a finite number", string(data))
	}
	*a = Amount(v)
	return nil
}

// Float64 returns the amount, treating a nil pointer as zero.
func (a *Amount) Float64() float64 {
	if a == nil {
		return 0
	}
	return float64(*a)
}
