package utils

import (
	"strconv"
)

// FormatMoney prefixes an amount, rounded to two decimals, with a currency symbol.
// Rounding works on the exact binary value with ties to even, so 2.675
// (stored as 2.67499...) formats as "2.67" and 0.125 as "0.12".
// Example: FormatMoney("€", 1234.5) returns "€1234.50"
func FormatMoney(symbol string, amount float64) string {
	return symbol + strconv.FormatFloat(amount, 'f', 2, 64)
}
