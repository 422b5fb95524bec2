package domain

import (
	"math"
	"regexp"
	"strings"
	"time"
)

var symbolPattern = regexp.MustCompile(`^[A-Z0-9]{2,10}$`)

// AssetPrice is the shared, user-independent price of a symbol in the
// reference currency. Upserts overwrite price and timestamp; there is no
// price history.
type AssetPrice struct {
	Symbol    string    `json:"symbol"`
	PriceEUR  float64   `json:"price_eur"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NormalizeSymbol trims and uppercases a symbol before validation.
func NormalizeSymbol(symbol string) string {
	return strings.ToUpper(strings.TrimSpace(symbol))
}

// ValidSymbol reports whether a normalised symbol matches [A-Z0-9]{2,10}.
func ValidSymbol(symbol string) bool {
	return symbolPattern.MatchString(symbol)
}

// ValidPrice reports whether price is a finite, non-negative number.
func ValidPrice(price float64) bool {
	return !math.IsNaN(price) && !math.IsInf(price, 0) && price >= 0
}

// ValidQuantity reports whether quantity is a finite number strictly
// greater than zero. Zero is rejected, never treated as a delete.
func ValidQuantity(quantity float64) bool {
	return !math.IsNaN(quantity) && !math.IsInf(quantity, 0) && quantity > 0
}
