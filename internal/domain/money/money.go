// Package money holds the single rounding and parsing policy shared by the
// live draft display and the submitted offer payload.
package money

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Places is the number of decimal places every displayed or submitted amount
// is rounded to.
const Places = 2

// Round rounds half away from zero to Places.
func Round(d decimal.Decimal) decimal.Decimal {
	return d.Round(Places)
}

// Parse reads a user-entered amount. Surrounding whitespace is ignored; an
// empty or malformed string reports ok == false.
func Parse(raw string) (decimal.Decimal, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return decimal.Zero, false
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}

// ParseNonNegative is Parse that also rejects negative values.
func ParseNonNegative(raw string) (decimal.Decimal, bool) {
	d, ok := Parse(raw)
	if !ok || d.IsNegative() {
		return decimal.Zero, false
	}
	return d, true
}

// Format renders at least Places decimals, keeping extra precision the
// supplier typed (10.5 -> "10.50", 10.555 -> "10.555").
func Format(d decimal.Decimal) string {
	if d.Equal(Round(d)) {
		return d.StringFixed(Places)
	}
	return d.String()
}

// WithinTolerance reports |a-b| <= tol.
func WithinTolerance(a, b, tol decimal.Decimal) bool {
	return a.Sub(b).Abs().LessThanOrEqual(tol)
}
