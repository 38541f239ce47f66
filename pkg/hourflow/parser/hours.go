// Package parser reads personnel hour tables out of xlsx workbooks.
package parser

import (
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// maxExponent bounds the decimal exponent of an hour value. Larger magnitudes
// cost big.Int rescaling on every sum they join and cannot be rendered.
const maxExponent = 30

// ParseHours attempts to parse a cell as a number of hours.
// Blank, non-numeric and out-of-range text report ok=false; that is a soft
// failure, not an error.
func ParseHours(s string) (decimal.Decimal, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, false
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, false
	}
	// Checked before any float conversion, which is itself slow for huge exponents.
	if exp := d.Exponent(); exp > maxExponent || exp < -maxExponent {
		return decimal.Zero, false
	}
	if f := d.InexactFloat64(); math.IsInf(f, 0) || math.IsNaN(f) {
		return decimal.Zero, false
	}
	return d, true
}
