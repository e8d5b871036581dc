// Package core holds the ledger's domain types and money helpers.
//
// All user-facing amounts follow a single rounding policy: two decimal
// places, round half away from zero. Summary arithmetic and interest
// results are sensitive to the choice at the cent boundary, so every
// path that rounds goes through this file.
package core

import (
	"math"
	"strconv"

	"github.com/shopspring/decimal"
)

// Round2 rounds v to two decimal places, half away from zero.
// NaN and infinities pass through unchanged.
//
// Examples:
//
//	Round2(1051.1618) -> 1051.16
//	Round2(2.005)     -> 2.01
func Round2(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}
	f, _ := decimal.NewFromFloat(v).Round(2).Float64()
	return f
}

// FormatAmount renders v with exactly two decimals, using the same
// rounding policy as Round2. Used for all amount display.
func FormatAmount(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	return decimal.NewFromFloat(v).StringFixed(2)
}
