// Package interest provides the two closed-form interest calculators.
// Both are pure functions with no dependency on the transaction store.
package interest

import (
	"fmt"
	"math"

	"fintrack/internal/core"
)

// Simple computes the simple-interest amount A = P(1 + rt), where the
// rate is given in percent. The result is rounded to two decimals,
// half away from zero.
//
// Negative or zero principal, rate, and time are not rejected; they
// propagate through the formula arithmetically.
func Simple(principal, ratePercent, years float64) float64 {
	return core.Round2(principal * (1 + (ratePercent/100)*years))
}

// Compound computes the compound-interest amount A = P(1 + r/n)^(nt)
// with n compounding periods per year, rounded like Simple.
//
// perYear must not be zero; that would divide by zero inside the
// formula, so it is rejected up front with ErrInvalidArgument. Other
// degenerate inputs pass through: a negative base with a fractional
// exponent yields NaN, which is returned as computed.
func Compound(principal, ratePercent, years float64, perYear int) (float64, error) {
	if perYear == 0 {
		return 0, fmt.Errorf("%w: compounding periods per year must not be zero", core.ErrInvalidArgument)
	}
	n := float64(perYear)
	amount := principal * math.Pow(1+(ratePercent/100)/n, n*years)
	return core.Round2(amount), nil
}
