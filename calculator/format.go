package calculator

import (
	"strconv"

	"github.com/shopspring/decimal"
)

// RoundCents rounds half away from zero to two decimal places. Non-finite
// values are returned unchanged.
func RoundCents(v float64) float64 {
	if !isFinite(v) {
		return v
	}
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}

// FormatAmount renders v with exactly two decimal places, e.g. "1672.88".
func FormatAmount(v float64) string {
	if !isFinite(v) {
		return strconv.FormatFloat(v, 'f', 2, 64)
	}
	return decimal.NewFromFloat(v).StringFixed(2)
}
