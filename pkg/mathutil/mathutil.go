// Package mathutil provides common mathematical utility functions.
package mathutil

import (
	"math"
)

// IsFinite reports whether val is neither NaN nor an infinity.
func IsFinite(val float64) bool {
	return !math.IsNaN(val) && !math.IsInf(val, 0)
}

// IsIntegral reports whether a finite value has no fractional part.
func IsIntegral(val float64) bool {
	return IsFinite(val) && val == math.Trunc(val)
}

// WithinTolerance checks if two values are within a specified tolerance
func WithinTolerance(val1, val2, tolerance float64) bool {
	return math.Abs(val1-val2) <= tolerance
}

// FloorDiv returns floor(value / unit) and the remainder left after
// subtracting that many units. unit must be positive; the remainder is then
// never negative.
func FloorDiv(value, unit int64) (int64, int64) {
	q, r := value/unit, value%unit
	if r < 0 {
		q--
		r += unit
	}
	return q, r
}
