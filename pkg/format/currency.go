package format

import (
	"math"

	"github.com/iwvelando/perspective-retraites/pkg/mathutil"
)

// maxCurrency bounds the values Currency renders digit by digit; larger
// magnitudes fall back to the scaled "milliards" notation.
const maxCurrency = 1e18

// Currency returns a euro amount rounded to the unit with French grouping,
// e.g. 420000000000 -> "420 000 000 000 €" (separators are U+00A0).
func Currency(amount float64) string {
	if math.IsNaN(amount) {
		return "NaN" + NBSP + "€"
	}
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	if amount >= maxCurrency || math.IsInf(amount, 0) {
		return sign + scaled(amount/1e9, "milliard", "milliards") + NBSP + "€"
	}
	return sign + Integer(int64(math.Round(amount))) + NBSP + "€"
}

// Grouped renders a whole amount with French grouping and no currency
// symbol, the way amount fields are pre-filled ("565 000").
func Grouped(amount float64) string {
	if amount < 0 {
		return "-" + Grouped(-amount)
	}
	if amount >= maxCurrency || !mathutil.IsFinite(amount) {
		return Fixed(amount, 0)
	}
	return Integer(int64(math.Round(amount)))
}
