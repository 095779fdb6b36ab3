// Package format renders numbers the way French readers expect them:
// non-breaking-space thousands separators, decimal commas and spelled-out
// magnitudes.
package format

import (
	"math"
	"math/big"
	"strconv"
	"strings"

	"github.com/iwvelando/perspective-retraites/pkg/constants"
	"github.com/iwvelando/perspective-retraites/pkg/mathutil"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// NBSP is the thousands separator used in every rendered number.
const NBSP = "\u00a0"

// BelowPercentageFloor is rendered for shares smaller than 0,001 %.
const BelowPercentageFloor = "< 0,001%"

//nolint:gochecknoglobals // a single printer is the x/text idiom.
var printer = message.NewPrinter(language.French)

// Integer formats n with French digit grouping, e.g. 1234567 -> "1 234 567"
// where the separators are U+00A0.
func Integer(n int64) string {
	if n == math.MinInt64 {
		return strconv.FormatInt(n, 10)
	}
	if n < 0 {
		return "-" + Integer(-n)
	}
	return normalizeSpaces(printer.Sprintf("%d", n))
}

// normalizeSpaces maps every space-like separator CLDR may emit for French
// (U+0020, U+00A0, U+202F) onto U+00A0.
func normalizeSpaces(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\u00a0', '\u202f':
			return '\u00a0'
		}
		return r
	}, s)
}

// Fixed renders value with exactly digits decimals and a decimal comma.
// Exact ties round away from zero (1.25 -> "1,3"), like JavaScript's
// toFixed; every other value is rounded to nearest by strconv.
func Fixed(value float64, digits int) string {
	if digits < 0 {
		digits = 0
	}
	if rounded, ok := roundTieAway(value, digits); ok {
		return rounded
	}
	return strings.Replace(strconv.FormatFloat(value, 'f', digits, 64), ".", ",", 1)
}

// roundTieAway reports whether value lies exactly halfway between two
// renderings with digits decimals and, if so, returns the one further from
// zero. The check runs on the exact binary value.
func roundTieAway(value float64, digits int) (string, bool) {
	if !mathutil.IsFinite(value) || digits > 22 {
		return "", false
	}

	const prec = 256
	scaled := new(big.Float).SetPrec(prec).SetFloat64(math.Abs(value))
	scaled.Mul(scaled, new(big.Float).SetPrec(prec).SetFloat64(math.Pow10(digits)))

	whole, _ := scaled.Int(nil)
	frac := new(big.Float).SetPrec(prec).Sub(scaled, new(big.Float).SetPrec(prec).SetInt(whole))
	if frac.Cmp(big.NewFloat(0.5)) != 0 {
		return "", false
	}

	text := whole.Add(whole, big.NewInt(1)).String()
	if len(text) <= digits {
		text = strings.Repeat("0", digits-len(text)+1) + text
	}
	if digits > 0 {
		text = text[:len(text)-digits] + "," + text[len(text)-digits:]
	}
	if value < 0 {
		text = "-" + text
	}
	return text, true
}

// TrimZeroDecimal drops a trailing ",0" (one-decimal renderings only).
func TrimZeroDecimal(s string) string {
	return strings.TrimSuffix(s, ",0")
}

// Count renders a comparison count according to its magnitude. Tiers are
// evaluated top-down and each boundary belongs to the upper tier. Counts
// below one are rendered as a percentage and isPercentage is set.
func Count(count float64) (formatted string, isPercentage bool) {
	switch {
	case count >= constants.Billion:
		return scaled(count/constants.Billion, "milliard", "milliards"), false
	case count >= constants.Million:
		return scaled(count/constants.Million, "million", "millions"), false
	case count >= constants.Thousand:
		return Integer(int64(math.Floor(count))), false
	case count >= 1:
		if !mathutil.IsIntegral(count) {
			return TrimZeroDecimal(Fixed(count, 1)), false
		}
		return Integer(int64(count)), false
	default:
		return Percentage(count * constants.PercentageMultiplier), true
	}
}

func scaled(value float64, singular, plural string) string {
	suffix := plural
	if value < 2 {
		suffix = singular
	}
	return TrimZeroDecimal(Fixed(value, 1)) + " " + suffix
}

// Percentage renders a share expressed in percent with a precision that
// grows as the value shrinks.
func Percentage(pct float64) string {
	switch {
	case pct >= 10:
		return TrimZeroDecimal(Fixed(pct, 1)) + "%"
	case pct >= 1:
		return Fixed(pct, 1) + "%"
	case pct >= 0.1:
		return Fixed(pct, 2) + "%"
	case pct >= 0.001:
		return Fixed(pct, 3) + "%"
	default:
		return BelowPercentageFloor
	}
}
