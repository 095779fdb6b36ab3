package validation

import (
	"strconv"
	"strings"

	"github.com/iwvelando/perspective-retraites/pkg/mathutil"
)

// ParseLocaleNumber parses user text written the French way ("1 234,5").
// Spaces, non-breaking spaces and narrow non-breaking spaces are grouping
// separators; the comma is the decimal separator. When both dots and a
// comma appear the dots are treated as grouping ("1.234,5"). Empty input and
// anything that is not a finite number yield a *FieldError for field; the
// parser never falls back to zero. Decimal exponents ("1,5e3") are accepted;
// Go literal forms such as digit underscores ("1_000") and hexadecimal
// ("0x1p4") are not.
func ParseLocaleNumber(field, text string) (float64, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return 0, NewFieldError(field, ErrEmpty, "")
	}

	normalized := strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\u00a0', '\u202f', '\t':
			return -1
		}
		return r
	}, trimmed)

	if strings.ContainsAny(normalized, "_xX") {
		return 0, NewFieldError(field, ErrNotNumeric, text)
	}

	if strings.Contains(normalized, ",") {
		if strings.Contains(normalized, ".") {
			normalized = strings.ReplaceAll(normalized, ".", "")
		}
		normalized = strings.Replace(normalized, ",", ".", 1)
	}

	value, err := strconv.ParseFloat(normalized, 64)
	if err != nil || !mathutil.IsFinite(value) {
		return 0, NewFieldError(field, ErrNotNumeric, text)
	}
	return value, nil
}

// ParseNonNegative parses text and rejects negative values.
func ParseNonNegative(field, text string) (float64, error) {
	value, err := ParseLocaleNumber(field, text)
	if err != nil {
		return 0, err
	}
	if value < 0 {
		return 0, NewFieldError(field, ErrNegative, text)
	}
	return value, nil
}

// ParsePositive parses text and rejects zero and negative values.
func ParsePositive(field, text string) (float64, error) {
	value, err := ParseLocaleNumber(field, text)
	if err != nil {
		return 0, err
	}
	if value <= 0 {
		return 0, NewFieldError(field, ErrNotPositive, text)
	}
	return value, nil
}
