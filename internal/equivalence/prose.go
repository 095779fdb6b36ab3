package equivalence

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/iwvelando/perspective-retraites/pkg/format"
)

// Fixed sentences framing a result.
const (
	DefaultTemporalHeader = "Ce montant représente l'équivalent de\u00a0:"
	TemporalFooter        = "de prestations retraites (2025)."
	FinancialHeader       = "Les prestations retraites de 2025 représentent\u00a0:"
	FinancialHeaderBuy    = "Les prestations retraites de 2025 pourraient financer\u00a0:"
)

//nolint:gochecknoglobals // compiled once
var leadingArticle = regexp.MustCompile(`(?i)^(le|la|les|l'|un|une|des)\s+`)

// Capitalize upper-cases the first letter of s.
func Capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

// IsPluralLabel reports whether a label starts with a plural article.
func IsPluralLabel(label string) bool {
	lower := strings.ToLower(label)
	return strings.HasPrefix(lower, "les ") || strings.HasPrefix(lower, "des ")
}

// ShortLabel drops the parenthesised qualifier and everything after it:
// "le budget de l'UE (2025)" -> "le budget de l'UE".
func ShortLabel(label string) string {
	if idx := strings.Index(label, " ("); idx >= 0 {
		return label[:idx]
	}
	return label
}

// MenuLabel removes the leading article and capitalises what remains, the
// form used in pickers: "le prix d'un superyacht" -> "Prix d'un superyacht".
func MenuLabel(label string) string {
	cleaned := leadingArticle.ReplaceAllString(label, "")
	if len(cleaned) >= 2 && strings.EqualFold(cleaned[:2], "l'") {
		cleaned = cleaned[2:]
	}
	return Capitalize(cleaned)
}

// TemporalHeader introduces a temporal result. With an example label the
// verb agrees with the label's article.
func TemporalHeader(exampleLabel string) string {
	if exampleLabel == "" {
		return DefaultTemporalHeader
	}
	verb := "représente"
	if IsPluralLabel(exampleLabel) {
		verb = "représentent"
	}
	return Capitalize(exampleLabel) + " " + verb + "\u00a0:"
}

// ComparisonHeader introduces a comparison result; only whole counts of a
// catalog item read as something the outlay "could finance".
func ComparisonHeader(c Comparison, custom bool) string {
	if c.IsPercentage || custom {
		return FinancialHeader
	}
	return FinancialHeaderBuy
}

// ComparisonObject is the text following the formatted count: the
// connector and either the item label or the custom amount.
func ComparisonObject(c Comparison, label string) string {
	object := ShortLabel(label)
	if object == "" {
		object = format.Currency(c.ReferencePrice)
	}
	return c.Connector + " " + object
}

// ComparisonSummary is the one-sentence, shareable rendering of a
// comparison. label is the catalog label, empty for a custom amount.
func ComparisonSummary(c Comparison, label string) string {
	custom := label == ""
	prefix := "Avec " + format.Currency(c.PeriodAmount) + " de prestations retraites, "
	if c.IsPercentage || custom {
		return prefix + "cela représente " + c.FormattedCount + " " + ComparisonObject(c, label) + "."
	}
	return prefix + "on pourrait avoir " + c.FormattedCount + " " + ComparisonObject(c, label) + "."
}
