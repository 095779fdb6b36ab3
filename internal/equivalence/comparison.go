package equivalence

import (
	"strconv"
	"strings"

	"github.com/iwvelando/perspective-retraites/pkg/constants"
	"github.com/iwvelando/perspective-retraites/pkg/format"
	"github.com/iwvelando/perspective-retraites/pkg/mathutil"
	"github.com/iwvelando/perspective-retraites/pkg/validation"
)

// Connectors placed between the formatted count and the purchased item.
const (
	ConnectorTimes      = "fois"
	ConnectorManyTimes  = "de fois"
	ConnectorPercentage = "de"
)

// Comparison is the outcome of ComputeComparison.
type Comparison struct {
	ReferencePrice   float64 `json:"referencePrice"`
	PeriodMultiplier float64 `json:"periodMultiplier"`
	PeriodAmount     float64 `json:"periodAmount"`
	Count            float64 `json:"count"`
	FormattedCount   string  `json:"formattedCount"`
	IsPercentage     bool    `json:"isPercentage"`
	Connector        string  `json:"connector"`
}

// ComputeComparison counts how many times referencePrice fits in the
// reference outlay scaled by periodMultiplier. Counts below one are
// reported as a percentage.
func ComputeComparison(referencePrice, periodMultiplier float64) (Comparison, error) {
	if err := requirePositive(validation.FieldReferencePrice, referencePrice); err != nil {
		return Comparison{}, err
	}
	if err := requirePositive(validation.FieldPeriodMultiplier, periodMultiplier); err != nil {
		return Comparison{}, err
	}

	periodAmount := constants.TotalReferenceAmount * periodMultiplier
	if !mathutil.IsFinite(periodAmount) {
		return Comparison{}, validation.NewFieldError(validation.FieldPeriodMultiplier, validation.ErrOutOfRange,
			strconv.FormatFloat(periodMultiplier, 'g', -1, 64))
	}
	count := periodAmount / referencePrice
	if !mathutil.IsFinite(count) {
		return Comparison{}, validation.NewFieldError(validation.FieldReferencePrice, validation.ErrOutOfRange,
			strconv.FormatFloat(referencePrice, 'g', -1, 64))
	}

	formatted, isPercentage := format.Count(count)
	return Comparison{
		ReferencePrice:   referencePrice,
		PeriodMultiplier: periodMultiplier,
		PeriodAmount:     periodAmount,
		Count:            count,
		FormattedCount:   formatted,
		IsPercentage:     isPercentage,
		Connector:        Connector(formatted, isPercentage),
	}, nil
}

// Connector picks the word joining a formatted count to its object. The
// choice follows the rendered text, not the raw magnitude: "420 milliards
// de fois" but "1 500 fois".
func Connector(formattedCount string, isPercentage bool) string {
	if isPercentage {
		return ConnectorPercentage
	}
	if strings.Contains(formattedCount, "million") || strings.Contains(formattedCount, "milliard") {
		return ConnectorManyTimes
	}
	return ConnectorTimes
}

func requirePositive(field string, value float64) error {
	if !mathutil.IsFinite(value) {
		return validation.NewFieldError(field, validation.ErrNotNumeric, strconv.FormatFloat(value, 'g', -1, 64))
	}
	if value <= 0 {
		return validation.NewFieldError(field, validation.ErrNotPositive, strconv.FormatFloat(value, 'g', -1, 64))
	}
	return nil
}
