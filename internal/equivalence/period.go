package equivalence

import (
	"strconv"
	"strings"

	"github.com/iwvelando/perspective-retraites/pkg/constants"
	"github.com/iwvelando/perspective-retraites/pkg/mathutil"
	"github.com/iwvelando/perspective-retraites/pkg/validation"
)

// PeriodCustom selects a user-supplied multiplier.
const PeriodCustom = "custom"

// Period is a named fraction (or multiple) of a year.
type Period struct {
	Name       string  `json:"name"`
	Label      string  `json:"label"`
	Multiplier float64 `json:"multiplier"`
}

//nolint:gochecknoglobals // immutable lookup table
var periods = []Period{
	{Name: "year", Label: "1 an", Multiplier: 1},
	{Name: "month", Label: "1 mois", Multiplier: 1.0 / constants.MonthsPerYear},
	{Name: "week", Label: "1 semaine", Multiplier: 7 / constants.DaysPerYear},
	{Name: "day", Label: "1 jour", Multiplier: 1 / constants.DaysPerYear},
	{Name: "hour", Label: "1 heure", Multiplier: constants.SecondsPerHour / constants.SecondsPerYear},
	{Name: "minute", Label: "1 minute", Multiplier: constants.SecondsPerMinute / constants.SecondsPerYear},
	{Name: "second", Label: "1 seconde", Multiplier: 1 / constants.SecondsPerYear},
}

// Periods lists the predefined periods from the longest to the shortest.
func Periods() []Period {
	out := make([]Period, len(periods))
	copy(out, periods)
	return out
}

// ResolvePeriod turns a period selection into a multiplier of the yearly
// outlay. name is a predefined period, a positive number written the
// French way, or PeriodCustom, in which case customText is parsed. An empty
// name selects one year.
func ResolvePeriod(name, customText string) (float64, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "" {
		return 1, nil
	}
	if key == PeriodCustom {
		return validation.ParsePositive(validation.FieldPeriodMultiplier, customText)
	}
	for _, p := range periods {
		if p.Name == key {
			return p.Multiplier, nil
		}
	}
	if value, err := strconv.ParseFloat(key, 64); err == nil {
		if !mathutil.IsFinite(value) {
			return 0, validation.NewFieldError(validation.FieldPeriod, validation.ErrNotNumeric, name)
		}
		if value <= 0 {
			return 0, validation.NewFieldError(validation.FieldPeriod, validation.ErrNotPositive, name)
		}
		return value, nil
	}
	return 0, validation.NewFieldError(validation.FieldPeriod, validation.ErrUnknownPeriod, name)
}
