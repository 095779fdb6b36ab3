// Package equivalence converts euro amounts into shares of the yearly
// retirement-benefit outlay: either a calendar-like duration (temporal mode)
// or a number of reference purchases (financial mode).
package equivalence

import (
	"math"
	"strconv"
	"strings"

	"github.com/iwvelando/perspective-retraites/pkg/constants"
	"github.com/iwvelando/perspective-retraites/pkg/mathutil"
	"github.com/iwvelando/perspective-retraites/pkg/validation"
)

// Unit identifies a component of a temporal breakdown.
type Unit string

// Units from largest to smallest.
const (
	UnitYear        Unit = "year"
	UnitMonth       Unit = "month"
	UnitDay         Unit = "day"
	UnitHour        Unit = "hour"
	UnitMinute      Unit = "minute"
	UnitSecond      Unit = "second"
	UnitMillisecond Unit = "millisecond"
)

type unitLabel struct {
	singular string
	plural   string
}

//nolint:gochecknoglobals // immutable lookup table
var unitLabels = map[Unit]unitLabel{
	UnitYear:        {"année", "années"},
	UnitMonth:       {"mois", "mois"},
	UnitDay:         {"jour", "jours"},
	UnitHour:        {"heure", "heures"},
	UnitMinute:      {"minute", "minutes"},
	UnitSecond:      {"seconde", "secondes"},
	UnitMillisecond: {"milliseconde", "millisecondes"},
}

// maxMillis keeps the rounded millisecond total inside int64.
const maxMillis = 9e18

// Label returns the French label for value units. Values below two take the
// singular, so zero reads "0 seconde".
func Label(unit Unit, value int64) string {
	l := unitLabels[unit]
	if value < 2 {
		return l.singular
	}
	return l.plural
}

// Component is one displayed "value label" pair.
type Component struct {
	Unit  Unit   `json:"unit"`
	Value int64  `json:"value"`
	Label string `json:"label"`
}

func (c Component) String() string {
	return strconv.FormatInt(c.Value, 10) + " " + c.Label
}

// Breakdown holds every component of a duration, zero or not.
type Breakdown struct {
	Years        int64 `json:"years"`
	Months       int64 `json:"months"`
	Days         int64 `json:"days"`
	Hours        int64 `json:"hours"`
	Minutes      int64 `json:"minutes"`
	Seconds      int64 `json:"seconds"`
	Milliseconds int64 `json:"milliseconds"`
}

// TotalSeconds folds the breakdown back into seconds.
func (b Breakdown) TotalSeconds() float64 {
	whole := b.Years*int64(constants.SecondsPerYear) +
		b.Months*int64(constants.SecondsPerMonth) +
		b.Days*constants.SecondsPerDay +
		b.Hours*constants.SecondsPerHour +
		b.Minutes*constants.SecondsPerMinute +
		b.Seconds
	return float64(whole) + float64(b.Milliseconds)/constants.MillisecondsPerSecond
}

// TemporalResult is the outcome of ComputeTemporal.
type TemporalResult struct {
	Amount            float64     `json:"amount"`
	Ratio             float64     `json:"ratio"`
	EquivalentSeconds float64     `json:"equivalentSeconds"`
	Breakdown         Breakdown   `json:"breakdown"`
	Components        []Component `json:"components"`
	Text              string      `json:"text"`
}

// ComputeTemporal expresses amount as the time the yearly reference outlay
// takes to spend it.
//
// The millisecond total is rounded once and every component is taken from
// that integer, largest unit first, so milliseconds never inherit the drift
// of a floating-point remainder chain. Only positive components from years
// to seconds are displayed; when none is, the result falls back to the
// millisecond count, to "1 milliseconde" for any non-zero amount, or to
// "0 seconde".
func ComputeTemporal(amount float64) (TemporalResult, error) {
	if !mathutil.IsFinite(amount) {
		return TemporalResult{}, validation.NewFieldError(validation.FieldAmount, validation.ErrNotNumeric,
			strconv.FormatFloat(amount, 'g', -1, 64))
	}
	if amount < 0 {
		return TemporalResult{}, validation.NewFieldError(validation.FieldAmount, validation.ErrNegative,
			strconv.FormatFloat(amount, 'f', -1, 64))
	}

	ratio := amount / constants.TotalReferenceAmount
	equivalentSeconds := ratio * constants.SecondsPerYear

	totalMillis := equivalentSeconds * constants.MillisecondsPerSecond
	if totalMillis >= maxMillis {
		return TemporalResult{}, validation.NewFieldError(validation.FieldAmount, validation.ErrOutOfRange,
			strconv.FormatFloat(amount, 'g', -1, 64))
	}

	// The total is rounded once before decomposing, so 999.6 ms carries
	// into a whole second instead of showing as 1000 ms.
	breakdown := decompose(int64(math.Round(totalMillis)))
	components := displayComponents(breakdown, equivalentSeconds)

	return TemporalResult{
		Amount:            amount,
		Ratio:             ratio,
		EquivalentSeconds: equivalentSeconds,
		Breakdown:         breakdown,
		Components:        components,
		Text:              flatten(components),
	}, nil
}

func decompose(totalMillis int64) Breakdown {
	var b Breakdown
	var rem int64

	rem, b.Milliseconds = mathutil.FloorDiv(totalMillis, constants.MillisecondsPerSecond)
	b.Years, rem = mathutil.FloorDiv(rem, int64(constants.SecondsPerYear))
	b.Months, rem = mathutil.FloorDiv(rem, int64(constants.SecondsPerMonth))
	b.Days, rem = mathutil.FloorDiv(rem, constants.SecondsPerDay)
	b.Hours, rem = mathutil.FloorDiv(rem, constants.SecondsPerHour)
	b.Minutes, b.Seconds = mathutil.FloorDiv(rem, constants.SecondsPerMinute)
	return b
}

func displayComponents(b Breakdown, equivalentSeconds float64) []Component {
	ordered := []struct {
		unit  Unit
		value int64
	}{
		{UnitYear, b.Years},
		{UnitMonth, b.Months},
		{UnitDay, b.Days},
		{UnitHour, b.Hours},
		{UnitMinute, b.Minutes},
		{UnitSecond, b.Seconds},
	}

	components := make([]Component, 0, len(ordered))
	for _, o := range ordered {
		if o.value > 0 {
			components = append(components, newComponent(o.unit, o.value))
		}
	}
	if len(components) > 0 {
		return components
	}

	switch {
	case b.Milliseconds > 0:
		return []Component{newComponent(UnitMillisecond, b.Milliseconds)}
	case equivalentSeconds > 0:
		return []Component{newComponent(UnitMillisecond, 1)}
	default:
		return []Component{newComponent(UnitSecond, 0)}
	}
}

func newComponent(unit Unit, value int64) Component {
	return Component{Unit: unit, Value: value, Label: Label(unit, value)}
}

func flatten(components []Component) string {
	parts := make([]string, 0, len(components))
	for _, c := range components {
		parts = append(parts, c.String())
	}
	return strings.Join(parts, " ")
}
