// Package calculator runs the calculator's user-facing operations: it
// resolves catalog selections and raw text inputs, invokes the equivalence
// engine and records the outcome in the caller's session.
package calculator

import (
	"github.com/iwvelando/perspective-retraites/internal/equivalence"
	"github.com/iwvelando/perspective-retraites/internal/examples"
	"github.com/iwvelando/perspective-retraites/internal/session"
	"github.com/iwvelando/perspective-retraites/pkg/constants"
	"github.com/iwvelando/perspective-retraites/pkg/format"
	"github.com/iwvelando/perspective-retraites/pkg/validation"
	"go.uber.org/zap"
)

// Calculator ties the example catalog and the calculation counter to the
// equivalence engine.
type Calculator struct {
	logger   *zap.Logger
	examples *examples.Store
	counter  *session.Counter
}

// New returns a Calculator. A nil counter keeps an in-memory one.
func New(logger *zap.Logger, store *examples.Store, counter *session.Counter) *Calculator {
	if logger == nil {
		logger = zap.NewNop()
	}
	if counter == nil {
		counter = session.NewCounter(logger, nil, 0)
	}
	return &Calculator{logger: logger, examples: store, counter: counter}
}

// Examples exposes the catalog.
func (c *Calculator) Examples() *examples.Store {
	return c.examples
}

// Counter exposes the process-wide calculation counter.
func (c *Calculator) Counter() *session.Counter {
	return c.counter
}

// TemporalRequest is a temporal calculation as typed by a user: either a
// catalog id or a raw amount.
type TemporalRequest struct {
	Amount    string `json:"amount"`
	ExampleID string `json:"exampleId,omitempty"`
}

// TemporalOutcome is a temporal result framed for display.
type TemporalOutcome struct {
	Result equivalence.TemporalResult `json:"result"`
	Header string                     `json:"header"`
	Footer string                     `json:"footer"`
	// AmountText is the amount as the form field shows it ("565 000").
	AmountText string            `json:"amountText"`
	Example    *examples.Example `json:"example,omitempty"`
}

// Temporal runs a temporal calculation for s. A known ExampleID wins over
// Amount; an unknown one falls back to the typed amount.
func (c *Calculator) Temporal(s *session.Session, req TemporalRequest) (TemporalOutcome, error) {
	var example *examples.Example
	if ex, ok := c.lookup(req.ExampleID); ok {
		example = &ex
	}

	var amount float64
	if example != nil {
		amount = example.Value
	} else {
		parsed, err := validation.ParseLocaleNumber(validation.FieldAmount, req.Amount)
		if err != nil {
			return TemporalOutcome{}, err
		}
		amount = parsed
	}

	result, err := equivalence.ComputeTemporal(amount)
	if err != nil {
		return TemporalOutcome{}, err
	}

	if example != nil {
		s.UseExample(example.Label)
	} else {
		s.ClearExample()
	}
	s.RecordTemporal(amount, result.Text)
	total := c.counter.Increment()

	c.logger.Debug("temporal equivalence computed",
		zap.String("op", "calculator.Temporal"),
		zap.String("session", s.ID),
		zap.Float64("amount", amount),
		zap.String("result", result.Text),
		zap.Int64("calculations", total),
	)

	return TemporalOutcome{
		Result:     result,
		Header:     equivalence.TemporalHeader(s.LastExampleLabel),
		Footer:     equivalence.TemporalFooter,
		AmountText: format.Grouped(amount),
		Example:    example,
	}, nil
}

// RandomTemporal picks the next catalog example and computes its temporal
// equivalence.
func (c *Calculator) RandomTemporal(s *session.Session) (TemporalOutcome, error) {
	ex := c.examples.Pick()
	return c.Temporal(s, TemporalRequest{ExampleID: ex.ID})
}

// ComparisonRequest is a financial-mode calculation: a catalog item (or a
// custom price) and a period.
type ComparisonRequest struct {
	ExampleID    string `json:"exampleId,omitempty"`
	Price        string `json:"price,omitempty"`
	Period       string `json:"period,omitempty"`
	CustomPeriod string `json:"customPeriod,omitempty"`
}

// ComparisonOutcome is a comparison framed for display.
type ComparisonOutcome struct {
	Comparison       equivalence.Comparison `json:"comparison"`
	Header           string                 `json:"header"`
	Object           string                 `json:"object"`
	Summary          string                 `json:"summary"`
	PeriodAmountText string                 `json:"periodAmountText"`
	Example          *examples.Example      `json:"example,omitempty"`
}

// Compare runs a comparison for s. A known ExampleID supplies the price;
// the custom sentinel, an empty id or an unknown id use Price.
func (c *Calculator) Compare(s *session.Session, req ComparisonRequest) (ComparisonOutcome, error) {
	var example *examples.Example
	if ex, ok := c.lookup(req.ExampleID); ok {
		example = &ex
	}

	var price float64
	label := ""
	if example != nil {
		price = example.Value
		label = example.Label
	} else {
		parsed, err := validation.ParsePositive(validation.FieldReferencePrice, req.Price)
		if err != nil {
			return ComparisonOutcome{}, err
		}
		price = parsed
	}

	multiplier, err := equivalence.ResolvePeriod(req.Period, req.CustomPeriod)
	if err != nil {
		return ComparisonOutcome{}, err
	}

	comparison, err := equivalence.ComputeComparison(price, multiplier)
	if err != nil {
		return ComparisonOutcome{}, err
	}

	summary := equivalence.ComparisonSummary(comparison, label)
	s.RecordFinancial(summary)
	total := c.counter.Increment()

	c.logger.Debug("comparison computed",
		zap.String("op", "calculator.Compare"),
		zap.String("session", s.ID),
		zap.Float64("price", price),
		zap.Float64("multiplier", multiplier),
		zap.String("count", comparison.FormattedCount),
		zap.Int64("calculations", total),
	)

	return ComparisonOutcome{
		Comparison:       comparison,
		Header:           equivalence.ComparisonHeader(comparison, example == nil),
		Object:           equivalence.ComparisonObject(comparison, label),
		Summary:          summary,
		PeriodAmountText: format.Currency(comparison.PeriodAmount),
		Example:          example,
	}, nil
}

func (c *Calculator) lookup(id string) (examples.Example, bool) {
	if id == "" || id == constants.CustomExampleID {
		return examples.Example{}, false
	}
	ex, ok := c.examples.Lookup(id)
	if !ok {
		c.logger.Debug("unknown example id, using custom amount",
			zap.String("op", "calculator.lookup"),
			zap.String("id", id),
		)
	}
	return ex, ok
}
