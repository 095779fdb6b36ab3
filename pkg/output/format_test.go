package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/iwvelando/perspective-retraites/internal/calculator"
	"github.com/iwvelando/perspective-retraites/internal/equivalence"
	"github.com/iwvelando/perspective-retraites/internal/examples"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func temporalOutcome(t *testing.T) calculator.TemporalOutcome {
	t.Helper()
	result, err := equivalence.ComputeTemporal(420e9)
	require.NoError(t, err)
	return calculator.TemporalOutcome{
		Result: result,
		Header: equivalence.DefaultTemporalHeader,
		Footer: equivalence.TemporalFooter,
	}
}

func TestWriterTemporalPlain(t *testing.T) {
	var buf bytes.Buffer
	NewStyledWriter(&buf, false).Temporal(temporalOutcome(t))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, equivalence.DefaultTemporalHeader, lines[0])
	assert.Equal(t, "  1 année", lines[1])
	assert.Equal(t, equivalence.TemporalFooter, lines[2])
}

func TestNewWriterOnBufferIsPlain(t *testing.T) {
	var buf bytes.Buffer
	NewWriter(&buf).Temporal(temporalOutcome(t))

	assert.NotContains(t, buf.String(), "\x1b[")
}

func TestWriterComparisonPlain(t *testing.T) {
	c, err := equivalence.ComputeComparison(1, 1)
	require.NoError(t, err)

	o := calculator.ComparisonOutcome{
		Comparison: c,
		Header:     equivalence.ComparisonHeader(c, false),
		Object:     equivalence.ComparisonObject(c, "une baguette"),
		Summary:    equivalence.ComparisonSummary(c, "une baguette"),
	}

	var buf bytes.Buffer
	NewStyledWriter(&buf, false).Comparison(o)

	out := buf.String()
	assert.Contains(t, out, equivalence.FinancialHeaderBuy)
	assert.Contains(t, out, "  420 milliards de fois une baguette\n")
	assert.Contains(t, out, o.Summary)
}

func TestWriterExamplesAligned(t *testing.T) {
	list := []examples.Example{
		{ID: "a", Value: 1, Label: "une baguette"},
		{ID: "longer-id", Value: 1_000_000, Label: "le prix d'un superyacht"},
	}

	var buf bytes.Buffer
	NewStyledWriter(&buf, false).Examples(list)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "a          "))
	assert.True(t, strings.HasSuffix(lines[0], "Baguette"))
	assert.True(t, strings.HasSuffix(lines[1], "Prix d'un superyacht"))
	assert.Equal(t, runeIndex(lines[0], "€"), runeIndex(lines[1], "€"))
}

func TestWriterCalculationCount(t *testing.T) {
	var buf bytes.Buffer
	NewStyledWriter(&buf, false).CalculationCount(1234)

	assert.Equal(t, "Calculs effectués\u00a0: 1\u00a0234\n", buf.String())
}

func TestJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, JSON(&buf, temporalOutcome(t)))

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, equivalence.TemporalFooter, decoded["footer"])
	assert.Contains(t, buf.String(), "\n  \"")
}

func TestJSONUnsupportedValue(t *testing.T) {
	var buf bytes.Buffer
	assert.Error(t, JSON(&buf, map[string]interface{}{"bad": make(chan int)}))
}

func runeIndex(s, substr string) int {
	return utf8.RuneCountInString(s[:strings.Index(s, substr)])
}

func TestCheck(t *testing.T) {
	var buf bytes.Buffer
	w := NewStyledWriter(&buf, false)

	w.Check(true, "Catalogue chargé")
	w.Check(false, "Stockage indisponible")

	assert.Equal(t, "✓ Catalogue chargé\n✗ Stockage indisponible\n", buf.String())
}
