// Package output provides utilities for formatting and displaying calculation results.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/iwvelando/perspective-retraites/internal/calculator"
	"github.com/iwvelando/perspective-retraites/internal/equivalence"
	"github.com/iwvelando/perspective-retraites/internal/examples"
	"github.com/iwvelando/perspective-retraites/pkg/format"
	"golang.org/x/term"
)

// Palette
const (
	colorHeader = lipgloss.Color("39")
	colorValue  = lipgloss.Color("214")
	colorMuted  = lipgloss.Color("245")
)

// Writer renders results for people. Styling is applied only when the
// destination is a terminal.
type Writer struct {
	out    io.Writer
	styled bool

	header lipgloss.Style
	value  lipgloss.Style
	muted  lipgloss.Style
}

// NewWriter returns a Writer on out.
func NewWriter(out io.Writer) *Writer {
	return NewStyledWriter(out, isTerminal(out))
}

// NewStyledWriter returns a Writer on out with styling forced on or off.
func NewStyledWriter(out io.Writer, styled bool) *Writer {
	r := lipgloss.NewRenderer(out)
	return &Writer{
		out:    out,
		styled: styled,
		header: r.NewStyle().Foreground(colorHeader).Bold(true),
		value:  r.NewStyle().Foreground(colorValue).Bold(true),
		muted:  r.NewStyle().Foreground(colorMuted).Italic(true),
	}
}

func isTerminal(out io.Writer) bool {
	f, ok := out.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func (w *Writer) render(style lipgloss.Style, text string) string {
	if !w.styled {
		return text
	}
	return style.Render(text)
}

// Temporal prints a temporal result between its header and footer.
func (w *Writer) Temporal(o calculator.TemporalOutcome) {
	fmt.Fprintln(w.out, w.render(w.header, o.Header))
	fmt.Fprintln(w.out, "  "+w.render(w.value, o.Result.Text))
	fmt.Fprintln(w.out, o.Footer)
}

// Comparison prints a comparison and its one-sentence summary.
func (w *Writer) Comparison(o calculator.ComparisonOutcome) {
	fmt.Fprintln(w.out, w.render(w.header, o.Header))
	fmt.Fprintln(w.out, "  "+w.render(w.value, o.Comparison.FormattedCount)+" "+o.Object)
	fmt.Fprintln(w.out, w.render(w.muted, o.Summary))
}

// Examples prints the catalog as an aligned table: id, value, label.
func (w *Writer) Examples(list []examples.Example) {
	idWidth, valueWidth := 0, 0
	values := make([]string, len(list))
	for i, ex := range list {
		values[i] = format.Currency(ex.Value)
		idWidth = max(idWidth, len(ex.ID))
		valueWidth = max(valueWidth, len([]rune(values[i])))
	}

	for i, ex := range list {
		id := ex.ID + strings.Repeat(" ", idWidth-len(ex.ID))
		value := strings.Repeat(" ", valueWidth-len([]rune(values[i]))) + values[i]
		fmt.Fprintf(w.out, "%s  %s  %s\n", w.render(w.muted, id), w.render(w.value, value), equivalence.MenuLabel(ex.Label))
	}
}

// CalculationCount prints the number of calculations run so far.
func (w *Writer) CalculationCount(n int64) {
	fmt.Fprintln(w.out, w.render(w.muted, "Calculs effectués\u00a0: "+format.Integer(n)))
}

// Check prints one line of a validation report, marked as passed or failed.
func (w *Writer) Check(ok bool, text string) {
	if ok {
		fmt.Fprintln(w.out, w.render(w.value, "✓")+" "+text)
		return
	}
	fmt.Fprintln(w.out, w.render(w.header, "✗")+" "+text)
}

// Message prints a plain line, used for share texts.
func (w *Writer) Message(text string) {
	fmt.Fprintln(w.out, text)
}

// JSON writes v as indented JSON.
func JSON(out io.Writer, v interface{}) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode JSON output: %w", err)
	}
	return nil
}
