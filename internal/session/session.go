// Package session tracks what one user of the calculator has done so far:
// the active mode, the last results and how many calculations were run.
package session

import (
	"github.com/iwvelando/perspective-retraites/pkg/constants"
)

// Session is the state of one calculator user. It is passed explicitly to
// the operations that read or update it; a Session is not safe for
// concurrent use on its own (see Registry).
type Session struct {
	ID                string  `json:"id"`
	Mode              string  `json:"mode"`
	LastExampleLabel  string  `json:"lastExampleLabel,omitempty"`
	LastTemporalText  string  `json:"lastTemporalText,omitempty"`
	LastAmount        float64 `json:"lastAmount,omitempty"`
	LastFinancialText string  `json:"lastFinancialText,omitempty"`
	CalculationCount  int64   `json:"calculationCount"`
}

// New returns a session in temporal mode.
func New(id string) *Session {
	return &Session{ID: id, Mode: constants.ModeTemporal}
}

// SwitchMode activates mode and reports whether it changed.
func (s *Session) SwitchMode(mode string) bool {
	if s.Mode == mode {
		return false
	}
	s.Mode = mode
	return true
}

// UseExample records that the temporal amount was filled from a catalog
// example.
func (s *Session) UseExample(label string) {
	s.LastExampleLabel = label
}

// ClearExample records that the amount was typed by hand.
func (s *Session) ClearExample() {
	s.LastExampleLabel = ""
}

// RecordTemporal stores the amount and canonical text of a temporal result
// and activates temporal mode.
func (s *Session) RecordTemporal(amount float64, text string) {
	s.Mode = constants.ModeTemporal
	s.LastAmount = amount
	s.LastTemporalText = text
	s.CalculationCount++
}

// RecordFinancial stores the canonical text of a comparison and activates
// financial mode.
func (s *Session) RecordFinancial(text string) {
	s.Mode = constants.ModeFinancial
	s.LastFinancialText = text
	s.CalculationCount++
}

// ResetTemporal clears the temporal form: the example label and the last
// temporal result. Financial state is kept.
func (s *Session) ResetTemporal() {
	s.LastExampleLabel = ""
	s.LastTemporalText = ""
	s.LastAmount = 0
}

// ResultText returns the last result of mode, empty when none.
func (s *Session) ResultText(mode string) string {
	if mode == constants.ModeFinancial {
		return s.LastFinancialText
	}
	return s.LastTemporalText
}

// ShouldPromptInstall reports whether enough calculations were run to offer
// installing the application.
func (s *Session) ShouldPromptInstall() bool {
	return s.CalculationCount >= constants.InstallPromptThreshold
}
