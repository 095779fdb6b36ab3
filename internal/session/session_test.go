package session

import (
	"testing"

	"github.com/iwvelando/perspective-retraites/pkg/constants"
	"github.com/stretchr/testify/assert"
)

func TestNewSession(t *testing.T) {
	s := New("abc")
	assert.Equal(t, "abc", s.ID)
	assert.Equal(t, constants.ModeTemporal, s.Mode)
	assert.Zero(t, s.CalculationCount)
	assert.False(t, s.ShouldPromptInstall())
}

func TestSwitchMode(t *testing.T) {
	s := New("abc")
	assert.False(t, s.SwitchMode(constants.ModeTemporal))
	assert.True(t, s.SwitchMode(constants.ModeFinancial))
	assert.Equal(t, constants.ModeFinancial, s.Mode)
}

func TestRecordResults(t *testing.T) {
	s := New("abc")

	s.UseExample("un Rafale")
	s.RecordTemporal(100e6, "2 heures 5 minutes 13 secondes")
	assert.Equal(t, constants.ModeTemporal, s.Mode)
	assert.Equal(t, "un Rafale", s.LastExampleLabel)
	assert.Equal(t, "2 heures 5 minutes 13 secondes", s.ResultText(constants.ModeTemporal))
	assert.Empty(t, s.ResultText(constants.ModeFinancial))
	assert.False(t, s.ShouldPromptInstall())

	s.RecordFinancial("Avec 1 € cela représente 1 fois 1 €.")
	assert.Equal(t, constants.ModeFinancial, s.Mode)
	assert.Equal(t, "Avec 1 € cela représente 1 fois 1 €.", s.ResultText(constants.ModeFinancial))
	assert.Equal(t, int64(2), s.CalculationCount)
	assert.True(t, s.ShouldPromptInstall())

	s.ClearExample()
	assert.Empty(t, s.LastExampleLabel)
}

func TestResetTemporalKeepsFinancial(t *testing.T) {
	s := New("abc")
	s.UseExample("un Rafale")
	s.RecordTemporal(100e6, "2 heures")
	s.RecordFinancial("résumé")

	s.ResetTemporal()
	assert.Empty(t, s.LastExampleLabel)
	assert.Empty(t, s.LastTemporalText)
	assert.Zero(t, s.LastAmount)
	assert.Equal(t, "résumé", s.LastFinancialText)
	assert.Equal(t, int64(2), s.CalculationCount)
}
