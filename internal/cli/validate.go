package cli

import (
	"errors"
	"strings"

	"github.com/iwvelando/perspective-retraites/internal/equivalence"
	"github.com/iwvelando/perspective-retraites/pkg/format"
	"github.com/iwvelando/perspective-retraites/pkg/output"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// errValidationFailed is returned once the report has been printed.
var errValidationFailed = errors.New("validation failed")

type baselineCheck struct {
	Amount float64 `json:"amount"`
	Want   string  `json:"want"`
	Got    string  `json:"got"`
	OK     bool    `json:"ok"`
}

type validationReport struct {
	ConfigWarnings   []string        `json:"configWarnings"`
	Examples         int             `json:"examples"`
	OverridesApplied []string        `json:"overridesApplied,omitempty"`
	OverridesSkipped []string        `json:"overridesSkipped,omitempty"`
	Storage          string          `json:"storage"`
	Persistent       bool            `json:"persistent"`
	Baseline         []baselineCheck `json:"baseline"`
	OK               bool            `json:"ok"`
}

// baselines are known conversions the engine must reproduce exactly.
//
//nolint:gochecknoglobals // fixed reference values
var baselines = []struct {
	amount float64
	want   string
}{
	{0, "0 seconde"},
	{100e6, "2 heures 5 minutes 13 secondes"},
	{199e9, "5 mois 20 jours 20 heures 54 minutes 51 secondes"},
	{420e9, "1 année"},
}

func newValidateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Vérifier la configuration, le catalogue, le stockage et les conversions de référence",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			report := a.validate()
			err := a.render(cmd.OutOrStdout(), report, func(w *output.Writer) {
				printValidation(w, report)
			})
			if err != nil {
				return err
			}
			if !report.OK {
				return errValidationFailed
			}
			return nil
		},
	}
}

func (a *app) validate() validationReport {
	report := validationReport{
		ConfigWarnings:   a.conf.ValidateConfiguration(),
		Examples:         a.calc.Examples().Len(),
		OverridesApplied: a.overrides.Applied,
		OverridesSkipped: a.overrides.Skipped,
		Storage:          "memory",
		Persistent:       a.store != nil,
		OK:               true,
	}
	if report.ConfigWarnings == nil {
		report.ConfigWarnings = []string{}
	}
	if a.store != nil {
		report.Storage = "sqlite:" + a.conf.Storage.Path
	}

	for _, b := range baselines {
		check := baselineCheck{Amount: b.amount, Want: b.want}
		if result, err := equivalence.ComputeTemporal(b.amount); err == nil {
			check.Got = result.Text
		}
		check.OK = check.Got == check.Want
		if !check.OK {
			report.OK = false
			a.logger.Error("baseline conversion mismatch",
				zap.String("op", "cli.validate"),
				zap.Float64("amount", b.amount),
				zap.String("want", b.want),
				zap.String("got", check.Got),
			)
		}
		report.Baseline = append(report.Baseline, check)
	}
	return report
}

func printValidation(w *output.Writer, report validationReport) {
	w.Check(len(report.ConfigWarnings) == 0, "Configuration chargée")
	for _, warning := range report.ConfigWarnings {
		w.Check(false, warning)
	}

	w.Check(true, "Catalogue\u00a0: "+format.Integer(int64(report.Examples))+" exemples")
	if len(report.OverridesApplied) > 0 {
		w.Check(true, "Valeurs mises à jour\u00a0: "+strings.Join(report.OverridesApplied, ", "))
	}
	if len(report.OverridesSkipped) > 0 {
		w.Check(false, "Valeurs ignorées\u00a0: "+strings.Join(report.OverridesSkipped, ", "))
	}

	if report.Persistent {
		w.Check(true, "Stockage\u00a0: "+report.Storage)
	} else {
		w.Check(false, "Stockage\u00a0: mémoire, le compteur repart de zéro au redémarrage")
	}

	for _, b := range report.Baseline {
		line := format.Currency(b.Amount) + " = " + b.Got
		if !b.OK {
			line += " (attendu\u00a0: " + b.Want + ")"
		}
		w.Check(b.OK, line)
	}
}
