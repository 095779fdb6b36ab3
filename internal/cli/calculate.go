package cli

import (
	"fmt"
	"strings"

	"github.com/iwvelando/perspective-retraites/internal/calculator"
	"github.com/iwvelando/perspective-retraites/internal/equivalence"
	"github.com/iwvelando/perspective-retraites/internal/share"
	"github.com/iwvelando/perspective-retraites/pkg/constants"
	"github.com/iwvelando/perspective-retraites/pkg/output"
	"github.com/iwvelando/perspective-retraites/pkg/validation"
	"github.com/spf13/cobra"
)

type sharedResult struct {
	Result interface{} `json:"result"`
	Share  string      `json:"share,omitempty"`
}

func newTemporalCmd(a *app) *cobra.Command {
	var (
		exampleID string
		withShare bool
	)

	cmd := &cobra.Command{
		Use:   "temporal [montant]",
		Short: "Exprimer un montant en durée de prestations retraites",
		Example: `  perspective-retraites temporal 1 000 000
  perspective-retraites temporal 12 500 000,50
  perspective-retraites temporal --example rafale`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if exampleID == "" && len(args) == 0 {
				return userError(validation.NewFieldError(validation.FieldAmount, validation.ErrEmpty, ""))
			}

			outcome, err := a.calc.Temporal(a.session, calculator.TemporalRequest{
				Amount:    strings.Join(args, " "),
				ExampleID: exampleID,
			})
			if err != nil {
				return userError(err)
			}
			return a.renderResult(cmd, constants.ModeTemporal, outcome, withShare, func(w *output.Writer) {
				w.Temporal(outcome)
			})
		},
	}

	cmd.Flags().StringVar(&exampleID, "example", "", "catalog example id (see \"examples\")")
	cmd.Flags().BoolVar(&withShare, "share", false, "also print the share message")
	return cmd
}

func newCompareCmd(a *app) *cobra.Command {
	var (
		exampleID    string
		period       string
		customPeriod string
		withShare    bool
	)

	cmd := &cobra.Command{
		Use:   "compare [prix]",
		Short: "Compter combien de fois un objet tient dans les prestations retraites",
		Example: `  perspective-retraites compare 1,20
  perspective-retraites compare --example rafale --period month
  perspective-retraites compare 30000 --period custom --custom-period 0,5`,
		RunE: func(cmd *cobra.Command, args []string) error {
			outcome, err := a.calc.Compare(a.session, calculator.ComparisonRequest{
				ExampleID:    exampleID,
				Price:        strings.Join(args, " "),
				Period:       period,
				CustomPeriod: customPeriod,
			})
			if err != nil {
				return userError(err)
			}

			return a.renderResult(cmd, constants.ModeFinancial, outcome, withShare, func(w *output.Writer) {
				w.Comparison(outcome)
			})
		},
	}

	cmd.Flags().StringVar(&exampleID, "example", "", "catalog example id supplying the price")
	cmd.Flags().StringVar(&period, "period", "year", periodUsage())
	cmd.Flags().StringVar(&customPeriod, "custom-period", "", "fraction of a year used with --period custom")
	cmd.Flags().BoolVar(&withShare, "share", false, "also print the share message")
	return cmd
}

func newExampleCmd(a *app) *cobra.Command {
	var count int

	cmd := &cobra.Command{
		Use:   "example",
		Short: "Calculer la durée d'un exemple aléatoire",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if count < 1 {
				return fmt.Errorf("--count must be at least 1, got %d", count)
			}

			outcomes := make([]calculator.TemporalOutcome, 0, count)
			for i := 0; i < count; i++ {
				outcome, err := a.calc.RandomTemporal(a.session)
				if err != nil {
					return err
				}
				outcomes = append(outcomes, outcome)
			}

			return a.render(cmd.OutOrStdout(), outcomes, func(w *output.Writer) {
				for i, outcome := range outcomes {
					if i > 0 {
						w.Message("")
					}
					w.Temporal(outcome)
				}
			})
		},
	}

	cmd.Flags().IntVarP(&count, "count", "n", 1, "number of examples to draw")
	return cmd
}

func newExamplesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "examples",
		Short: "Lister les exemples du catalogue",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			list := a.calc.Examples().All()
			return a.render(cmd.OutOrStdout(), list, func(w *output.Writer) {
				w.Examples(list)
			})
		},
	}
}

func newStatsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Afficher le nombre de calculs effectués",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			total := a.counter.Value()
			return a.render(cmd.OutOrStdout(), map[string]int64{"calculationCount": total}, func(w *output.Writer) {
				w.CalculationCount(total)
			})
		},
	}
}

// renderResult prints a calculation result, followed by the share message
// of mode when withShare is set.
func (a *app) renderResult(cmd *cobra.Command, mode string, result interface{}, withShare bool, pretty func(*output.Writer)) error {
	var message string
	if withShare {
		var err error
		message, err = share.Message(mode, *a.session, a.conf.Share.URL)
		if err != nil {
			return err
		}
	}
	return a.render(cmd.OutOrStdout(), sharedResult{Result: result, Share: message}, func(w *output.Writer) {
		pretty(w)
		if message != "" {
			w.Message("\n" + message)
		}
	})
}

// userError replaces a field error with its French message.
func userError(err error) error {
	if fieldErr, ok := validation.AsFieldError(err); ok {
		return fmt.Errorf("%s (%w)", fieldErr.Message(), err)
	}
	return err
}

func periodUsage() string {
	names := make([]string, 0, len(equivalence.Periods())+1)
	for _, p := range equivalence.Periods() {
		names = append(names, p.Name)
	}
	names = append(names, equivalence.PeriodCustom)
	return "period: " + strings.Join(names, ", ") + ", or a fraction of a year"
}
