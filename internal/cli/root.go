// Package cli implements the perspective-retraites command line.
package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/iwvelando/perspective-retraites/internal/calculator"
	"github.com/iwvelando/perspective-retraites/internal/config"
	"github.com/iwvelando/perspective-retraites/internal/examples"
	"github.com/iwvelando/perspective-retraites/internal/session"
	"github.com/iwvelando/perspective-retraites/internal/storage"
	"github.com/iwvelando/perspective-retraites/pkg/constants"
	"github.com/iwvelando/perspective-retraites/pkg/output"
	"github.com/iwvelando/perspective-retraites/pkg/validation"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// app is the state shared by every command of one invocation.
type app struct {
	version string

	configPath   string
	logLevel     string
	outputFormat string

	conf      *config.Configuration
	logger    *zap.Logger
	overrides examples.OverrideReport
	store     storage.CounterStore
	counter   *session.Counter
	calc      *calculator.Calculator
	session   *session.Session
}

// NewRootCmd creates the root command and its subcommands.
func NewRootCmd(version string) *cobra.Command {
	return (&app{version: version}).rootCmd()
}

// Execute runs the command line with args and releases storage and logger
// whatever the outcome, including failed commands.
func Execute(ctx context.Context, version string, args []string) error {
	a := &app{version: version}
	cmd := a.rootCmd()
	cmd.SetArgs(args)
	defer a.teardown()
	return cmd.ExecuteContext(ctx)
}

func (a *app) rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "perspective-retraites",
		Short: "Mettre les montants publics en perspective des prestations retraites",
		Long: `perspective-retraites exprime un montant en euros comme la durée pendant
laquelle les prestations retraites de 2025 (420 milliards d'euros par an) le
dépensent, ou compte combien de fois un objet tient dans ces prestations.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			a.teardown()
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&a.configPath, "config", constants.DefaultConfigFile, "path to configuration file")
	flags.StringVar(&a.logLevel, "log-level", "", "log level override (debug, info, warn, error)")
	flags.StringVarP(&a.outputFormat, "output", "o", "", "output format override: pretty, json")

	cmd.AddCommand(
		newTemporalCmd(a),
		newCompareCmd(a),
		newExampleCmd(a),
		newExamplesCmd(a),
		newStatsCmd(a),
		newServeCmd(a),
		newValidateCmd(a),
	)
	return cmd
}

func (a *app) setup(cmd *cobra.Command) error {
	var err error
	if cmd.Flags().Changed("config") {
		a.conf, err = config.LoadConfiguration(a.configPath)
	} else {
		a.conf, err = config.LoadOptionalConfiguration(a.configPath)
	}
	if err != nil {
		return fmt.Errorf("failed to load configuration at %s: %w", a.configPath, err)
	}

	a.logger, err = initializeLogger(a.conf.Logging, a.logLevel)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	if a.outputFormat == "" {
		a.outputFormat = a.conf.Output.Format
	}
	if a.outputFormat == "" {
		a.outputFormat = constants.OutputFormatPretty
	}
	if err := validation.ValidateOutputFormat(a.outputFormat); err != nil {
		return err
	}

	for _, warning := range a.conf.ValidateConfiguration() {
		a.logger.Warn("Configuration warning: "+warning,
			zap.String("op", "cli.setup"),
		)
	}

	store, err := examples.NewStore(examples.DefaultCatalog())
	if err != nil {
		return fmt.Errorf("failed to build example catalog: %w", err)
	}
	a.overrides, err = examples.LoadOverridesFile(a.logger, store, a.conf.Examples.OverridesFile)
	if err != nil {
		return err
	}

	a.openStorage()
	a.counter = session.NewCounter(a.logger, a.store, a.conf.Storage.PersistDelay)
	a.counter.Load(contextOf(cmd))

	a.calc = calculator.New(a.logger, store, a.counter)
	a.session = session.New(uuid.NewString())
	return nil
}

// openStorage opens the durable counter store. A failure degrades to an
// in-memory counter.
func (a *app) openStorage() {
	if a.conf.Storage.Path == "" {
		return
	}
	store, err := storage.NewSQLiteStore(a.conf.Storage.Path)
	if err != nil {
		a.logger.Warn("calculation count will not be persisted",
			zap.String("op", "cli.openStorage"),
			zap.String("path", a.conf.Storage.Path),
			zap.Error(err),
		)
		return
	}
	a.store = store
}

// teardown may run twice: after a successful command and from Execute.
func (a *app) teardown() {
	if a.counter != nil {
		a.counter.Close()
	}
	if a.store != nil {
		if err := a.store.Close(); err != nil {
			a.logger.Warn("failed to close storage",
				zap.String("op", "cli.teardown"),
				zap.Error(err),
			)
		}
		a.store = nil
	}
	if a.logger != nil {
		_ = a.logger.Sync()
	}
}

// render writes v as JSON, or hands a Writer to pretty in pretty mode.
func (a *app) render(out io.Writer, v interface{}, pretty func(*output.Writer)) error {
	if a.outputFormat == constants.OutputFormatJSON {
		return output.JSON(out, v)
	}
	pretty(output.NewWriter(out))
	return nil
}

func contextOf(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
