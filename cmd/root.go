// =============================================================================
// Product ETL - Root Command
// =============================================================================
//
// This file defines the root command for the Cobra CLI. All other commands
// are attached to it.
//
// COBRA CLI STRUCTURE:
//   rootCmd (productetl)
//   ├── runCmd (productetl run)
//   └── versionCmd (productetl version)
//
// CONFIGURATION:
//   Before any subcommand runs (except version), the root command:
//   1. Loads the YAML configuration (--config)
//   2. Builds the zap logger (log_level, or debug with --verbose)
//
// =============================================================================

package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/ginjaninja78/product-etl/internal/config"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// =============================================================================
// GLOBAL VARIABLES
// =============================================================================

// cfgFile holds the path to the configuration file.
var cfgFile string

// verbose enables debug logging when set to true.
var verbose bool

// appConfig is the configuration loaded before a subcommand runs.
var appConfig *config.MainConfig

// logger is shared by all commands. Diagnostics go to stderr.
var logger = zap.NewNop()

// skipConfigAnnotation marks commands that run without loading the
// configuration file.
const skipConfigAnnotation = "productetl/skip-config"

// reportedError wraps an error that has already been shown to the user.
type reportedError struct {
	err error
}

func (e *reportedError) Error() string { return e.err.Error() }

func (e *reportedError) Unwrap() error { return e.err }

// =============================================================================
// ROOT COMMAND DEFINITION
// =============================================================================

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "productetl",
	Short: "Product ETL - Transform product CSV exports and classify prices",
	Long: `Product ETL reads a product file (ProductID,Name,Price,Category), applies
the pricing rules to every row and writes a new file with a PriceRange column.

Rules, in order:
  - Names are upper-cased
  - Electronics get a 10% discount
  - Prices are rounded to 2 decimals, half-up
  - Electronics above 500.00 become "Premium Electronics"
  - PriceRange is Low, Medium, High or Premium

Malformed rows are skipped and reported. A missing input file ends the run
without touching the output.

Example Usage:
  productetl run                                  # data/products.csv -> data/transformed_products.csv
  productetl run --input in.csv --output out.xlsx # write a workbook
  productetl run --dry-run -v                     # transform and report only`,

	SilenceErrors: true,
	SilenceUsage:  true,

	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if _, ok := cmd.Annotations[skipConfigAnnotation]; ok {
			return nil
		}

		cfg, err := config.LoadMainConfig(cfgFile, cmd.Flags().Changed("config"))
		if err != nil {
			return err
		}
		appConfig = cfg

		logger, err = newLogger(cfg.LogLevel, verbose)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},

	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},

	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

// =============================================================================
// EXECUTE FUNCTION
// =============================================================================

// Execute runs the root command. It is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		var reported *reportedError
		if !errors.As(err, &reported) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}

// newLogger builds the production logger at the given level. Sampling is
// disabled so every skipped row is logged.
func newLogger(level string, verbose bool) (*zap.Logger, error) {
	zcfg := zap.NewProductionConfig()
	zcfg.Sampling = nil

	atomic, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, err
	}
	zcfg.Level = atomic
	if verbose {
		zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}

	return zcfg.Build()
}

// =============================================================================
// INITIALIZATION
// =============================================================================

// init sets up the global flags.
func init() {
	rootCmd.PersistentFlags().StringVar(
		&cfgFile,
		"config",
		"config.yaml",
		"Path to the configuration file (optional unless set explicitly)",
	)

	rootCmd.PersistentFlags().BoolVarP(
		&verbose,
		"verbose",
		"v",
		false,
		"Enable debug logging",
	)
}
