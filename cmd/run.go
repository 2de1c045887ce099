// =============================================================================
// Product ETL - Run Command
// =============================================================================
//
// This file defines the 'run' command, which executes the pipeline once.
//
// COMMAND USAGE:
//   productetl run [flags]
//
// FLAGS:
//   --input    : Product file to read (overrides input_file)
//   --output   : File to write (overrides output_file)
//   --format   : Output format, csv or xlsx (overrides output_format). When
//                omitted and --output ends in .xlsx, xlsx is used.
//   --dry-run  : Transform and report without writing output
//
// EXIT STATUS:
//   0 when the output was written (skipped rows do not change this)
//   1 when the input is missing or unreadable, or the output cannot be written
//
// =============================================================================

package cmd

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ginjaninja78/product-etl/internal/config"
	"github.com/ginjaninja78/product-etl/internal/converter"
	"github.com/ginjaninja78/product-etl/internal/report"
	"github.com/spf13/cobra"
)

// =============================================================================
// COMMAND FLAGS
// =============================================================================

var (
	inputFile    string
	outputFile   string
	outputFormat string
	dryRun       bool
)

// =============================================================================
// RUN COMMAND DEFINITION
// =============================================================================

// runCmd represents the 'run' command.
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Transform the product file",
	Long: `The run command reads the product file, transforms every valid row and
writes the result with a PriceRange column.

Skipped rows are logged to stderr with their line number, reason and raw
content. The run summary is printed to stdout.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPipeline(cmd)
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVar(&inputFile, "input", "", "Product file to read")
	runCmd.Flags().StringVar(&outputFile, "output", "", "File to write")
	runCmd.Flags().StringVar(&outputFormat, "format", "", "Output format: csv or xlsx")
	runCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Transform and report without writing output")
}

// =============================================================================
// MAIN PROCESSING FUNCTION
// =============================================================================

// runPipeline applies the flags on top of the loaded configuration and runs
// the converter.
func runPipeline(cmd *cobra.Command) error {
	cfg, err := effectiveConfig(appConfig)
	if err != nil {
		return err
	}

	reporter := report.NewConsoleReporter(cmd.OutOrStdout(), logger)
	conv := converter.New(cfg, converter.Options{
		DryRun:   dryRun,
		Reporter: reporter,
		Logger:   logger,
	})

	result := conv.Run()
	if result.Error != nil {
		return &reportedError{err: result.Error}
	}
	return nil
}

// effectiveConfig returns a copy of base with the command line flags applied.
func effectiveConfig(base *config.MainConfig) (*config.MainConfig, error) {
	if base == nil {
		base = config.Default()
	}
	cfg := *base

	if inputFile != "" {
		cfg.InputFile = inputFile
	}
	if outputFile != "" {
		cfg.OutputFile = outputFile
		if outputFormat == "" && strings.EqualFold(filepath.Ext(outputFile), ".xlsx") {
			cfg.OutputFormat = config.FormatXLSX
		}
	}
	if outputFormat != "" {
		cfg.OutputFormat = strings.ToLower(outputFormat)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	return &cfg, nil
}
