// =============================================================================
// Product ETL - Converter Module
// =============================================================================
//
// This module contains the pipeline for one product file, from raw lines to
// the written output.
//
// CONVERSION PIPELINE:
//   1. Read the input file as raw lines (a missing file ends the run)
//   2. Drop the header line
//   3. Parse every non-blank data line into a Record or a Skip
//   4. Transform each Record and render it as an output row
//   5. Write the header plus rows as CSV or XLSX
//   6. Report the run summary
//
// ROW ISOLATION:
//   A malformed line is counted, reported and skipped. It never stops the
//   run and never affects any other line.
//
// =============================================================================

package converter

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/ginjaninja78/product-etl/internal/config"
	"github.com/ginjaninja78/product-etl/internal/csvparser"
	"github.com/ginjaninja78/product-etl/internal/report"
	"github.com/ginjaninja78/product-etl/internal/types"
	"github.com/ginjaninja78/product-etl/internal/xlsxwriter"
	"github.com/ginjaninja78/product-etl/pkg/utils"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// OutputHeader is always the first output line, even with no data rows.
const OutputHeader = "ProductID,Name,Price,Category,PriceRange"

// ErrCountersUnbalanced means rows read != rows transformed + rows skipped.
// The run stops before writing when this happens.
var ErrCountersUnbalanced = errors.New("row counters do not balance")

// =============================================================================
// RESULT STRUCTURE
// =============================================================================

// Result represents the outcome of one run.
type Result struct {
	// RunID identifies the run in logs.
	RunID string

	// InputFile is the file that was read.
	InputFile string

	// OutputFile is the file that was written. Empty on failure or dry run.
	OutputFile string

	// Success indicates whether the run completed.
	Success bool

	// Error is set when the run did not complete.
	Error error

	// Counters holds the row counts computed so far.
	Counters types.RunCounters

	// ProcessingTime is the time taken by the run.
	ProcessingTime time.Duration
}

// =============================================================================
// ROW PROCESSING
// =============================================================================

// ProcessLines runs parse and transform over the raw lines of one file.
//
// PARAMETERS:
//   - lines: Every line of the input, header first. May be empty.
//   - transformer: The rule set applied to each parsed record.
//   - reporter: Receives one RowSkipped call per malformed line, in order.
//
// RETURNS:
//   - The output lines: OutputHeader followed by one row per transformed
//     record, in input order.
//   - The run counters.
//   - An error only if the transformer rejects a record, which the parser
//     never allows.
func ProcessLines(lines []string, transformer *Transformer, reporter report.Reporter) ([]string, types.RunCounters, error) {
	var counters types.RunCounters
	output := []string{OutputHeader}

	if len(lines) == 0 {
		return output, counters, nil
	}

	// lines[0] is the header. Data line i is line number i+1 in the file.
	for i := 1; i < len(lines); i++ {
		raw := lines[i]
		if csvparser.IsBlank(raw) {
			continue
		}

		counters.RowsRead++
		outcome := csvparser.ParseRow(raw, i+1)
		if !outcome.OK() {
			counters.RowsSkipped++
			reporter.RowSkipped(*outcome.Skip)
			continue
		}

		record, err := transformer.Transform(outcome.Record)
		if err != nil {
			return nil, counters, fmt.Errorf("line %d: %w", i+1, err)
		}

		counters.RowsTransformed++
		output = append(output, RenderRow(record))
	}

	return output, counters, nil
}

// RenderRow builds the output line for a transformed record:
// ProductID,Name,Price,Category,PriceRange with the price at two decimals.
func RenderRow(r *types.Record) string {
	return strings.Join([]string{
		strconv.FormatInt(r.ID, 10),
		r.Name,
		FormatPrice(r.Price),
		r.Category,
		r.PriceRange,
	}, csvparser.Delimiter)
}

// =============================================================================
// CONVERTER STRUCTURE
// =============================================================================

// Options configures a Converter.
type Options struct {
	// DryRun runs extract, transform and report without writing output.
	DryRun bool

	// Reporter receives diagnostics and the summary. Required.
	Reporter report.Reporter

	// Logger is used for progress logging. Nil means no logging.
	Logger *zap.Logger
}

// Converter runs the pipeline for the configured input file.
type Converter struct {
	config      *config.MainConfig
	dryRun      bool
	transformer *Transformer
	reporter    report.Reporter
	logger      *zap.Logger
}

// New creates a new Converter.
func New(cfg *config.MainConfig, opts Options) *Converter {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Converter{
		config:      cfg,
		dryRun:      opts.DryRun,
		transformer: NewTransformer(),
		reporter:    opts.Reporter,
		logger:      logger,
	}
}

// =============================================================================
// MAIN PROCESSING FUNCTION
// =============================================================================

// Run executes the pipeline once.
//
// Every failure is handed to the reporter exactly once and returned in
// Result.Error. A missing or unreadable input never touches the output file.
func (c *Converter) Run() Result {
	startTime := time.Now()
	result := Result{
		RunID:     uuid.NewString(),
		InputFile: c.config.InputFile,
	}
	logger := c.logger.With(zap.String("run_id", result.RunID))

	fail := func(err error) Result {
		result.Error = err
		result.ProcessingTime = time.Since(startTime)
		c.reporter.Failure(err, result.Counters)
		return result
	}

	// =========================================================================
	// STEP 1: EXTRACT
	// =========================================================================

	logger.Info("processing file", zap.String("input", c.config.InputFile))

	lines, err := utils.ReadLines(c.config.InputFile)
	if err != nil {
		return fail(fmt.Errorf("failed to read input: %w", err))
	}

	logger.Debug("read input", zap.Int("lines", len(lines)))

	// =========================================================================
	// STEP 2: PARSE AND TRANSFORM
	// =========================================================================

	logger.Debug("applying rules", zap.Strings("steps", c.transformer.Steps()))

	output, counters, err := ProcessLines(lines, c.transformer, c.reporter)
	result.Counters = counters
	if err != nil {
		return fail(fmt.Errorf("failed to transform: %w", err))
	}
	if !counters.Balanced() {
		return fail(fmt.Errorf("%w: read %d, transformed %d, skipped %d", ErrCountersUnbalanced,
			counters.RowsRead, counters.RowsTransformed, counters.RowsSkipped))
	}

	logger.Debug("transformed rows",
		zap.Int("rows_read", counters.RowsRead),
		zap.Int("rows_transformed", counters.RowsTransformed),
		zap.Int("rows_skipped", counters.RowsSkipped),
	)

	// =========================================================================
	// STEP 3: LOAD
	// =========================================================================

	if c.dryRun {
		logger.Info("dry run, output not written")
	} else {
		if utils.FileExists(c.config.OutputFile) {
			logger.Debug("replacing existing output", zap.String("output", c.config.OutputFile))
		}
		if err := c.writeOutput(output); err != nil {
			return fail(fmt.Errorf("failed to write output: %w", err))
		}
		result.OutputFile = c.config.OutputFile
		logger.Info("wrote output",
			zap.String("output", c.config.OutputFile),
			zap.String("format", c.config.OutputFormat),
		)
	}

	// =========================================================================
	// COMPLETE
	// =========================================================================

	result.Success = true
	result.ProcessingTime = time.Since(startTime)
	c.reporter.Summary(result.Counters, result.OutputFile)

	return result
}

// writeOutput writes the output lines in the configured format.
func (c *Converter) writeOutput(lines []string) error {
	switch c.config.OutputFormat {
	case config.FormatXLSX:
		return xlsxwriter.WriteWorkbook(c.config.OutputFile, c.config.SheetName, lines)
	default:
		return utils.WriteLines(c.config.OutputFile, lines)
	}
}
