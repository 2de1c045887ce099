// =============================================================================
// Product ETL - Run Reporter
// =============================================================================
//
// The reporter is the only place the pipeline talks to a human. It has two
// channels:
//   - diagnostics (skipped rows, failures) go to the structured logger, which
//     writes to stderr
//   - the run summary goes to the summary writer, normally stdout
//
// =============================================================================

package report

import (
	"fmt"
	"io"

	"github.com/ginjaninja78/product-etl/internal/types"
	"github.com/jedib0t/go-pretty/v6/table"
	"go.uber.org/zap"
)

// Reporter receives per-row diagnostics during a run and the outcome at the end.
type Reporter interface {
	// RowSkipped is called once per skipped data line, in input order.
	RowSkipped(skip types.Skip)

	// Summary is called once after the output has been written. An empty
	// output location means nothing was written (dry run).
	Summary(counters types.RunCounters, output string)

	// Failure is called instead of Summary when the run could not complete.
	Failure(err error, counters types.RunCounters)
}

// ConsoleReporter writes the summary as a table and diagnostics as log entries.
type ConsoleReporter struct {
	out    io.Writer
	logger *zap.Logger
}

// NewConsoleReporter creates a ConsoleReporter. A nil logger discards diagnostics.
func NewConsoleReporter(out io.Writer, logger *zap.Logger) *ConsoleReporter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ConsoleReporter{out: out, logger: logger}
}

// RowSkipped logs the skipped line with its number, reason code and raw text.
func (r *ConsoleReporter) RowSkipped(skip types.Skip) {
	r.logger.Warn("row skipped",
		zap.Int("line", skip.Line),
		zap.String("reason", string(skip.Reason)),
		zap.String("detail", skip.Detail),
		zap.String("raw", skip.Raw),
	)
}

// Summary prints the counters and where the output went.
func (r *ConsoleReporter) Summary(counters types.RunCounters, output string) {
	t := table.NewWriter()
	t.SetOutputMirror(r.out)
	t.SetStyle(table.StyleLight)
	t.SetTitle("Run Summary")
	t.AppendRows([]table.Row{
		{"Rows read", counters.RowsRead},
		{"Rows transformed", counters.RowsTransformed},
		{"Rows skipped", counters.RowsSkipped},
	})
	t.Render()

	if output == "" {
		_, _ = fmt.Fprintln(r.out, "Output not written (dry run)")
		return
	}
	_, _ = fmt.Fprintf(r.out, "Output written to: %s\n", output)
}

// Failure logs the error together with whatever counters were computed.
func (r *ConsoleReporter) Failure(err error, counters types.RunCounters) {
	r.logger.Error("run failed",
		zap.Error(err),
		zap.Int("rows_read", counters.RowsRead),
		zap.Int("rows_transformed", counters.RowsTransformed),
		zap.Int("rows_skipped", counters.RowsSkipped),
	)
}
