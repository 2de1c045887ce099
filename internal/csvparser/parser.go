// =============================================================================
// Product ETL - Row Parser
// =============================================================================
//
// This module turns one raw input line into either a product Record or a
// typed Skip. It never returns an error: every malformed line is a value that
// the pipeline counts and reports, and the run always moves on to the next
// line.
//
// INPUT ROW FORMAT:
//   ProductID,Name,Price,Category
//
// RULES:
//   - The delimiter is a literal comma. Quoting and escaping are not supported,
//     so a comma inside a name produces the wrong number of fields.
//   - Exactly four fields are required.
//   - Fields are trimmed before parsing.
//   - ProductID must be an integer and Price an exact decimal whose exponent
//     lies within [MinPriceExponent, MaxPriceExponent].
//
// The header line is consumed by the pipeline and never reaches this parser.
//
// =============================================================================

package csvparser

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/ginjaninja78/product-etl/internal/types"
	"github.com/shopspring/decimal"
)

// =============================================================================
// CONSTANTS
// =============================================================================

// Delimiter separates fields in input and output rows.
const Delimiter = ","

// FieldCount is the number of fields in every input data row.
const FieldCount = 4

// Bounds on the exponent of a parsed price. Rounding and rendering scale by
// 10^|exponent|, so "1e-2000000000" is rejected instead of stalling the run.
const (
	MinPriceExponent = -30
	MaxPriceExponent = 30
)

// Field positions within an input row.
const (
	fieldID = iota
	fieldName
	fieldPrice
	fieldCategory
)

// =============================================================================
// PARSER FUNCTIONS
// =============================================================================

// IsBlank reports whether a line carries no data. Blank lines are not data
// rows: the pipeline neither parses nor counts them.
func IsBlank(line string) bool {
	return strings.TrimSpace(line) == ""
}

// SplitFields splits a line on the delimiter and trims every field.
// Empty trailing fields are kept, so "1,a,2," yields four fields.
func SplitFields(line string) []string {
	fields := strings.Split(line, Delimiter)
	for i := range fields {
		fields[i] = strings.TrimSpace(fields[i])
	}
	return fields
}

// ParseRow converts one raw data line into a ParseOutcome.
//
// PARAMETERS:
//   - raw: The line exactly as read (line terminator removed).
//   - lineNumber: The 1-based line number, used only for diagnostics.
//
// RETURNS:
//   - types.Parsed with a fresh Record whose OriginalCategory equals Category
//     and whose PriceRange is empty, or
//   - types.Skipped with one of the reason codes.
func ParseRow(raw string, lineNumber int) types.ParseOutcome {
	if !utf8.ValidString(raw) {
		return types.Skipped(lineNumber, types.ReasonOther, raw, "line is not valid UTF-8")
	}

	fields := SplitFields(raw)
	if len(fields) != FieldCount {
		return types.Skipped(lineNumber, types.ReasonWrongFieldCount, raw,
			fmt.Sprintf("expected %d fields, got %d", FieldCount, len(fields)))
	}

	id, err := strconv.ParseInt(fields[fieldID], 10, 64)
	if err != nil {
		return types.Skipped(lineNumber, types.ReasonBadNumber, raw,
			fmt.Sprintf("product id %q is not an integer", fields[fieldID]))
	}

	price, err := decimal.NewFromString(fields[fieldPrice])
	if err != nil {
		return types.Skipped(lineNumber, types.ReasonBadNumber, raw,
			fmt.Sprintf("price %q is not a decimal number", fields[fieldPrice]))
	}
	if exp := price.Exponent(); exp < MinPriceExponent || exp > MaxPriceExponent {
		return types.Skipped(lineNumber, types.ReasonBadNumber, raw, "price exponent out of range")
	}

	return types.Parsed(types.NewRecord(id, fields[fieldName], price, fields[fieldCategory]))
}
