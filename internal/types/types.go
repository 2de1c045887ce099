// =============================================================================
// Product ETL - Shared Types
// =============================================================================
//
// This package contains the types shared by the parser, the transformer and
// the pipeline runner. Keeping them here avoids import cycles between:
//   - csvparser
//   - converter
//   - report
//
// =============================================================================

package types

import (
	"github.com/shopspring/decimal"
)

// =============================================================================
// RECORD
// =============================================================================

// Record is one parsed product row.
//
// Name, Price, Category and PriceRange are rewritten by the transformer.
// OriginalCategory is captured by NewRecord and must never be reassigned.
type Record struct {
	// ID is the product identifier from the first column.
	ID int64

	// Name is the product name. Upper-cased during transformation.
	Name string

	// Price is the exact decimal price. Discounted and rounded during
	// transformation.
	Price decimal.Decimal

	// Category is the current category. May become "Premium Electronics".
	Category string

	// OriginalCategory is the category as read from the input row.
	OriginalCategory string

	// PriceRange is the bucket label derived from the final price.
	// Empty until the record has been transformed.
	PriceRange string
}

// NewRecord builds a Record and snapshots the category as OriginalCategory.
func NewRecord(id int64, name string, price decimal.Decimal, category string) *Record {
	return &Record{
		ID:               id,
		Name:             name,
		Price:            price,
		Category:         category,
		OriginalCategory: category,
	}
}

// =============================================================================
// PARSE OUTCOME
// =============================================================================

// SkipReason is the short code attached to a skipped row.
type SkipReason string

const (
	// ReasonWrongFieldCount means the line did not split into exactly four fields.
	ReasonWrongFieldCount SkipReason = "wrong-field-count"

	// ReasonBadNumber means the identifier or the price did not parse.
	ReasonBadNumber SkipReason = "bad-number"

	// ReasonOther covers any other malformed line (e.g. invalid UTF-8).
	ReasonOther SkipReason = "other"
)

// Skip describes a data line that could not become a Record.
type Skip struct {
	// Line is the 1-based line number in the input file (the header is line 1).
	Line int

	// Reason is the short reason code.
	Reason SkipReason

	// Raw is the offending line exactly as read.
	Raw string

	// Detail is an optional human-readable explanation.
	Detail string
}

// ParseOutcome is the result of parsing one data line: exactly one of
// Record or Skip is set. Build it with Parsed or Skipped.
type ParseOutcome struct {
	Record *Record
	Skip   *Skip
}

// Parsed wraps a successfully parsed record.
func Parsed(r *Record) ParseOutcome {
	return ParseOutcome{Record: r}
}

// Skipped wraps a skip event.
func Skipped(line int, reason SkipReason, raw, detail string) ParseOutcome {
	return ParseOutcome{Skip: &Skip{Line: line, Reason: reason, Raw: raw, Detail: detail}}
}

// OK reports whether the outcome carries a Record.
func (o ParseOutcome) OK() bool {
	return o.Record != nil && o.Skip == nil
}

// =============================================================================
// RUN COUNTERS
// =============================================================================

// RunCounters holds the per-run row counts.
type RunCounters struct {
	// RowsRead counts every non-blank data line handed to the parser.
	RowsRead int

	// RowsTransformed counts records that completed the full transform.
	RowsTransformed int

	// RowsSkipped counts skip events.
	RowsSkipped int
}

// Balanced reports whether RowsRead == RowsTransformed + RowsSkipped.
func (c RunCounters) Balanced() bool {
	return c.RowsRead == c.RowsTransformed+c.RowsSkipped
}
