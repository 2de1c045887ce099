// =============================================================================
// Product ETL - Transformation Engine
// =============================================================================
//
// This module applies the product business rules to a parsed Record. The
// rules always run in this order:
//
//   1. uppercase_name        : Upper-case the name (locale-invariant)
//   2. electronics_discount  : 10% off when the current category is Electronics
//   3. round_price           : Round the price to 2 places, half-up
//   4. premium_recategorize  : Original category Electronics and price > 500.00
//                              becomes "Premium Electronics"
//   5. price_range           : Derive the price range from the final price
//
// Category comparisons ignore case. The recategorization rule reads the
// original category, so a record that was never Electronics cannot become
// Premium Electronics.
//
// =============================================================================

package converter

import (
	"errors"
	"strings"

	"github.com/ginjaninja78/product-etl/internal/types"
	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// =============================================================================
// CONSTANTS
// =============================================================================

const (
	// CategoryElectronics is the category that receives the discount.
	CategoryElectronics = "Electronics"

	// CategoryPremiumElectronics replaces Electronics for expensive items.
	CategoryPremiumElectronics = "Premium Electronics"
)

var (
	// electronicsMultiplier is the price factor after the 10% discount.
	electronicsMultiplier = decimal.RequireFromString("0.90")

	// premiumThreshold must be strictly exceeded to recategorize.
	premiumThreshold = decimal.RequireFromString("500.00")
)

// ErrNilRecord is returned when the transformer is handed no record.
// The parser never produces one, so this indicates a programming error.
var ErrNilRecord = errors.New("transform: nil record")

// =============================================================================
// TRANSFORMER
// =============================================================================

// Step is a single named transformation rule.
type Step struct {
	// Name identifies the rule in debug logs.
	Name string

	// Apply mutates the record in place.
	Apply func(r *types.Record)
}

// Transformer applies the product rules to records.
type Transformer struct {
	steps []Step
}

// NewTransformer creates a Transformer with the product rule set.
func NewTransformer() *Transformer {
	upper := cases.Upper(language.Und)

	return &Transformer{
		steps: []Step{
			{Name: "uppercase_name", Apply: func(r *types.Record) {
				r.Name = upper.String(r.Name)
			}},
			{Name: "electronics_discount", Apply: func(r *types.Record) {
				if isElectronics(r.Category) {
					r.Price = r.Price.Mul(electronicsMultiplier)
				}
			}},
			{Name: "round_price", Apply: func(r *types.Record) {
				r.Price = RoundPrice(r.Price)
			}},
			{Name: "premium_recategorize", Apply: func(r *types.Record) {
				if isElectronics(r.OriginalCategory) && r.Price.GreaterThan(premiumThreshold) {
					r.Category = CategoryPremiumElectronics
				}
			}},
			{Name: "price_range", Apply: func(r *types.Record) {
				r.PriceRange = ClassifyPrice(r.Price)
			}},
		},
	}
}

// Steps returns the rule names in the order they are applied.
func (t *Transformer) Steps() []string {
	names := make([]string, len(t.steps))
	for i, s := range t.steps {
		names[i] = s.Name
	}
	return names
}

// Transform applies every rule to the record, in order, and returns the same
// record. Call it exactly once per record: the discount is not idempotent.
func (t *Transformer) Transform(r *types.Record) (*types.Record, error) {
	if r == nil {
		return nil, ErrNilRecord
	}

	for _, step := range t.steps {
		step.Apply(r)
	}

	return r, nil
}

// isElectronics reports whether a category is Electronics, ignoring case.
func isElectronics(category string) bool {
	return strings.EqualFold(category, CategoryElectronics)
}
