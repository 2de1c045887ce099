// =============================================================================
// Product ETL - Price Rules
// =============================================================================
//
// This module holds the price arithmetic shared by the transformer and the
// output writers.
//
// ROUNDING:
//   Prices are rounded to 2 decimal places, ties away from zero. Prices are
//   never negative in practice, so this is half-up.
//
// PRICE RANGES (upper edge inclusive):
//   Low     : price <= 10.00
//   Medium  : 10.00 < price <= 100.00
//   High    : 100.00 < price <= 500.00
//   Premium : price > 500.00
//
// FORMATTING:
//   Prices are rendered in plain notation with exactly 2 decimals.
//
// =============================================================================

package converter

import (
	"github.com/shopspring/decimal"
)

// Price range labels.
const (
	RangeLow     = "Low"
	RangeMedium  = "Medium"
	RangeHigh    = "High"
	RangePremium = "Premium"
)

// pricePlaces is the number of decimal places prices are rounded to.
const pricePlaces = 2

var (
	lowCeiling    = decimal.RequireFromString("10.00")
	mediumCeiling = decimal.RequireFromString("100.00")
	highCeiling   = decimal.RequireFromString("500.00")
)

// RoundPrice rounds to two places, ties away from zero (2.345 -> 2.35).
func RoundPrice(price decimal.Decimal) decimal.Decimal {
	return price.Round(pricePlaces)
}

// ClassifyPrice maps a price to its range label. Each bucket includes its
// upper edge: 10.00 is Low, 100.00 is Medium, 500.00 is High.
// Negative prices fall through to Low.
func ClassifyPrice(price decimal.Decimal) string {
	p := RoundPrice(price)

	switch {
	case p.LessThanOrEqual(lowCeiling):
		return RangeLow
	case p.LessThanOrEqual(mediumCeiling):
		return RangeMedium
	case p.LessThanOrEqual(highCeiling):
		return RangeHigh
	default:
		return RangePremium
	}
}

// FormatPrice renders a price with exactly two decimals in plain notation.
func FormatPrice(price decimal.Decimal) string {
	return price.StringFixed(pricePlaces)
}
