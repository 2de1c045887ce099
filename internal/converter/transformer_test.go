package converter

import (
	"testing"

	"github.com/ginjaninja78/product-etl/internal/types"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRecord(name, price, category string) *types.Record {
	return types.NewRecord(1, name, decimal.RequireFromString(price), category)
}

func TestTransform(t *testing.T) {
	tests := []struct {
		name         string
		in           *types.Record
		wantName     string
		wantPrice    string
		wantCategory string
		wantRange    string
	}{
		{"discount rounds half up", newRecord("cable", "2.345", "Electronics"), "CABLE", "2.11", "Electronics", RangeLow},
		{"discounted to exactly 500 stays electronics", newRecord("tv", "555.56", "Electronics"), "TV", "500.00", "Electronics", RangeHigh},
		{"discounted just above 500 becomes premium", newRecord("tv", "555.57", "Electronics"), "TV", "500.01", CategoryPremiumElectronics, RangePremium},
		{"laptop", newRecord("Laptop", "999.99", "Electronics"), "LAPTOP", "899.99", CategoryPremiumElectronics, RangePremium},
		{"non electronics above 500 untouched", newRecord("Sofa", "600.00", "Furniture"), "SOFA", "600.00", "Furniture", RangePremium},
		{"category match ignores case", newRecord("Phone", "1000", "eLeCtRoNiCs"), "PHONE", "900.00", CategoryPremiumElectronics, RangePremium},
		{"price rounded without discount", newRecord("pen", "1.005", "Office"), "PEN", "1.01", "Office", RangeLow},
		{"range uses discounted price", newRecord("router", "110.00", "Electronics"), "ROUTER", "99.00", "Electronics", RangeMedium},
		{"empty name", newRecord("", "50", "Toys"), "", "50.00", "Toys", RangeMedium},
		{"non ascii name", newRecord("straße", "3", "Books"), "STRASSE", "3.00", "Books", RangeLow},
		{"negative price falls to low", newRecord("refund", "-20", "Office"), "REFUND", "-20.00", "Office", RangeLow},
	}

	tr := NewTransformer()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			original := tt.in.OriginalCategory

			got, err := tr.Transform(tt.in)
			require.NoError(t, err)
			assert.Same(t, tt.in, got)

			assert.Equal(t, tt.wantName, got.Name)
			assert.Equal(t, tt.wantPrice, FormatPrice(got.Price))
			assert.Equal(t, tt.wantCategory, got.Category)
			assert.Equal(t, tt.wantRange, got.PriceRange)
			assert.Equal(t, original, got.OriginalCategory)
			assert.Equal(t, int64(1), got.ID)
		})
	}
}

func TestTransformUsesOriginalCategoryForPremium(t *testing.T) {
	// Current category already changed away from Electronics: no discount,
	// but the original category still drives recategorization.
	r := newRecord("camera", "800", "Electronics")
	r.Category = "Photo"

	_, err := NewTransformer().Transform(r)
	require.NoError(t, err)

	assert.Equal(t, "800.00", FormatPrice(r.Price))
	assert.Equal(t, CategoryPremiumElectronics, r.Category)

	// And the reverse: a record that was never Electronics is not promoted.
	r = newRecord("camera", "800", "Photo")
	r.Category = "Electronics"

	_, err = NewTransformer().Transform(r)
	require.NoError(t, err)

	assert.Equal(t, "720.00", FormatPrice(r.Price))
	assert.Equal(t, "Electronics", r.Category)
}

func TestTransformNilRecord(t *testing.T) {
	_, err := NewTransformer().Transform(nil)
	assert.ErrorIs(t, err, ErrNilRecord)
}

func TestTransformerStepOrder(t *testing.T) {
	assert.Equal(t, []string{
		"uppercase_name",
		"electronics_discount",
		"round_price",
		"premium_recategorize",
		"price_range",
	}, NewTransformer().Steps())
}
