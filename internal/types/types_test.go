package types

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRecordSnapshotsCategory(t *testing.T) {
	r := NewRecord(3, "Phone", decimal.RequireFromString("199.99"), "Electronics")

	assert.Equal(t, "Electronics", r.OriginalCategory)
	assert.Empty(t, r.PriceRange)

	r.Category = "Premium Electronics"
	assert.Equal(t, "Electronics", r.OriginalCategory)
}

func TestParseOutcome(t *testing.T) {
	ok := Parsed(NewRecord(1, "a", decimal.Zero, "b"))
	assert.True(t, ok.OK())
	assert.Nil(t, ok.Skip)

	skip := Skipped(4, ReasonBadNumber, "7,Widget,abc,Tools", "price")
	assert.False(t, skip.OK())
	assert.Nil(t, skip.Record)
	require.NotNil(t, skip.Skip)
	assert.Equal(t, 4, skip.Skip.Line)
	assert.Equal(t, ReasonBadNumber, skip.Skip.Reason)
	assert.Equal(t, "7,Widget,abc,Tools", skip.Skip.Raw)
}

func TestRunCountersBalanced(t *testing.T) {
	assert.True(t, RunCounters{}.Balanced())
	assert.True(t, RunCounters{RowsRead: 5, RowsTransformed: 3, RowsSkipped: 2}.Balanced())
	assert.False(t, RunCounters{RowsRead: 5, RowsTransformed: 3}.Balanced())
}
