package xlsxwriter

import (
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestWriteWorkbook(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "transformed_products.xlsx")
	lines := []string{
		"ProductID,Name,Price,Category,PriceRange",
		"2,LAPTOP,899.99,Premium Electronics,Premium",
		"5,TV,500.00,Electronics,High",
	}

	require.NoError(t, WriteWorkbook(path, "", lines))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{DefaultSheetName}, f.GetSheetList())

	rows, err := f.GetRows(DefaultSheetName, excelize.Options{RawCellValue: true})
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, []string{"ProductID", "Name", "Price", "Category", "PriceRange"}, rows[0])
	assert.Equal(t, "LAPTOP", rows[1][1])
	assert.Equal(t, "Premium Electronics", rows[1][3])
	assert.Equal(t, "High", rows[2][4])

	assertPrice(t, "899.99", rows[1][2])
	assertPrice(t, "500.00", rows[2][2])

	cellType, err := f.GetCellType(DefaultSheetName, "C2")
	require.NoError(t, err)
	assert.NotEqual(t, excelize.CellTypeSharedString, cellType)
	assert.NotEqual(t, excelize.CellTypeInlineString, cellType)
}

func TestWriteWorkbookHeaderOnly(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.xlsx")

	require.NoError(t, WriteWorkbook(path, "Run", []string{"ProductID,Name,Price,Category,PriceRange"}))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Run")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "PriceRange", rows[0][4])
}

func assertPrice(t *testing.T, want, got string) {
	t.Helper()
	g, err := decimal.NewFromString(got)
	require.NoError(t, err)
	assert.True(t, decimal.RequireFromString(want).Equal(g), "want %s, got %s", want, got)
}
