// =============================================================================
// Product ETL - XLSX Output Writer
// =============================================================================
//
// This module writes the transformed rows as an Excel workbook instead of a
// CSV file. It receives the same ordered output lines as the CSV writer:
//
//   Row 1    : ProductID,Name,Price,Category,PriceRange (header, as text)
//   Row 2..n : one product per row
//
// The Price column of data rows is written as a number cell with a two
// decimal "0.00" format so spreadsheet users can sort and sum it. Every other
// cell is text. The workbook has a single sheet.
//
// =============================================================================

package xlsxwriter

import (
	"fmt"
	"io"
	"strings"

	"github.com/ginjaninja78/product-etl/internal/csvparser"
	"github.com/ginjaninja78/product-etl/pkg/utils"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

// =============================================================================
// CONSTANTS
// =============================================================================

// DefaultSheetName is used when no sheet name is configured.
const DefaultSheetName = "Products"

// priceColumn is the 0-based position of the price in an output row.
const priceColumn = 2

// numFmtTwoDecimals is the built-in Excel number format "0.00".
const numFmtTwoDecimals = 2

// =============================================================================
// WRITER FUNCTIONS
// =============================================================================

// WriteWorkbook writes lines to an .xlsx file at path, atomically.
//
// PARAMETERS:
//   - path: The target file. Its directory is created if missing.
//   - sheet: The sheet name. Empty means DefaultSheetName.
//   - lines: The output lines, header first.
func WriteWorkbook(path, sheet string, lines []string) error {
	return utils.WriteFileAtomic(path, func(w io.Writer) error {
		return Encode(w, sheet, lines)
	})
}

// Encode builds the workbook in memory and writes it to w.
func Encode(w io.Writer, sheet string, lines []string) error {
	if sheet == "" {
		sheet = DefaultSheetName
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), sheet); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}

	priceStyle, err := f.NewStyle(&excelize.Style{NumFmt: numFmtTwoDecimals})
	if err != nil {
		return fmt.Errorf("failed to create price style: %w", err)
	}

	for i, line := range lines {
		rowNumber := i + 1
		cells := strings.Split(line, csvparser.Delimiter)

		values := make([]interface{}, len(cells))
		for col, cell := range cells {
			values[col] = cell
		}

		firstCell, err := excelize.CoordinatesToCellName(1, rowNumber)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, firstCell, &values); err != nil {
			return fmt.Errorf("failed to write row %d: %w", rowNumber, err)
		}

		// Header row stays text.
		if i == 0 || len(cells) <= priceColumn {
			continue
		}

		if err := setPriceCell(f, sheet, rowNumber, cells[priceColumn], priceStyle); err != nil {
			return err
		}
	}

	if err := f.SetColWidth(sheet, "A", "E", 18); err != nil {
		return err
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to encode workbook: %w", err)
	}
	return nil
}

// setPriceCell rewrites the price cell of a data row as a formatted number.
// Values that are not decimals are left as text.
func setPriceCell(f *excelize.File, sheet string, rowNumber int, raw string, style int) error {
	price, err := decimal.NewFromString(raw)
	if err != nil {
		return nil
	}

	cell, err := excelize.CoordinatesToCellName(priceColumn+1, rowNumber)
	if err != nil {
		return err
	}
	if err := f.SetCellFloat(sheet, cell, price.InexactFloat64(), 2, 64); err != nil {
		return fmt.Errorf("failed to write price in row %d: %w", rowNumber, err)
	}
	return f.SetCellStyle(sheet, cell, cell, style)
}
