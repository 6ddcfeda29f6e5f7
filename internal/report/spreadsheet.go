package report

import (
	"fmt"
	"io"

	"ssshep/expensepro/internal/models"

	"github.com/xuri/excelize/v2"
)

// SheetName is the worksheet the transactions are written to.
const SheetName = "Transactions"

var columnWidths = []float64{12, 20, 25, 15, 30, 15}

// SpreadsheetWriter writes the transaction export as an XLSX workbook.
type SpreadsheetWriter struct{}

// NewSpreadsheetWriter returns a SpreadsheetWriter.
func NewSpreadsheetWriter() *SpreadsheetWriter {
	return &SpreadsheetWriter{}
}

// Write renders transactions to w as a single-sheet workbook.
func (s *SpreadsheetWriter) Write(w io.Writer, transactions []models.Transaction) error {
	rows, err := ToRows(transactions)
	if err != nil {
		return err
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), SheetName); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}

	header := make([]interface{}, len(Headers))
	for i, h := range Headers {
		header[i] = h
	}
	if err := f.SetSheetRow(SheetName, "A1", &header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		// Spreadsheet cells hold float64; the CSV export keeps the exact text.
		amount, _ := row.Value.Float64()
		values := []interface{}{row.Date, row.CustomerName, row.ShopName, row.BillType, row.Purpose, amount}
		if err := f.SetSheetRow(SheetName, cell, &values); err != nil {
			return fmt.Errorf("write row %d: %w", i+2, err)
		}
	}

	for i, width := range columnWidths {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(SheetName, col, col, width); err != nil {
			return fmt.Errorf("set column width: %w", err)
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}
