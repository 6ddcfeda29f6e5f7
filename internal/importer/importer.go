// Package importer reads transactions from spreadsheets and CSV files.
//
// The first row holds the column titles. Date, Customer Name, Bill Type,
// Purpose and Amount are required (matched case-insensitively); Shop Name is
// optional. Rows are validated one by one and the first bad row aborts the
// import with an *ledgererror.ImportRowError.
package importer

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"ssshep/expensepro/internal/currencyutils"
	"ssshep/expensepro/internal/dateutils"
	"ssshep/expensepro/internal/ledgererror"
	"ssshep/expensepro/internal/models"

	"github.com/gocarina/gocsv"
	"github.com/xuri/excelize/v2"
)

// Column titles.
const (
	ColumnDate     = "Date"
	ColumnCustomer = "Customer Name"
	ColumnShop     = "Shop Name"
	ColumnBillType = "Bill Type"
	ColumnPurpose  = "Purpose"
	ColumnAmount   = "Amount"
)

// RequiredColumns must all be present in the header row.
var RequiredColumns = []string{ColumnDate, ColumnCustomer, ColumnBillType, ColumnPurpose, ColumnAmount}

// ErrEmptyFile is returned when the input has no data rows.
var ErrEmptyFile = errors.New("the selected file is empty or in an unsupported format")

// MissingColumnsError lists required columns absent from the header row.
type MissingColumnsError struct {
	Columns []string
}

func (e *MissingColumnsError) Error() string {
	return "import file is missing required columns: " + strings.Join(e.Columns, ", ")
}

// FromSpreadsheet reads the first worksheet of an XLSX workbook.
func FromSpreadsheet(r io.Reader) ([]models.Transaction, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEmptyFile, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, ErrEmptyFile
	}
	rows, err := f.GetRows(sheets[0], excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("read sheet %s: %w", sheets[0], err)
	}
	return parseRows(rows, spreadsheetDate)
}

// FromCSV reads comma-separated text with a header row.
func FromCSV(r io.Reader) ([]models.Transaction, error) {
	return FromDelimited(r, ',')
}

// FromDelimited reads delimited text with a header row.
func FromDelimited(r io.Reader, comma rune) ([]models.Transaction, error) {
	reader := gocsv.LazyCSVReader(r)
	if cr, ok := reader.(*csv.Reader); ok {
		cr.Comma = comma
		cr.FieldsPerRecord = -1
	}
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read CSV: %w", err)
	}
	return parseRows(rows, dateutils.NormalizeDate)
}

// FromFile picks the reader by file extension. comma applies to CSV input.
func FromFile(path string, r io.Reader, comma rune) ([]models.Transaction, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		return FromSpreadsheet(r)
	case ".csv", ".txt":
		return FromDelimited(r, comma)
	}
	return nil, fmt.Errorf("%w: %s", ErrEmptyFile, filepath.Base(path))
}

// spreadsheetDate accepts raw Excel serial dates as well as date text.
func spreadsheetDate(value string) (string, error) {
	if serial, err := strconv.ParseFloat(strings.TrimSpace(value), 64); err == nil && serial > 0 {
		t, err := excelize.ExcelDateToTime(serial, false)
		if err != nil {
			return "", err
		}
		return dateutils.FormatLedgerDate(t), nil
	}
	return dateutils.NormalizeDate(value)
}

func parseRows(rows [][]string, parseDate func(string) (string, error)) ([]models.Transaction, error) {
	for len(rows) > 0 && isBlank(rows[len(rows)-1]) {
		rows = rows[:len(rows)-1]
	}
	if len(rows) < 2 || isBlank(rows[0]) {
		return nil, ErrEmptyFile
	}

	columns := make(map[string]int, len(rows[0]))
	for i, title := range rows[0] {
		key := strings.ToLower(strings.TrimSpace(strings.TrimPrefix(title, "\ufeff")))
		if _, seen := columns[key]; !seen {
			columns[key] = i
		}
	}
	var missing []string
	for _, required := range RequiredColumns {
		if _, ok := columns[strings.ToLower(required)]; !ok {
			missing = append(missing, required)
		}
	}
	if len(missing) > 0 {
		return nil, &MissingColumnsError{Columns: missing}
	}

	cell := func(row []string, column string) string {
		i, ok := columns[strings.ToLower(column)]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	transactions := make([]models.Transaction, 0, len(rows)-1)
	for i, row := range rows[1:] {
		if isBlank(row) {
			continue
		}
		rowNum := i + 2
		tx, err := parseRow(row, rowNum, cell, parseDate)
		if err != nil {
			return nil, err
		}
		transactions = append(transactions, tx)
	}
	return transactions, nil
}

func parseRow(row []string, rowNum int, cell func([]string, string) string, parseDate func(string) (string, error)) (models.Transaction, error) {
	missing := func(column string) error {
		return &ledgererror.ImportRowError{Row: rowNum, Field: column, Reason: "Missing"}
	}

	rawDate := cell(row, ColumnDate)
	if rawDate == "" {
		return models.Transaction{}, missing(ColumnDate)
	}
	customer := cell(row, ColumnCustomer)
	if customer == "" {
		return models.Transaction{}, missing(ColumnCustomer)
	}
	billText := cell(row, ColumnBillType)
	if billText == "" {
		return models.Transaction{}, missing(ColumnBillType)
	}
	purpose := cell(row, ColumnPurpose)
	if purpose == "" {
		return models.Transaction{}, missing(ColumnPurpose)
	}

	amount, err := currencyutils.ParseAmount(cell(row, ColumnAmount))
	if err != nil || amount.IsNegative() {
		return models.Transaction{}, &ledgererror.ImportRowError{Row: rowNum, Field: ColumnAmount, Reason: "Invalid or missing"}
	}

	date, err := parseDate(rawDate)
	if err != nil {
		return models.Transaction{}, &ledgererror.ImportRowError{Row: rowNum, Field: ColumnDate, Reason: "Unrecognised"}
	}

	billType, err := models.ParseBillType(billText)
	if err != nil {
		return models.Transaction{}, missing(ColumnBillType)
	}

	return models.Transaction{
		Date:         date,
		CustomerName: customer,
		ShopName:     cell(row, ColumnShop),
		BillType:     billType,
		Purpose:      purpose,
		AmountGiven:  amount,
	}, nil
}

func isBlank(row []string) bool {
	for _, value := range row {
		if strings.TrimSpace(value) != "" {
			return false
		}
	}
	return true
}
