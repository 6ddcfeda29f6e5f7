package report

import (
	"encoding/csv"
	"fmt"
	"io"

	"ssshep/expensepro/internal/models"

	"github.com/gocarina/gocsv"
)

// CSVWriter writes the transaction export as delimited text.
type CSVWriter struct {
	Delimiter rune
}

// NewCSVWriter returns a CSVWriter; a zero delimiter means comma.
func NewCSVWriter(delimiter rune) *CSVWriter {
	if delimiter == 0 {
		delimiter = ','
	}
	return &CSVWriter{Delimiter: delimiter}
}

// Write renders transactions to w with a header row.
func (c *CSVWriter) Write(w io.Writer, transactions []models.Transaction) error {
	rows, err := ToRows(transactions)
	if err != nil {
		return err
	}

	csvWriter := csv.NewWriter(w)
	csvWriter.Comma = c.Delimiter
	if err := gocsv.MarshalCSV(&rows, gocsv.NewSafeCSVWriter(csvWriter)); err != nil {
		return fmt.Errorf("error writing CSV data: %w", err)
	}
	return nil
}
