// Package report renders the ledger into the export formats: PDF reports,
// an XLSX workbook, CSV and a zip archive of bills. Every tabular export
// uses ledger.SortForReporting so rows appear in the same order everywhere.
package report

import (
	"ssshep/expensepro/internal/currencyutils"
	"ssshep/expensepro/internal/ledger"
	"ssshep/expensepro/internal/ledgererror"
	"ssshep/expensepro/internal/models"

	"github.com/shopspring/decimal"
)

// Row is one exported transaction in spreadsheet/CSV form. Amount is the
// two-decimal text written to CSV; Value keeps the exact decimal for
// numeric spreadsheet cells.
type Row struct {
	Date         string          `csv:"Date"`
	CustomerName string          `csv:"Customer Name"`
	ShopName     string          `csv:"Shop Name"`
	BillType     string          `csv:"Bill Type"`
	Purpose      string          `csv:"Purpose"`
	Amount       string          `csv:"Amount"`
	Value        decimal.Decimal `csv:"-"`
}

// Headers are the column titles shared by the XLSX and CSV exports.
var Headers = []string{"Date", "Customer Name", "Shop Name", "Bill Type", "Purpose", "Amount"}

// orderedTransactions applies the canonical export order and rejects an empty ledger.
func orderedTransactions(transactions []models.Transaction) ([]models.Transaction, error) {
	if len(transactions) == 0 {
		return nil, ledgererror.ErrNoTransactions
	}
	return ledger.SortForReporting(transactions)
}

// ToRows converts transactions into export rows in canonical order.
func ToRows(transactions []models.Transaction) ([]Row, error) {
	ordered, err := orderedTransactions(transactions)
	if err != nil {
		return nil, err
	}
	rows := make([]Row, len(ordered))
	for i, tx := range ordered {
		rows[i] = Row{
			Date:         tx.Date,
			CustomerName: tx.CustomerName,
			ShopName:     tx.ShopName,
			BillType:     tx.BillType.Label(),
			Purpose:      tx.Purpose,
			Amount:       currencyutils.FormatAmount(tx.AmountGiven),
			Value:        tx.AmountGiven,
		}
	}
	return rows, nil
}
