package report

import (
	"fmt"
	"time"

	"ssshep/expensepro/internal/dateutils"
)

// Kind identifies an export target.
type Kind string

const (
	KindAllTransactionsPDF Kind = "All_Transactions"
	KindSummaryPDF         Kind = "Summary_Report"
	KindSpreadsheet        Kind = "Transactions"
	KindCSV                Kind = "Transactions"
	KindBills              Kind = "Bills"
)

// BillsArchivePrefix is used instead of the configured prefix for bill archives.
const BillsArchivePrefix = "ExpenseTracker"

// FileName builds "<prefix>_<kind>_<YYYY-MM-DD>.<ext>".
func FileName(prefix string, kind Kind, date time.Time, ext string) string {
	return fmt.Sprintf("%s_%s_%s.%s", prefix, kind, dateutils.ToISODate(date), ext)
}
