package common

import (
	"fmt"
	"io"
	"text/tabwriter"

	"ssshep/expensepro/internal/currencyutils"
	"ssshep/expensepro/internal/ledger"
	"ssshep/expensepro/internal/models"

	"github.com/dustin/go-humanize"
)

// NewTable returns a tabwriter with the column layout used by every listing.
func NewTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
}

// PrintTransactions writes one line per transaction.
func PrintTransactions(w io.Writer, transactions []models.Transaction, bills models.BillMap) error {
	tw := NewTable(w)
	fmt.Fprintln(tw, "ID\tDATE\tCUSTOMER\tSHOP\tBILL TYPE\tPURPOSE\tAMOUNT\tBILL")
	for _, tx := range transactions {
		hasBill := "-"
		if bill, ok := bills[tx.ID]; ok {
			hasBill = humanize.Bytes(uint64(bill.Size))
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			tx.ID, tx.Date, tx.CustomerName, tx.ShopOrNA(), tx.BillType.Label(), tx.Purpose,
			currencyutils.FormatINR(tx.AmountGiven), hasBill)
	}
	return tw.Flush()
}

// PrintTransaction writes the details of a single transaction.
func PrintTransaction(w io.Writer, tx models.Transaction, bill *models.Bill) error {
	tw := NewTable(w)
	fmt.Fprintf(tw, "ID:\t%s\n", tx.ID)
	fmt.Fprintf(tw, "Date:\t%s\n", tx.Date)
	fmt.Fprintf(tw, "Customer:\t%s\n", tx.CustomerName)
	fmt.Fprintf(tw, "Shop:\t%s\n", tx.ShopOrNA())
	fmt.Fprintf(tw, "Bill Type:\t%s\n", tx.BillType.Label())
	fmt.Fprintf(tw, "Purpose:\t%s\n", tx.Purpose)
	fmt.Fprintf(tw, "Amount:\t%s\n", currencyutils.FormatINR(tx.AmountGiven))
	if bill != nil {
		fmt.Fprintf(tw, "Bill:\t%s (%s, %s, uploaded %s)\n",
			bill.Name, bill.Type, humanize.Bytes(uint64(bill.Size)), humanize.Time(bill.UploadedAt))
	} else {
		fmt.Fprintf(tw, "Bill:\tnone\n")
	}
	return tw.Flush()
}

// PrintSummary writes the totals block followed by the top spending lists.
func PrintSummary(w io.Writer, s ledger.Summary) error {
	tw := NewTable(w)
	fmt.Fprintf(tw, "Initial Budget:\t%s\n", currencyutils.FormatINR(s.Budget))
	fmt.Fprintf(tw, "Total Transactions:\t%d\n", s.Count)
	fmt.Fprintf(tw, "Total Spent:\t%s\n", currencyutils.FormatINR(s.Totals.TotalSpent()))
	fmt.Fprintf(tw, "  - With Bill:\t%s\n", currencyutils.FormatINR(s.Totals.WithBillAmount))
	fmt.Fprintf(tw, "  - Without Bill:\t%s\n", currencyutils.FormatINR(s.Totals.WithoutBillAmount))
	fmt.Fprintf(tw, "  - Travel Charges:\t%s\n", currencyutils.FormatINR(s.Totals.TravelAmount))
	fmt.Fprintf(tw, "Remaining Balance:\t%s\n", currencyutils.FormatINR(s.Totals.RemainingBalance))
	if err := tw.Flush(); err != nil {
		return err
	}

	if err := PrintTopSpending(w, ledger.ByPurpose, s.TopPurposes); err != nil {
		return err
	}
	return PrintTopSpending(w, ledger.ByCustomer, s.TopCustomers)
}

// PrintTopSpending writes the ranked groups for field under a heading.
// Nothing is written when entries is empty.
func PrintTopSpending(w io.Writer, field ledger.Field, entries []ledger.Spending) error {
	if len(entries) == 0 {
		return nil
	}
	title := "Purpose"
	if field == ledger.ByCustomer {
		title = "Customer"
	}
	fmt.Fprintf(w, "\nTop %d Spending by %s\n", ledger.TopLimit, title)
	tw := NewTable(w)
	for i, e := range entries {
		fmt.Fprintf(tw, "%d.\t%s\t%s\n", i+1, e.Name, currencyutils.FormatINR(e.Amount))
	}
	return tw.Flush()
}
