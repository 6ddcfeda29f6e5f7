package report

import (
	"fmt"
	"io"

	"ssshep/expensepro/internal/currencyutils"
	"ssshep/expensepro/internal/ledger"
	"ssshep/expensepro/internal/ledgererror"
	"ssshep/expensepro/internal/models"

	"github.com/go-pdf/fpdf"
)

const (
	pdfFont        = "Helvetica"
	pdfMarginLeft  = 14.0
	pdfMarginTop   = 14.0
	pdfMarginRight = 14.0
	pdfBottomLimit = 280.0
	pdfRowHeight   = 6.0
)

// Report titles.
const (
	AllTransactionsTitle = "All Transactions Report"
	SummaryTitle         = "Expense Summary Report"
)

var (
	headerFill = [3]int{78, 115, 223}
	stripeFill = [3]int{242, 242, 242}

	transactionColumns = []column{
		{"Date", 22, "L"},
		{"Customer", 32, "L"},
		{"Shop", 28, "L"},
		{"Bill Type", 22, "L"},
		{"Purpose", 40, "L"},
		{"Amount (INR)", 24, "R"},
		{"Bill", 14, "C"},
	}
)

type column struct {
	title string
	width float64
	align string
}

// PDFRenderer draws the ledger reports on A4 pages.
type PDFRenderer struct {
	// Compress toggles stream compression; tests turn it off to inspect page text.
	Compress bool
}

// NewPDFRenderer returns a renderer with compression enabled.
func NewPDFRenderer() *PDFRenderer {
	return &PDFRenderer{Compress: true}
}

type pdfDoc struct {
	pdf *fpdf.Fpdf
	tr  func(string) string
}

func (r *PDFRenderer) newDoc(title string) *pdfDoc {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetCompression(r.Compress)
	pdf.SetMargins(pdfMarginLeft, pdfMarginTop, pdfMarginRight)
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetTitle(title, true)
	pdf.AddPage()

	d := &pdfDoc{pdf: pdf, tr: pdf.UnicodeTranslatorFromDescriptor("")}
	pdf.SetFont(pdfFont, "", 18)
	pdf.SetXY(pdfMarginLeft, 16)
	pdf.CellFormat(0, 8, d.tr(title), "", 1, "L", false, 0, "")
	pdf.SetY(30)
	return d
}

// fit truncates text so it fits a cell of width w at the current font.
// Truncation drops whole runes before translation, so the result never
// depends on how many bytes the translator emits per rune.
func (d *pdfDoc) fit(text string, w float64) string {
	runes := []rune(currencyutils.SanitizeForPDF(text))
	limit := w - 2
	if full := d.tr(string(runes)); d.pdf.GetStringWidth(full) <= limit {
		return full
	}
	for len(runes) > 0 && d.pdf.GetStringWidth(d.tr(string(runes))+"...") > limit {
		runes = runes[:len(runes)-1]
	}
	return d.tr(string(runes)) + "..."
}

func (d *pdfDoc) header(columns []column, fontSize float64) {
	d.pdf.SetFont(pdfFont, "B", fontSize)
	d.pdf.SetFillColor(headerFill[0], headerFill[1], headerFill[2])
	d.pdf.SetTextColor(255, 255, 255)
	for _, c := range columns {
		d.pdf.CellFormat(c.width, pdfRowHeight+1, d.tr(c.title), "1", 0, c.align, true, 0, "")
	}
	d.pdf.Ln(-1)
	d.pdf.SetTextColor(0, 0, 0)
	d.pdf.SetFont(pdfFont, "", fontSize)
}

// table draws rows under a header, repeating the header on each new page.
func (d *pdfDoc) table(columns []column, rows [][]string, fontSize float64, border string, striped bool) {
	d.header(columns, fontSize)
	for i, row := range rows {
		if d.pdf.GetY()+pdfRowHeight > pdfBottomLimit {
			d.pdf.AddPage()
			d.header(columns, fontSize)
		}
		fill := striped && i%2 == 1
		if fill {
			d.pdf.SetFillColor(stripeFill[0], stripeFill[1], stripeFill[2])
		}
		for j, c := range columns {
			d.pdf.CellFormat(c.width, pdfRowHeight, d.fit(row[j], c.width), border, 0, c.align, fill, 0, "")
		}
		d.pdf.Ln(-1)
	}
}

func (d *pdfDoc) heading(text string) {
	if d.pdf.GetY()+20 > pdfBottomLimit {
		d.pdf.AddPage()
	}
	d.pdf.SetFont(pdfFont, "", 11)
	d.pdf.CellFormat(0, 6, d.tr(text), "", 1, "L", false, 0, "")
	d.pdf.Ln(1)
}

func (d *pdfDoc) output(w io.Writer) error {
	if err := d.pdf.Error(); err != nil {
		return fmt.Errorf("render pdf: %w", err)
	}
	if err := d.pdf.Output(w); err != nil {
		return fmt.Errorf("write pdf: %w", err)
	}
	return nil
}

// TransactionRows returns the cells of the transactions table in canonical order.
func TransactionRows(transactions []models.Transaction, bills models.BillMap) ([][]string, error) {
	ordered, err := orderedTransactions(transactions)
	if err != nil {
		return nil, err
	}
	rows := make([][]string, len(ordered))
	for i, tx := range ordered {
		hasBill := "No"
		if bills.Has(tx.ID) {
			hasBill = "Yes"
		}
		rows[i] = []string{
			tx.Date,
			tx.CustomerName,
			tx.ShopOrNA(),
			tx.BillType.ShortLabel(),
			tx.Purpose,
			currencyutils.FormatAmount(tx.AmountGiven),
			hasBill,
		}
	}
	return rows, nil
}

// AllTransactions writes the full transaction listing.
func (r *PDFRenderer) AllTransactions(w io.Writer, transactions []models.Transaction, bills models.BillMap) error {
	rows, err := TransactionRows(transactions, bills)
	if err != nil {
		return err
	}
	d := r.newDoc(AllTransactionsTitle)
	d.table(transactionColumns, rows, 8, "1", false)
	return d.output(w)
}

// SummaryStats returns the label/value rows of the summary block.
func SummaryStats(s ledger.Summary) [][]string {
	return [][]string{
		{"Initial Budget:", currencyutils.FormatINR(s.Budget)},
		{"Total Transactions:", fmt.Sprintf("%d", s.Count)},
		{"", ""},
		{"Total Spent:", currencyutils.FormatINR(s.Totals.TotalSpent())},
		{"  - With Bill:", currencyutils.FormatINR(s.Totals.WithBillAmount)},
		{"  - Without Bill:", currencyutils.FormatINR(s.Totals.WithoutBillAmount)},
		{"  - Travel Charges:", currencyutils.FormatINR(s.Totals.TravelAmount)},
		{"", ""},
		{"Remaining Balance:", currencyutils.FormatINR(s.Totals.RemainingBalance)},
	}
}

func spendingRows(entries []ledger.Spending) [][]string {
	rows := make([][]string, len(entries))
	for i, e := range entries {
		rows[i] = []string{e.Name, currencyutils.FormatINR(e.Amount)}
	}
	return rows
}

// Summary writes the one-page summary: stats, then top purposes and customers.
func (r *PDFRenderer) Summary(w io.Writer, s ledger.Summary) error {
	if s.Count == 0 {
		return ledgererror.ErrNoTransactions
	}

	d := r.newDoc(SummaryTitle)
	d.pdf.SetFont(pdfFont, "", 9)
	for _, stat := range SummaryStats(s) {
		d.pdf.SetFont(pdfFont, "B", 9)
		d.pdf.CellFormat(40, 5, d.tr(stat[0]), "", 0, "L", false, 0, "")
		d.pdf.SetFont(pdfFont, "", 9)
		d.pdf.CellFormat(40, 5, d.fit(stat[1], 40), "", 1, "R", false, 0, "")
	}
	d.pdf.Ln(8)

	d.heading(fmt.Sprintf("Top %d Spending by Purpose", ledger.TopLimit))
	d.table([]column{{"Purpose", 120, "L"}, {"Amount", 62, "R"}}, spendingRows(s.TopPurposes), 9, "", true)
	d.pdf.Ln(8)

	d.heading(fmt.Sprintf("Top %d Spending by Customer", ledger.TopLimit))
	d.table([]column{{"Customer", 120, "L"}, {"Amount", 62, "R"}}, spendingRows(s.TopCustomers), 9, "", true)

	return d.output(w)
}
