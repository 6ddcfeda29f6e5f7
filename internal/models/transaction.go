// Package models provides the data structures shared by the ledger, the
// store and the report renderers.
package models

import (
	"fmt"
	"strings"

	"ssshep/expensepro/internal/dateutils"
	"ssshep/expensepro/internal/ledgererror"

	"github.com/shopspring/decimal"
)

// BillType records whether a purchase is backed by a bill.
type BillType string

const (
	WithBill    BillType = "withBill"
	WithoutBill BillType = "withoutBill"
)

// Valid reports whether b is one of the known bill types.
func (b BillType) Valid() bool {
	return b == WithBill || b == WithoutBill
}

// Label is the human-readable form used in spreadsheets.
func (b BillType) Label() string {
	if b == WithBill {
		return "With Bill"
	}
	return "Without Bill"
}

// ShortLabel is the compact form used in PDF tables.
func (b BillType) ShortLabel() string {
	if b == WithBill {
		return "Bill"
	}
	return "Without Bill"
}

// ParseBillType accepts the stored identifiers and the spreadsheet labels.
// Any other non-empty text containing "without" is treated as WithoutBill and
// everything else as WithBill, which is how imported sheets are read.
func ParseBillType(s string) (BillType, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	if v == "" {
		return "", &ledgererror.ValidationError{Field: "billType", Reason: "is required"}
	}
	if strings.Contains(v, "without") {
		return WithoutBill, nil
	}
	return WithBill, nil
}

// Transaction is a single recorded expense. It is never mutated once stored;
// an edit replaces it wholesale under the same ID.
type Transaction struct {
	ID           string          `json:"id"`
	Date         string          `json:"date"` // DD/MM/YYYY
	CustomerName string          `json:"customerName"`
	ShopName     string          `json:"shopName"`
	BillType     BillType        `json:"billType"`
	Purpose      string          `json:"purpose"`
	AmountGiven  decimal.Decimal `json:"amountGiven"`
}

// Validate checks the fields a caller must supply. The ID is not checked
// because drafts receive it only when they are stored.
func (t Transaction) Validate() error {
	if strings.TrimSpace(t.CustomerName) == "" {
		return &ledgererror.ValidationError{Field: "customerName", Reason: "is required"}
	}
	if strings.TrimSpace(t.Purpose) == "" {
		return &ledgererror.ValidationError{Field: "purpose", Reason: "is required"}
	}
	if !t.BillType.Valid() {
		return &ledgererror.ValidationError{Field: "billType", Reason: fmt.Sprintf("unknown value %q", t.BillType)}
	}
	if t.AmountGiven.IsNegative() {
		return &ledgererror.ValidationError{Field: "amountGiven", Reason: "must not be negative"}
	}
	if _, err := dateutils.ParseLedgerDate(t.Date); err != nil {
		return &ledgererror.ValidationError{Field: "date", Reason: err.Error()}
	}
	return nil
}

// ShopOrNA returns the shop name or "N/A" when it is empty.
func (t Transaction) ShopOrNA() string {
	if t.ShopName == "" {
		return NotAvailable
	}
	return t.ShopName
}

// String returns a one-line description used in logs and CLI listings.
func (t Transaction) String() string {
	return fmt.Sprintf("%s %s %s/%s %s (%s)",
		t.Date, t.CustomerName, t.ShopOrNA(), t.Purpose, t.AmountGiven.StringFixed(2), t.BillType.Label())
}
