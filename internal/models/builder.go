package models

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"ssshep/expensepro/internal/currencyutils"
	"ssshep/expensepro/internal/dateutils"

	"github.com/shopspring/decimal"
)

// TransactionBuilder provides a fluent API for constructing transactions.
// The first error encountered sticks and short-circuits the remaining calls.
type TransactionBuilder struct {
	tx  Transaction
	err error
}

// NewTransactionBuilder creates a builder dated today with a WithBill default.
func NewTransactionBuilder() *TransactionBuilder {
	return &TransactionBuilder{
		tx: Transaction{
			Date:        dateutils.Today(),
			BillType:    WithBill,
			AmountGiven: decimal.Zero,
		},
	}
}

// WithID sets the transaction ID
func (b *TransactionBuilder) WithID(id string) *TransactionBuilder {
	if b.err != nil {
		return b
	}
	b.tx.ID = id
	return b
}

// WithDate sets the date from any supported day-first layout and stores it as DD/MM/YYYY.
func (b *TransactionBuilder) WithDate(dateStr string) *TransactionBuilder {
	if b.err != nil {
		return b
	}
	if strings.TrimSpace(dateStr) == "" {
		b.err = errors.New("date cannot be empty")
		return b
	}
	normalized, err := dateutils.NormalizeDate(dateStr)
	if err != nil {
		b.err = err
		return b
	}
	b.tx.Date = normalized
	return b
}

// WithDateFromTime sets the date from a time.Time
func (b *TransactionBuilder) WithDateFromTime(date time.Time) *TransactionBuilder {
	if b.err != nil {
		return b
	}
	if date.IsZero() {
		b.err = errors.New("date cannot be zero")
		return b
	}
	b.tx.Date = dateutils.FormatLedgerDate(date)
	return b
}

// WithCustomer sets the customer name
func (b *TransactionBuilder) WithCustomer(name string) *TransactionBuilder {
	if b.err != nil {
		return b
	}
	b.tx.CustomerName = strings.TrimSpace(name)
	return b
}

// WithShop sets the shop name; empty is allowed.
func (b *TransactionBuilder) WithShop(name string) *TransactionBuilder {
	if b.err != nil {
		return b
	}
	b.tx.ShopName = strings.TrimSpace(name)
	return b
}

// WithPurpose sets the purpose
func (b *TransactionBuilder) WithPurpose(purpose string) *TransactionBuilder {
	if b.err != nil {
		return b
	}
	b.tx.Purpose = strings.TrimSpace(purpose)
	return b
}

// WithBillType sets the bill type
func (b *TransactionBuilder) WithBillType(billType BillType) *TransactionBuilder {
	if b.err != nil {
		return b
	}
	if !billType.Valid() {
		b.err = fmt.Errorf("unknown bill type %q", billType)
		return b
	}
	b.tx.BillType = billType
	return b
}

// WithAmount sets the amount
func (b *TransactionBuilder) WithAmount(amount decimal.Decimal) *TransactionBuilder {
	if b.err != nil {
		return b
	}
	if amount.IsNegative() {
		b.err = errors.New("amount cannot be negative")
		return b
	}
	b.tx.AmountGiven = amount
	return b
}

// WithAmountFromString parses amount text such as "₹1,250.50".
func (b *TransactionBuilder) WithAmountFromString(amount string) *TransactionBuilder {
	if b.err != nil {
		return b
	}
	parsed, err := currencyutils.ParseAmount(amount)
	if err != nil {
		b.err = err
		return b
	}
	return b.WithAmount(parsed)
}

// Build validates and returns the transaction.
func (b *TransactionBuilder) Build() (Transaction, error) {
	if b.err != nil {
		return Transaction{}, b.err
	}
	if err := b.tx.Validate(); err != nil {
		return Transaction{}, err
	}
	return b.tx, nil
}

// MustBuild is Build for tests and fixtures; it panics on error.
func (b *TransactionBuilder) MustBuild() Transaction {
	tx, err := b.Build()
	if err != nil {
		panic(err)
	}
	return tx
}
