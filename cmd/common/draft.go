// Package common contains shared functionality for command handlers
package common

import (
	"ssshep/expensepro/internal/models"

	"github.com/spf13/cobra"
)

// DraftFlags collects the transaction fields accepted by add and edit.
type DraftFlags struct {
	Date     string
	Customer string
	Shop     string
	Purpose  string
	Amount   string
	BillType string
}

// Register binds the draft flags to cmd.
func (f *DraftFlags) Register(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.StringVarP(&f.Date, "date", "t", "", "Transaction date, DD/MM/YYYY (default today)")
	fs.StringVarP(&f.Customer, "customer", "c", "", "Customer name")
	fs.StringVarP(&f.Shop, "shop", "s", "", "Shop name")
	fs.StringVarP(&f.Purpose, "purpose", "p", "", "Purpose of the expense")
	fs.StringVarP(&f.Amount, "amount", "a", "", "Amount given, in rupees")
	fs.StringVarP(&f.BillType, "bill-type", "b", string(models.WithBill), "withBill or withoutBill")
}

// Build returns a validated transaction. When base is non-nil, fields whose
// flag was not set on cmd keep base's value.
func (f *DraftFlags) Build(cmd *cobra.Command, base *models.Transaction) (models.Transaction, error) {
	b := models.NewTransactionBuilder()
	changed := func(name string) bool {
		return base == nil || cmd.Flags().Changed(name)
	}

	if base != nil {
		b.WithID(base.ID).
			WithDate(base.Date).
			WithCustomer(base.CustomerName).
			WithShop(base.ShopName).
			WithPurpose(base.Purpose).
			WithBillType(base.BillType).
			WithAmount(base.AmountGiven)
	}

	if changed("date") && f.Date != "" {
		b.WithDate(f.Date)
	}
	if changed("customer") {
		b.WithCustomer(f.Customer)
	}
	if changed("shop") {
		b.WithShop(f.Shop)
	}
	if changed("purpose") {
		b.WithPurpose(f.Purpose)
	}
	if changed("amount") {
		b.WithAmountFromString(f.Amount)
	}
	if changed("bill-type") {
		billType, err := models.ParseBillType(f.BillType)
		if err != nil {
			return models.Transaction{}, err
		}
		b.WithBillType(billType)
	}
	return b.Build()
}
