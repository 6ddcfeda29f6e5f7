// Package list prints filtered transactions.
package list

import (
	"fmt"

	"ssshep/expensepro/cmd/common"
	"ssshep/expensepro/cmd/root"
	"ssshep/expensepro/internal/ledger"

	"github.com/spf13/cobra"
)

// Cmd represents the list command
var Cmd = NewCommand()

// NewCommand builds the list command.
func NewCommand() *cobra.Command {
	var (
		billType string
		criteria ledger.Criteria
	)

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List transactions, newest first",
		Long: `List transactions, newest first. Filters combine: --customer and --purpose
match exactly, --search matches customer, shop or purpose case-insensitively.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			filter, err := ledger.ParseBillFilter(billType)
			if err != nil {
				return err
			}
			criteria.BillType = filter

			c, err := root.Container(cmd)
			if err != nil {
				return err
			}
			snap, err := c.GetService().Load(cmd.Context())
			if err != nil {
				return err
			}

			matched, err := ledger.FilterAndSort(snap.Transactions, criteria)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(matched) == 0 {
				fmt.Fprintln(out, "No transactions found.")
				return nil
			}
			if err := common.PrintTransactions(out, matched, snap.Bills); err != nil {
				return err
			}
			fmt.Fprintf(out, "\n%d of %d transactions\n", len(matched), len(snap.Transactions))
			return nil
		},
	}

	fs := cmd.Flags()
	fs.StringVarP(&billType, "bill-type", "b", string(ledger.AllBills), "all, withBill or withoutBill")
	fs.StringVarP(&criteria.Customer, "customer", "c", "", "Only this customer")
	fs.StringVarP(&criteria.Purpose, "purpose", "p", "", "Only this purpose")
	fs.StringVarP(&criteria.Search, "search", "q", "", "Free-text search")
	return cmd
}
