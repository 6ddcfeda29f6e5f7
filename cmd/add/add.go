// Package add records new transactions.
package add

import (
	"fmt"

	"ssshep/expensepro/cmd/common"
	"ssshep/expensepro/cmd/root"
	"ssshep/expensepro/internal/currencyutils"
	"ssshep/expensepro/internal/models"
	"ssshep/expensepro/internal/tracker"

	"github.com/spf13/cobra"
)

// Cmd represents the add command
var Cmd = NewCommand()

// NewCommand builds the add command.
func NewCommand() *cobra.Command {
	var (
		draft    common.DraftFlags
		billPath string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a new transaction",
		Long: `Record a new transaction. The amount may not exceed the remaining balance.
A bill file can be attached to transactions of type withBill.`,
		Example: `  expensepro add -c "Ravi" -p "Groceries" -s "Metro Mart" -a 1250 --bill receipt.jpg
  expensepro add -c "Anita" -p "Auto fare" -a 120 -b withoutBill -t 03/03/2024`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tx, err := draft.Build(cmd, nil)
			if err != nil {
				return err
			}

			var bill *models.Bill
			if billPath != "" {
				if tx.BillType != models.WithBill {
					return fmt.Errorf("a bill can only be attached to a %s transaction", models.WithBill)
				}
				b, err := common.ReadBill(billPath)
				if err != nil {
					return err
				}
				bill = &b
			}

			c, err := root.Container(cmd)
			if err != nil {
				return err
			}

			var added models.Transaction
			_, err = c.GetService().Apply(cmd.Context(), "transaction.add", func(s models.Snapshot) (models.Snapshot, error) {
				next, t, err := tracker.AddTransaction(s, tx, bill)
				added = t
				return next, err
			})
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Added transaction %s: %s for %s (%s)\n",
				added.ID, currencyutils.FormatINR(added.AmountGiven), added.CustomerName, added.Purpose)
			return nil
		},
	}

	draft.Register(cmd)
	cmd.Flags().StringVar(&billPath, "bill", "", "Bill image or PDF to attach")
	_ = cmd.MarkFlagRequired("customer")
	_ = cmd.MarkFlagRequired("purpose")
	_ = cmd.MarkFlagRequired("amount")
	return cmd
}
