// Package summary prints the ledger totals.
package summary

import (
	"fmt"

	"ssshep/expensepro/cmd/common"
	"ssshep/expensepro/cmd/root"
	"ssshep/expensepro/internal/ledger"

	"github.com/spf13/cobra"
)

// Cmd represents the summary command
var Cmd = NewCommand()

// NewCommand builds the summary command.
func NewCommand() *cobra.Command {
	var by string

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Print totals, remaining balance and top spending",
		Long: `Print totals, remaining balance and the top spending by purpose and by customer.
With --by, print only the ranking for that field.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var field ledger.Field
			if by != "" {
				f, err := ledger.ParseField(by)
				if err != nil {
					return err
				}
				field = f
			}

			c, err := root.Container(cmd)
			if err != nil {
				return err
			}
			snap, err := c.GetService().Load(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(snap.Transactions) == 0 {
				fmt.Fprintln(out, "No transactions recorded yet.")
			}
			if field != "" {
				return common.PrintTopSpending(out, field, ledger.TopSpendingBy(snap.Transactions, field))
			}
			return common.PrintSummary(out,
				ledger.Summarize(snap.Transactions, snap.Budget, c.GetConfig().Ledger.TravelKeywords))
		},
	}
	cmd.Flags().StringVar(&by, "by", "", "Only rank spending by this field (purpose or customer)")
	return cmd
}
