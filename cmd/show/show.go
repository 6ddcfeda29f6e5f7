// Package show prints a single transaction.
package show

import (
	"ssshep/expensepro/cmd/common"
	"ssshep/expensepro/cmd/root"
	"ssshep/expensepro/internal/ledgererror"

	"github.com/spf13/cobra"
)

// Cmd represents the show command
var Cmd = NewCommand()

// NewCommand builds the show command.
func NewCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show a transaction and its bill",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := root.Container(cmd)
			if err != nil {
				return err
			}
			snap, err := c.GetService().Load(cmd.Context())
			if err != nil {
				return err
			}
			idx := snap.FindTransaction(args[0])
			if idx < 0 {
				return &ledgererror.NotFoundError{Kind: "transaction", ID: args[0]}
			}
			tx := snap.Transactions[idx]
			if bill, ok := snap.Bills[tx.ID]; ok {
				return common.PrintTransaction(cmd.OutOrStdout(), tx, &bill)
			}
			return common.PrintTransaction(cmd.OutOrStdout(), tx, nil)
		},
	}
}
