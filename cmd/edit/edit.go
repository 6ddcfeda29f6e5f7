// Package edit changes existing transactions.
package edit

import (
	"fmt"

	"ssshep/expensepro/cmd/common"
	"ssshep/expensepro/cmd/root"
	"ssshep/expensepro/internal/ledgererror"
	"ssshep/expensepro/internal/models"
	"ssshep/expensepro/internal/tracker"

	"github.com/spf13/cobra"
)

// Cmd represents the edit command
var Cmd = NewCommand()

// NewCommand builds the edit command.
func NewCommand() *cobra.Command {
	var draft common.DraftFlags

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Change fields of a transaction",
		Long: `Change fields of a transaction. Only the flags given are changed.
Edits are not checked against the remaining balance.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := root.Container(cmd)
			if err != nil {
				return err
			}

			id := args[0]
			var updated models.Transaction
			_, err = c.GetService().Apply(cmd.Context(), "transaction.update", func(s models.Snapshot) (models.Snapshot, error) {
				idx := s.FindTransaction(id)
				if idx < 0 {
					return s, &ledgererror.NotFoundError{Kind: "transaction", ID: id}
				}
				tx, err := draft.Build(cmd, &s.Transactions[idx])
				if err != nil {
					return s, err
				}
				next, t, err := tracker.UpdateTransaction(s, id, tx)
				updated = t
				return next, err
			})
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Updated transaction %s\n", updated.ID)
			return common.PrintTransaction(cmd.OutOrStdout(), updated, nil)
		},
	}

	draft.Register(cmd)
	return cmd
}
