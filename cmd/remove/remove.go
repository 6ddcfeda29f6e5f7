// Package remove deletes transactions.
package remove

import (
	"fmt"

	"ssshep/expensepro/cmd/root"
	"ssshep/expensepro/internal/models"
	"ssshep/expensepro/internal/tracker"

	"github.com/spf13/cobra"
)

var (
	// Cmd represents the delete command
	Cmd = NewCommand()
	// AllCmd represents the delete-all command
	AllCmd = NewAllCommand()
)

// NewCommand builds the delete command.
func NewCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "delete <id>",
		Aliases: []string{"rm"},
		Short:   "Delete a transaction and its bill",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := root.Container(cmd)
			if err != nil {
				return err
			}
			_, err = c.GetService().Apply(cmd.Context(), "transaction.delete", func(s models.Snapshot) (models.Snapshot, error) {
				return tracker.DeleteTransaction(s, args[0])
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted transaction %s\n", args[0])
			return nil
		},
	}
}

// NewAllCommand builds the delete-all command.
func NewAllCommand() *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "delete-all",
		Short: "Delete every transaction and bill",
		Long:  "Delete every transaction and bill. The budget and the purpose and shop lists are kept.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				return fmt.Errorf("refusing to delete all transactions without --yes")
			}
			c, err := root.Container(cmd)
			if err != nil {
				return err
			}

			var count int
			_, err = c.GetService().Apply(cmd.Context(), "transaction.delete_all", func(s models.Snapshot) (models.Snapshot, error) {
				count = len(s.Transactions)
				return tracker.DeleteAllTransactions(s), nil
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted %d transactions\n", count)
			return nil
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Confirm deletion")
	return cmd
}
