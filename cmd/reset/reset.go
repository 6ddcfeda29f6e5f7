// Package reset restores the ledger to its first-run state.
package reset

import (
	"fmt"

	"ssshep/expensepro/cmd/root"
	"ssshep/expensepro/internal/currencyutils"

	"github.com/spf13/cobra"
)

// Cmd represents the reset command
var Cmd = NewCommand()

// NewCommand builds the reset command.
func NewCommand() *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Erase all data and restore the default budget and lists",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				return fmt.Errorf("refusing to reset the ledger without --yes")
			}
			c, err := root.Container(cmd)
			if err != nil {
				return err
			}
			fresh, err := c.GetService().Reset(cmd.Context(), c.GetConfig().InitialBudget())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Ledger reset to defaults. Budget: %s\n", currencyutils.FormatINR(fresh.Budget))
			return nil
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Confirm the reset")
	return cmd
}
