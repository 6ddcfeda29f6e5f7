// Package budget shows and changes the initial budget.
package budget

import (
	"errors"
	"fmt"
	"strings"

	"ssshep/expensepro/cmd/root"
	"ssshep/expensepro/internal/currencyutils"
	"ssshep/expensepro/internal/ledger"
	"ssshep/expensepro/internal/ledgererror"
	"ssshep/expensepro/internal/models"
	"ssshep/expensepro/internal/tracker"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Cmd represents the budget command
var Cmd = NewCommand()

// NewCommand builds the budget command and its subcommands.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "budget",
		Short: "Show or change the initial budget",
	}
	cmd.AddCommand(newShowCommand(), newSetCommand())
	return cmd
}

func newShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the budget and remaining balance",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := root.Container(cmd)
			if err != nil {
				return err
			}
			snap, err := c.GetService().Load(cmd.Context())
			if err != nil {
				return err
			}
			totals := ledger.TotalsWithKeywords(snap.Transactions, snap.Budget, c.GetConfig().Ledger.TravelKeywords)
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Initial Budget:    %s\n", currencyutils.FormatINR(snap.Budget))
			fmt.Fprintf(out, "Remaining Balance: %s\n", currencyutils.FormatINR(totals.RemainingBalance))
			return nil
		},
	}
}

func newSetCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set <amount>",
		Short: "Set the initial budget",
		Long:  "Set the initial budget. The amount must be a finite number greater than zero.",
		Example: `  expensepro budget set 45000
  expensepro budget set 12500.50`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			value, err := ledger.ParseBudget(args[0])
			if err != nil {
				return err
			}
			c, err := root.Container(cmd)
			if err != nil {
				return err
			}
			_, err = c.GetService().Apply(cmd.Context(), "budget.set", func(s models.Snapshot) (models.Snapshot, error) {
				return tracker.SetBudget(s, value)
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Budget set to %s\n", currencyutils.FormatINR(value))
			return nil
		},
	}
	cmd.SetFlagErrorFunc(negativeAmountError)
	return cmd
}

// negativeAmountError turns a negative amount that pflag parsed as a group
// of unknown shorthand flags ("-10" reads as -1 -0) back into a budget error.
// Any other flag error is returned unchanged.
func negativeAmountError(_ *cobra.Command, err error) error {
	var notExist *pflag.NotExistError
	if !errors.As(err, &notExist) {
		return err
	}
	group := notExist.GetSpecifiedShortnames()
	if !looksNumeric(group) {
		return err
	}
	value := "-" + group
	if _, parseErr := ledger.ParseBudget(value); parseErr != nil {
		return parseErr
	}
	return &ledgererror.InvalidBudgetError{Value: value, Reason: "must be a positive number"}
}

func looksNumeric(group string) bool {
	if group == "" {
		return false
	}
	if c := group[0]; (c >= '0' && c <= '9') || c == '.' {
		return true
	}
	switch strings.ToLower(group) {
	case "nan", "inf", "infinity":
		return true
	}
	return false
}
