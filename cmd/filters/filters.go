// Package filters prints the values available for list filters.
package filters

import (
	"fmt"
	"io"
	"strings"

	"ssshep/expensepro/cmd/root"
	"ssshep/expensepro/internal/ledger"

	"github.com/spf13/cobra"
)

// Cmd represents the filters command
var Cmd = NewCommand()

// NewCommand builds the filters command.
func NewCommand() *cobra.Command {
	var vocabulary bool

	cmd := &cobra.Command{
		Use:   "filters",
		Short: "List the customers and purposes present in the ledger",
		Long: `List the distinct customers and purposes present in the ledger.
With --vocabulary, print the known purpose and shop lists offered when adding transactions.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := root.Container(cmd)
			if err != nil {
				return err
			}
			snap, err := c.GetService().Load(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if vocabulary {
				printList(out, "Purposes", snap.ValidPurposes)
				printList(out, "Shops", snap.ValidShops)
				return nil
			}
			values := ledger.IndexUniqueValues(snap.Transactions)
			printList(out, "Customers", values.Customers)
			printList(out, "Purposes", values.Purposes)
			return nil
		},
	}
	cmd.Flags().BoolVar(&vocabulary, "vocabulary", false, "Print the purpose and shop vocabularies instead")
	return cmd
}

func printList(w io.Writer, title string, values []string) {
	fmt.Fprintf(w, "%s (%d):\n", title, len(values))
	if len(values) > 0 {
		fmt.Fprintf(w, "  %s\n", strings.Join(values, "\n  "))
	}
}
