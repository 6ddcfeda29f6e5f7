// Package importcmd appends transactions read from a spreadsheet or CSV file.
package importcmd

import (
	"fmt"
	"os"

	"ssshep/expensepro/cmd/root"
	"ssshep/expensepro/internal/importer"
	"ssshep/expensepro/internal/logging"
	"ssshep/expensepro/internal/models"
	"ssshep/expensepro/internal/tracker"

	"github.com/spf13/cobra"
)

// Cmd represents the import command
var Cmd = NewCommand()

// NewCommand builds the import command.
func NewCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "import <file.xlsx|file.csv>",
		Short: "Append transactions from a spreadsheet or CSV file",
		Long: `Append transactions from a spreadsheet or CSV file. The first row must name the
columns Date, Customer Name, Bill Type, Purpose and Amount. Shop Name is optional.
Imported rows are not checked against the remaining balance.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := root.Container(cmd)
			if err != nil {
				return err
			}

			path := args[0]
			f, err := os.Open(path) // #nosec G304 -- user-supplied import file
			if err != nil {
				return fmt.Errorf("failed to open import file: %w", err)
			}
			defer f.Close()

			rows, err := importer.FromFile(path, f, c.GetConfig().DelimiterRune())
			if err != nil {
				return fmt.Errorf("import failed: %w", err)
			}

			var added []models.Transaction
			_, err = c.GetService().Apply(cmd.Context(), "transaction.import", func(s models.Snapshot) (models.Snapshot, error) {
				next, imported, err := tracker.ImportTransactions(s, rows)
				added = imported
				return next, err
			})
			if err != nil {
				return fmt.Errorf("import failed: %w", err)
			}

			c.GetLogger().Info("Transactions imported",
				logging.F(logging.FieldInputFile, path),
				logging.F(logging.FieldCount, len(added)))
			fmt.Fprintf(cmd.OutOrStdout(), "%d transactions imported successfully.\n", len(added))
			return nil
		},
	}
}
