// Package bill manages bill files attached to transactions.
package bill

import (
	"fmt"
	"path/filepath"

	"ssshep/expensepro/cmd/common"
	"ssshep/expensepro/cmd/root"
	"ssshep/expensepro/internal/fileutils"
	"ssshep/expensepro/internal/ledgererror"
	"ssshep/expensepro/internal/models"
	"ssshep/expensepro/internal/report"
	"ssshep/expensepro/internal/tracker"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

// Cmd represents the bill command
var Cmd = NewCommand()

// NewCommand builds the bill command and its subcommands.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bill",
		Short: "Attach, remove, extract or archive bills",
	}
	cmd.AddCommand(newAttachCommand(), newRemoveCommand(), newExtractCommand(), newArchiveCommand())
	return cmd
}

func newAttachCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "attach <id> <file>",
		Short: "Attach a bill file to a transaction, replacing any existing bill",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			bill, err := common.ReadBill(args[1])
			if err != nil {
				return err
			}
			c, err := root.Container(cmd)
			if err != nil {
				return err
			}
			_, err = c.GetService().Apply(cmd.Context(), "bill.attach", func(s models.Snapshot) (models.Snapshot, error) {
				return tracker.AttachBill(s, args[0], bill)
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Attached %s (%s) to %s\n", bill.Name, humanize.Bytes(uint64(bill.Size)), args[0])
			return nil
		},
	}
}

func newRemoveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <id>",
		Short: "Remove the bill of a transaction",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := root.Container(cmd)
			if err != nil {
				return err
			}
			_, err = c.GetService().Apply(cmd.Context(), "bill.remove", func(s models.Snapshot) (models.Snapshot, error) {
				return tracker.RemoveBill(s, args[0])
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed bill of %s\n", args[0])
			return nil
		},
	}
}

func newExtractCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "extract <id> <path>",
		Short: "Write a transaction's bill to a file or directory",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := root.Container(cmd)
			if err != nil {
				return err
			}
			snap, err := c.GetService().Load(cmd.Context())
			if err != nil {
				return err
			}
			bill, ok := snap.Bills[args[0]]
			if !ok {
				return &ledgererror.NotFoundError{Kind: "bill", ID: args[0]}
			}

			path := args[1]
			if fileutils.DirectoryExists(path) {
				path = filepath.Join(path, report.SafeFileName(bill.Name))
			}
			if err := fileutils.WriteFileAtomic(path, bill.Data); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
			return nil
		},
	}
}

func newArchiveCommand() *cobra.Command {
	var outDir string
	cmd := &cobra.Command{
		Use:   "archive",
		Short: "Zip every bill into one archive",
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
			exporter := *c.GetExporter()
			if outDir != "" {
				exporter.Dir = outDir
			}
			path, err := exporter.Export(cmd.Context(), report.FormatBills, snap)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Archived %d bills to %s\n", len(snap.Bills), path)
			return nil
		},
	}
	cmd.Flags().StringVarP(&outDir, "output", "o", "", "Output directory (default from config)")
	return cmd
}
