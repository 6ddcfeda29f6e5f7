// Package export writes reports to files.
package export

import (
	"fmt"
	"strings"

	"ssshep/expensepro/cmd/root"
	"ssshep/expensepro/internal/report"

	"github.com/spf13/cobra"
)

// Cmd represents the export command
var Cmd = NewCommand()

const formatAll = "all"

// NewCommand builds the export command.
func NewCommand() *cobra.Command {
	var outDir string

	valid := []string{formatAll}
	for _, f := range report.Formats {
		valid = append(valid, string(f))
	}

	cmd := &cobra.Command{
		Use:   "export <" + strings.Join(valid, "|") + ">",
		Short: "Export transactions as PDF, XLSX or CSV, or bills as a zip",
		Long: `Export the ledger. Formats:
  pdf      all transactions as a PDF table
  summary  totals and top spending as a PDF
  xlsx     transactions as a spreadsheet
  csv      transactions as delimited text
  bills    every bill in a zip archive
  all      every format above`,
		ValidArgs: valid,
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
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

			var paths []string
			if args[0] == formatAll {
				paths, err = exporter.ExportAll(cmd.Context(), snap)
			} else {
				var format report.Format
				format, err = report.ParseFormat(args[0])
				if err != nil {
					return err
				}
				var path string
				path, err = exporter.Export(cmd.Context(), format, snap)
				paths = []string{path}
			}
			if err != nil {
				return err
			}

			for _, p := range paths {
				fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", p)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&outDir, "output", "o", "", "Output directory (default from config)")
	return cmd
}
