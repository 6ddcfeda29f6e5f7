// Package configcmd prints the effective configuration.
package configcmd

import (
	"ssshep/expensepro/cmd/root"

	"github.com/spf13/cobra"
)

// Cmd represents the config command
var Cmd = NewCommand()

// NewCommand builds the config command.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect the configuration",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration as YAML (API keys omitted)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := root.Container(cmd)
			if err != nil {
				return err
			}
			out, err := c.GetConfig().ToYAML()
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	})
	return cmd
}
