// Package analyze asks the configured AI provider for spending advice.
package analyze

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"ssshep/expensepro/cmd/root"
	"ssshep/expensepro/internal/advisor"
	"ssshep/expensepro/internal/models"

	"github.com/spf13/cobra"
)

// Cmd represents the analyze command
var Cmd = NewCommand()

// NewCommand builds the analyze command.
func NewCommand() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Get AI commentary on spending",
		Long: `Send the ledger totals and transactions to the configured AI provider
(Gemini or OpenAI) and print its summary, insights and recommendations.
Requires ai.enabled and the provider's API key.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := root.Container(cmd)
			if err != nil {
				return err
			}
			adv, err := c.GetAdvisor()
			if err != nil {
				return fmt.Errorf("%w: set ai.enabled and the provider API key", err)
			}
			snap, err := c.GetService().Load(cmd.Context())
			if err != nil {
				return err
			}
			return Run(cmd.Context(), cmd.OutOrStdout(), adv, snap, c.GetConfig().Ledger.TravelKeywords, asJSON)
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the advice as JSON")
	return cmd
}

// Run requests advice for snap and prints it to w.
func Run(ctx context.Context, w io.Writer, adv advisor.Advisor, snap models.Snapshot, travelKeywords []string, asJSON bool) error {
	advice, err := adv.Analyze(ctx, advisor.NewRequest(snap, travelKeywords))
	if err != nil {
		return err
	}

	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(advice)
	}

	fmt.Fprintln(w, "## Summary")
	fmt.Fprintln(w, advice.Summary)
	printSection(w, "Insights", advice.Insights)
	printSection(w, "Recommendations", advice.Recommendations)
	return nil
}

func printSection(w io.Writer, title string, items []string) {
	if len(items) == 0 {
		return
	}
	fmt.Fprintf(w, "\n## %s\n", title)
	for _, item := range items {
		fmt.Fprintf(w, "- %s\n", item)
	}
}
