// Package root contains the root command for the application
package root

import (
	"context"
	"fmt"
	"strings"

	"ssshep/expensepro/internal/config"
	"ssshep/expensepro/internal/container"
	"ssshep/expensepro/internal/logging"

	"github.com/spf13/cobra"
)

// Options holds the persistent flags shared by every command.
type Options struct {
	ConfigFile string
	LogLevel   string
	DataDir    string
	Backend    string
}

type containerKey struct{}

var (
	// Log is the shared logger instance for commands
	Log logging.Logger = logging.NewLogrusAdapter("info", "text")

	// Cmd is the root command
	Cmd = NewCommand()
)

// NewCommand builds a root command with its own flag set. main uses Cmd;
// tests build fresh trees so flag values do not leak between runs.
func NewCommand() *cobra.Command {
	opts := &Options{}

	cmd := &cobra.Command{
		Use:   "expensepro",
		Short: "A CLI ledger for tracking expenses against a budget.",
		Long: `expensepro records expenses (with or without a bill) against an initial budget.
It reports totals, remaining balance and travel charges, exports PDF, XLSX and CSV
reports, archives bill images and can ask an AI model for spending advice.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			c, err := setup(opts)
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			cmd.SetContext(context.WithValue(ctx, containerKey{}, c))
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if c, ok := cmd.Context().Value(containerKey{}).(*container.Container); ok {
				return c.Close()
			}
			return nil
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.ConfigFile, "config", "", "Config file (default is $HOME/.expensepro/config.yaml)")
	flags.StringVar(&opts.LogLevel, "log-level", "", "Log level (trace, debug, info, warn, error)")
	flags.StringVar(&opts.DataDir, "data-dir", "", "Directory holding the ledger data")
	flags.StringVar(&opts.Backend, "backend", "", "Storage backend (file, sqlite, memory)")
	return cmd
}

func setup(opts *Options) (*container.Container, error) {
	config.LoadEnv()

	cfg, err := config.LoadConfig(opts.ConfigFile)
	if err != nil {
		return nil, err
	}
	if opts.DataDir != "" {
		cfg.Data.Directory = opts.DataDir
	}
	if opts.Backend != "" {
		cfg.Data.Backend = strings.ToLower(opts.Backend)
	}

	Log = config.ConfigureLoggingFromConfig(cfg, opts.LogLevel)
	Log.Debug("Configuration loaded", logging.F(logging.FieldBackend, cfg.Data.Backend))

	c, err := container.NewContainerWithLogger(cfg, Log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize application: %w", err)
	}
	return c, nil
}

// Container returns the container created for the running command.
func Container(cmd *cobra.Command) (*container.Container, error) {
	if ctx := cmd.Context(); ctx != nil {
		if c, ok := ctx.Value(containerKey{}).(*container.Container); ok {
			return c, nil
		}
	}
	return nil, fmt.Errorf("application not initialized")
}
