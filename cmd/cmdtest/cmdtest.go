// Package cmdtest runs commands under a fresh root command for tests.
package cmdtest

import (
	"bytes"
	"testing"

	"ssshep/expensepro/cmd/root"

	"github.com/spf13/cobra"
)

// Env isolates a test from the user's home directory and environment
// configuration and returns a data directory for the file store.
func Env(t *testing.T) string {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	for _, key := range []string{"EXPENSEPRO_AI_ENABLED", "EXPENSEPRO_DATA_BACKEND", "EXPENSEPRO_DATA_DIRECTORY", "EXPENSEPRO_EXPORT_DIRECTORY"} {
		t.Setenv(key, "")
	}
	return t.TempDir()
}

// Run executes sub beneath a new root command using dataDir as the file
// store directory and returns what the command wrote to stdout.
func Run(t *testing.T, dataDir string, sub *cobra.Command, args ...string) (string, error) {
	t.Helper()

	cmd := root.NewCommand()
	cmd.AddCommand(sub)

	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(append(append([]string{sub.Name()}, args...), "--data-dir", dataDir, "--backend", "file", "--log-level", "error"))

	err := cmd.Execute()
	return out.String(), err
}
