package show_test

import (
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"ssshep/expensepro/cmd/add"
	"ssshep/expensepro/cmd/cmdtest"
	"ssshep/expensepro/cmd/show"
	"ssshep/expensepro/internal/ledgererror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShowCommand(t *testing.T) {
	dir := cmdtest.Env(t)
	billPath := filepath.Join(t.TempDir(), "bill.pdf")
	require.NoError(t, os.WriteFile(billPath, []byte("%PDF-1.4 bill"), 0600))

	out, err := cmdtest.Run(t, dir, add.NewCommand(), "-c", "Ravi", "-p", "Printing", "-a", "300", "--bill", billPath)
	require.NoError(t, err)
	id := regexp.MustCompile(`Added transaction (\S+):`).FindStringSubmatch(out)[1]

	out, err = cmdtest.Run(t, dir, show.NewCommand(), id)
	require.NoError(t, err)
	assert.Contains(t, out, "Printing")
	assert.Contains(t, out, "N/A")
	assert.Contains(t, out, "bill.pdf (application/pdf")

	_, err = cmdtest.Run(t, dir, show.NewCommand(), "nope")
	assert.True(t, ledgererror.IsNotFound(err))
}
