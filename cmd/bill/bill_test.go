package bill_test

import (
	"archive/zip"
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"ssshep/expensepro/cmd/add"
	"ssshep/expensepro/cmd/bill"
	"ssshep/expensepro/cmd/cmdtest"
	"ssshep/expensepro/internal/ledgererror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var addedID = regexp.MustCompile(`Added transaction (\S+):`)

func TestBillLifecycle(t *testing.T) {
	dir := cmdtest.Env(t)
	work := t.TempDir()

	out, err := cmdtest.Run(t, dir, add.NewCommand(), "-c", "Ravi", "-p", "Tea", "-a", "40")
	require.NoError(t, err)
	id := addedID.FindStringSubmatch(out)[1]

	src := filepath.Join(work, "my receipt.png")
	content := []byte("\x89PNG\r\n\x1a\nbill")
	require.NoError(t, os.WriteFile(src, content, 0600))

	out, err = cmdtest.Run(t, dir, bill.NewCommand(), "attach", id, src)
	require.NoError(t, err)
	assert.Contains(t, out, "Attached my receipt.png")

	extractDir := filepath.Join(work, "extracted")
	require.NoError(t, os.Mkdir(extractDir, 0750))
	_, err = cmdtest.Run(t, dir, bill.NewCommand(), "extract", id, extractDir)
	require.NoError(t, err)
	data, err := os.ReadFile(filepath.Join(extractDir, "my_receipt.png"))
	require.NoError(t, err)
	assert.Equal(t, content, data)

	archiveDir := filepath.Join(work, "archive")
	out, err = cmdtest.Run(t, dir, bill.NewCommand(), "archive", "-o", archiveDir)
	require.NoError(t, err)
	assert.Contains(t, out, "Archived 1 bills")

	matches, err := filepath.Glob(filepath.Join(archiveDir, "ExpenseTracker_Bills_*.zip"))
	require.NoError(t, err)
	require.Len(t, matches, 1)
	zr, err := zip.OpenReader(matches[0])
	require.NoError(t, err)
	defer zr.Close()
	require.Len(t, zr.File, 1)
	assert.Equal(t, id+"_my_receipt.png", zr.File[0].Name)

	_, err = cmdtest.Run(t, dir, bill.NewCommand(), "remove", id)
	require.NoError(t, err)
	_, err = cmdtest.Run(t, dir, bill.NewCommand(), "remove", id)
	assert.True(t, ledgererror.IsNotFound(err))

	_, err = cmdtest.Run(t, dir, bill.NewCommand(), "archive", "-o", archiveDir)
	assert.ErrorIs(t, err, ledgererror.ErrNoBills)
}

func TestBillAttach_UnknownTransaction(t *testing.T) {
	dir := cmdtest.Env(t)
	src := filepath.Join(t.TempDir(), "r.jpg")
	require.NoError(t, os.WriteFile(src, []byte("data"), 0600))

	_, err := cmdtest.Run(t, dir, bill.NewCommand(), "attach", "missing", src)
	assert.True(t, ledgererror.IsNotFound(err))
}
