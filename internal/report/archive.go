package report

import (
	"archive/zip"
	"fmt"
	"io"
	"regexp"
	"sort"

	"ssshep/expensepro/internal/ledgererror"
	"ssshep/expensepro/internal/models"
)

var unsafeNameChars = regexp.MustCompile(`[^A-Za-z0-9_.-]`)

// SafeFileName replaces every character outside [A-Za-z0-9_.-] with '_'.
func SafeFileName(name string) string {
	return unsafeNameChars.ReplaceAllString(name, "_")
}

// ArchiveEntryName is the zip entry name for the bill of transaction id.
func ArchiveEntryName(id string, bill models.Bill) string {
	return id + "_" + SafeFileName(bill.Name)
}

// BillArchive writes every stored bill into one zip file.
type BillArchive struct{}

// NewBillArchive returns a BillArchive.
func NewBillArchive() *BillArchive {
	return &BillArchive{}
}

// Write adds one entry per bill, ordered by transaction ID.
func (a *BillArchive) Write(w io.Writer, bills models.BillMap) error {
	if len(bills) == 0 {
		return ledgererror.ErrNoBills
	}

	ids := make([]string, 0, len(bills))
	for id := range bills {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	zw := zip.NewWriter(w)
	for _, id := range ids {
		bill := bills[id]
		header := &zip.FileHeader{
			Name:     ArchiveEntryName(id, bill),
			Method:   zip.Deflate,
			Modified: bill.UploadedAt,
		}
		entry, err := zw.CreateHeader(header)
		if err != nil {
			zw.Close()
			return fmt.Errorf("add %s: %w", header.Name, err)
		}
		if _, err := entry.Write(bill.Data); err != nil {
			zw.Close()
			return fmt.Errorf("write %s: %w", header.Name, err)
		}
	}
	if err := zw.Close(); err != nil {
		return fmt.Errorf("finish archive: %w", err)
	}
	return nil
}
