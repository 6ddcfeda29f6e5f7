package report

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"ssshep/expensepro/internal/fileutils"
	"ssshep/expensepro/internal/ledger"
	"ssshep/expensepro/internal/ledgererror"
	"ssshep/expensepro/internal/logging"
	"ssshep/expensepro/internal/models"

	"golang.org/x/sync/errgroup"
)

// Format is an export target selectable from the command line.
type Format string

const (
	FormatPDF     Format = "pdf"
	FormatSummary Format = "summary"
	FormatXLSX    Format = "xlsx"
	FormatCSV     Format = "csv"
	FormatBills   Format = "bills"
)

// Formats lists every export format in the order ExportAll writes them.
var Formats = []Format{FormatPDF, FormatSummary, FormatXLSX, FormatCSV, FormatBills}

// ParseFormat resolves a format name, case-insensitively.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Formats {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown export format %q", s)
}

// Exporter renders ledger snapshots into files under Dir.
type Exporter struct {
	Dir            string
	Prefix         string
	Delimiter      rune
	TravelKeywords []string

	PDF         *PDFRenderer
	Spreadsheet *SpreadsheetWriter
	CSV         *CSVWriter
	Bills       *BillArchive

	Now    func() time.Time
	logger logging.Logger
}

// NewExporter returns an Exporter writing into dir with the given file prefix.
func NewExporter(dir, prefix string, delimiter rune, travelKeywords []string, logger logging.Logger) *Exporter {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	return &Exporter{
		Dir:            dir,
		Prefix:         prefix,
		Delimiter:      delimiter,
		TravelKeywords: travelKeywords,
		PDF:            NewPDFRenderer(),
		Spreadsheet:    NewSpreadsheetWriter(),
		CSV:            NewCSVWriter(delimiter),
		Bills:          NewBillArchive(),
		Now:            time.Now,
		logger:         logger,
	}
}

// FileNameFor returns the base file name of an export in format f.
func (e *Exporter) FileNameFor(f Format) string {
	date := e.Now()
	switch f {
	case FormatPDF:
		return FileName(e.Prefix, KindAllTransactionsPDF, date, "pdf")
	case FormatSummary:
		return FileName(e.Prefix, KindSummaryPDF, date, "pdf")
	case FormatXLSX:
		return FileName(e.Prefix, KindSpreadsheet, date, "xlsx")
	case FormatCSV:
		return FileName(e.Prefix, KindCSV, date, "csv")
	case FormatBills:
		return FileName(BillsArchivePrefix, KindBills, date, "zip")
	}
	return ""
}

// Render writes the snapshot in format f to w.
func (e *Exporter) Render(w io.Writer, f Format, s models.Snapshot) error {
	switch f {
	case FormatPDF:
		return e.PDF.AllTransactions(w, s.Transactions, s.Bills)
	case FormatSummary:
		return e.PDF.Summary(w, ledger.Summarize(s.Transactions, s.Budget, e.TravelKeywords))
	case FormatXLSX:
		return e.Spreadsheet.Write(w, s.Transactions)
	case FormatCSV:
		return e.CSV.Write(w, s.Transactions)
	case FormatBills:
		return e.Bills.Write(w, s.Bills)
	}
	return fmt.Errorf("unknown export format %q", f)
}

// Export renders one format to a file and returns its path.
func (e *Exporter) Export(ctx context.Context, f Format, s models.Snapshot) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	start := time.Now()

	var buf bytes.Buffer
	if err := e.Render(&buf, f, s); err != nil {
		return "", err
	}
	if err := fileutils.EnsureDirectoryExists(e.Dir); err != nil {
		return "", fmt.Errorf("create export directory: %w", err)
	}
	path := filepath.Join(e.Dir, e.FileNameFor(f))
	if err := fileutils.WriteFileAtomic(path, buf.Bytes()); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}

	e.logger.WithFields(
		logging.Field{Key: logging.FieldFormat, Value: string(f)},
		logging.Field{Key: logging.FieldOutputFile, Value: path},
		logging.Field{Key: logging.FieldDuration, Value: time.Since(start).Milliseconds()},
	).Info("Export written")
	return path, nil
}

// ExportAll writes every format concurrently. The bill archive is skipped
// when no bills are stored. Returned paths are sorted.
func (e *Exporter) ExportAll(ctx context.Context, s models.Snapshot) ([]string, error) {
	if len(s.Transactions) == 0 {
		return nil, ledgererror.ErrNoTransactions
	}

	g, gctx := errgroup.WithContext(ctx)
	paths := make([]string, len(Formats))
	for i, f := range Formats {
		if f == FormatBills && len(s.Bills) == 0 {
			continue
		}
		g.Go(func() error {
			path, err := e.Export(gctx, f, s)
			if err != nil {
				if errors.Is(err, ledgererror.ErrNoBills) {
					return nil
				}
				return fmt.Errorf("%s export: %w", f, err)
			}
			paths[i] = path
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	written := make([]string, 0, len(paths))
	for _, p := range paths {
		if p != "" {
			written = append(written, p)
		}
	}
	sort.Strings(written)
	return written, nil
}
