// Package dateutils provides the day-first date handling used by the ledger.
package dateutils

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// Date layouts understood by the ledger.
const (
	// LedgerLayout is the canonical stored form: DD/MM/YYYY.
	LedgerLayout = "02/01/2006"
	// lenientLedgerLayout accepts one or two digit day and month.
	lenientLedgerLayout = "2/1/2006"

	DateLayoutISO      = "2006-01-02"
	DateLayoutEuropean = "02.01.2006"
	DateLayoutDashed   = "02-01-2006"
)

// importFormats are tried, in order, for dates read from spreadsheets and CSV files.
// All of them are day-first; month-first layouts are deliberately absent.
var importFormats = []string{
	lenientLedgerLayout,
	DateLayoutISO,
	DateLayoutEuropean,
	DateLayoutDashed,
	"2-1-2006",
	"2.1.2006",
	"2006-01-02 15:04:05",
	"2 Jan 2006",
	"02 Jan 2006",
}

var whitespace = regexp.MustCompile(`\s+`)

// CleanDateString trims and collapses whitespace.
func CleanDateString(dateStr string) string {
	return whitespace.ReplaceAllString(strings.TrimSpace(dateStr), " ")
}

// ParseLedgerDate parses a stored DD/MM/YYYY date. Day and month may have one
// or two digits. Out-of-range components (31/02/2024) are rejected.
func ParseLedgerDate(dateStr string) (time.Time, error) {
	clean := CleanDateString(dateStr)
	if clean == "" {
		return time.Time{}, fmt.Errorf("empty date")
	}
	t, err := time.Parse(lenientLedgerLayout, clean)
	if err != nil {
		return time.Time{}, fmt.Errorf("unable to parse date %q as DD/MM/YYYY: %w", dateStr, err)
	}
	return t, nil
}

// FormatLedgerDate renders t as DD/MM/YYYY.
func FormatLedgerDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(LedgerLayout)
}

// NormalizeDate parses any supported day-first layout and returns the
// canonical DD/MM/YYYY form.
func NormalizeDate(dateStr string) (string, error) {
	clean := CleanDateString(dateStr)
	if clean == "" {
		return "", fmt.Errorf("empty date")
	}
	for _, layout := range importFormats {
		if t, err := time.Parse(layout, clean); err == nil {
			return FormatLedgerDate(t), nil
		}
	}
	return "", fmt.Errorf("unable to parse date: %s", dateStr)
}

// Today returns the current local date in ledger form.
func Today() string {
	return FormatLedgerDate(time.Now())
}

// ToISODate formats t as YYYY-MM-DD, the form used in export file names.
func ToISODate(t time.Time) string {
	return t.Format(DateLayoutISO)
}
