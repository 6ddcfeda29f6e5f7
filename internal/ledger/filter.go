package ledger

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"ssshep/expensepro/internal/dateutils"
	"ssshep/expensepro/internal/ledgererror"
	"ssshep/expensepro/internal/models"
)

// BillFilter selects transactions by bill type.
type BillFilter string

const (
	AllBills        BillFilter = "all"
	OnlyWithBill    BillFilter = BillFilter(models.WithBill)
	OnlyWithoutBill BillFilter = BillFilter(models.WithoutBill)
)

// ParseBillFilter accepts "all", "withBill", "withoutBill" and the
// spreadsheet labels. Empty input means AllBills.
func ParseBillFilter(s string) (BillFilter, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "all":
		return AllBills, nil
	case "withbill", "with bill", "with":
		return OnlyWithBill, nil
	case "withoutbill", "without bill", "without":
		return OnlyWithoutBill, nil
	}
	return "", &ledgererror.ValidationError{Field: "billType", Reason: fmt.Sprintf("unknown filter %q", s)}
}

// Criteria are combined with AND. Empty Customer, Purpose and Search match
// everything. Customer and Purpose are exact matches; Search is a
// case-insensitive substring match against customer, shop or purpose.
type Criteria struct {
	BillType BillFilter
	Customer string
	Purpose  string
	Search   string
}

func (c Criteria) matches(tx models.Transaction, search string) bool {
	if c.BillType != "" && c.BillType != AllBills && string(tx.BillType) != string(c.BillType) {
		return false
	}
	if c.Customer != "" && tx.CustomerName != c.Customer {
		return false
	}
	if c.Purpose != "" && tx.Purpose != c.Purpose {
		return false
	}
	if search == "" {
		return true
	}
	return strings.Contains(strings.ToLower(tx.CustomerName), search) ||
		strings.Contains(strings.ToLower(tx.ShopName), search) ||
		strings.Contains(strings.ToLower(tx.Purpose), search)
}

// FilterAndSort returns the transactions matching criteria, newest first.
// Transactions sharing a date keep their input order. Every date in the
// input is checked first; the first malformed one is reported as a
// MalformedDateError even if that record would have been filtered out.
func FilterAndSort(transactions []models.Transaction, criteria Criteria) ([]models.Transaction, error) {
	dates, err := parseDates(transactions)
	if err != nil {
		return nil, err
	}

	search := strings.ToLower(criteria.Search)
	type entry struct {
		tx   models.Transaction
		date time.Time
	}
	matched := make([]entry, 0, len(transactions))
	for i, tx := range transactions {
		if criteria.matches(tx, search) {
			matched = append(matched, entry{tx: tx, date: dates[i]})
		}
	}

	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].date.After(matched[j].date)
	})

	result := make([]models.Transaction, len(matched))
	for i, e := range matched {
		result[i] = e.tx
	}
	return result, nil
}

func parseDates(transactions []models.Transaction) ([]time.Time, error) {
	dates := make([]time.Time, len(transactions))
	for i, tx := range transactions {
		d, err := dateutils.ParseLedgerDate(tx.Date)
		if err != nil {
			return nil, &ledgererror.MalformedDateError{TransactionID: tx.ID, Date: tx.Date, Err: err}
		}
		dates[i] = d
	}
	return dates, nil
}
