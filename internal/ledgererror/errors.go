// Package ledgererror defines the typed errors surfaced by the ledger,
// its store and its import/export collaborators.
package ledgererror

import (
	"errors"
	"fmt"
)

var (
	// ErrNoTransactions is returned by reports and exports run on an empty ledger.
	ErrNoTransactions = errors.New("no transactions")
	// ErrNoBills is returned when a bill archive is requested but no bill is stored.
	ErrNoBills = errors.New("no bills available")
	// ErrAdvisorDisabled is returned when AI analysis is requested without a configured provider.
	ErrAdvisorDisabled = errors.New("AI advisory is disabled")
)

// MalformedDateError reports a transaction whose date text is not DD/MM/YYYY.
type MalformedDateError struct {
	TransactionID string
	Date          string
	Err           error
}

func (e *MalformedDateError) Error() string {
	return fmt.Sprintf("transaction %s has malformed date '%s': %v", e.TransactionID, e.Date, e.Err)
}

func (e *MalformedDateError) Unwrap() error {
	return e.Err
}

// InvalidBudgetError reports a budget that is non-numeric, non-finite or otherwise unusable.
type InvalidBudgetError struct {
	Value  string
	Reason string
}

func (e *InvalidBudgetError) Error() string {
	return fmt.Sprintf("invalid budget '%s': %s", e.Value, e.Reason)
}

// ValidationError reports a transaction field that failed validation.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed for %s: %s", e.Field, e.Reason)
}

// ImportRowError reports a bad row in an imported spreadsheet. Row is the
// 1-based sheet row, so the first data row is row 2.
type ImportRowError struct {
	Row    int
	Field  string
	Reason string
}

func (e *ImportRowError) Error() string {
	return fmt.Sprintf("%s '%s' in row %d", e.Reason, e.Field, e.Row)
}

// NotFoundError reports a lookup by id that matched nothing.
type NotFoundError struct {
	Kind string
	ID   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Kind, e.ID)
}

// InsufficientBalanceError reports a new transaction larger than the remaining balance.
type InsufficientBalanceError struct {
	Amount    string
	Remaining string
}

func (e *InsufficientBalanceError) Error() string {
	return fmt.Sprintf("amount %s exceeds remaining balance %s", e.Amount, e.Remaining)
}

// IsNotFound reports whether err is, or wraps, a NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}
