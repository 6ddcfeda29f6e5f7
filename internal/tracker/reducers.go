// Package tracker holds the ledger's state transitions. Each reducer takes a
// snapshot and returns a new one; the input snapshot is never modified.
package tracker

import (
	"ssshep/expensepro/internal/ledger"
	"ssshep/expensepro/internal/ledgererror"
	"ssshep/expensepro/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// NewID generates transaction identifiers. Tests may replace it.
var NewID = uuid.NewString

// AddTransaction validates draft, checks it against the remaining balance,
// assigns a fresh ID and appends it. bill is stored only for WithBill
// transactions. The purpose and shop vocabularies grow to include the new values.
func AddTransaction(s models.Snapshot, draft models.Transaction, bill *models.Bill) (models.Snapshot, models.Transaction, error) {
	if err := draft.Validate(); err != nil {
		return s, models.Transaction{}, err
	}

	remaining := ledger.ComputeTotals(s.Transactions, s.Budget).RemainingBalance
	if draft.AmountGiven.GreaterThan(remaining) {
		return s, models.Transaction{}, &ledgererror.InsufficientBalanceError{
			Amount:    draft.AmountGiven.StringFixed(2),
			Remaining: remaining.StringFixed(2),
		}
	}

	next := s.Clone()
	draft.ID = NewID()
	next.Transactions = append(next.Transactions, draft)
	if bill != nil && draft.BillType == models.WithBill {
		next.Bills[draft.ID] = *bill
	}
	next.ValidPurposes = growVocabulary(next.ValidPurposes, draft.Purpose)
	next.ValidShops = growVocabulary(next.ValidShops, draft.ShopName)
	return next, draft, nil
}

// UpdateTransaction replaces the transaction with id by draft, keeping the
// ID. Edits are not checked against the remaining balance.
func UpdateTransaction(s models.Snapshot, id string, draft models.Transaction) (models.Snapshot, models.Transaction, error) {
	idx := s.FindTransaction(id)
	if idx < 0 {
		return s, models.Transaction{}, &ledgererror.NotFoundError{Kind: "transaction", ID: id}
	}
	if err := draft.Validate(); err != nil {
		return s, models.Transaction{}, err
	}

	next := s.Clone()
	draft.ID = id
	next.Transactions[idx] = draft
	next.ValidPurposes = growVocabulary(next.ValidPurposes, draft.Purpose)
	next.ValidShops = growVocabulary(next.ValidShops, draft.ShopName)
	return next, draft, nil
}

// DeleteTransaction removes the transaction with id and its bill.
func DeleteTransaction(s models.Snapshot, id string) (models.Snapshot, error) {
	idx := s.FindTransaction(id)
	if idx < 0 {
		return s, &ledgererror.NotFoundError{Kind: "transaction", ID: id}
	}
	next := s.Clone()
	next.Transactions = append(next.Transactions[:idx], next.Transactions[idx+1:]...)
	delete(next.Bills, id)
	return next, nil
}

// DeleteAllTransactions removes every transaction and bill. The budget and
// vocabularies are kept.
func DeleteAllTransactions(s models.Snapshot) models.Snapshot {
	next := s.Clone()
	next.Transactions = []models.Transaction{}
	next.Bills = models.BillMap{}
	return next
}

// AttachBill stores bill for the transaction with id, replacing any previous bill.
func AttachBill(s models.Snapshot, id string, bill models.Bill) (models.Snapshot, error) {
	if s.FindTransaction(id) < 0 {
		return s, &ledgererror.NotFoundError{Kind: "transaction", ID: id}
	}
	next := s.Clone()
	next.Bills[id] = bill
	return next, nil
}

// RemoveBill deletes the bill of the transaction with id. The transaction stays.
func RemoveBill(s models.Snapshot, id string) (models.Snapshot, error) {
	if !s.Bills.Has(id) {
		return s, &ledgererror.NotFoundError{Kind: "bill", ID: id}
	}
	next := s.Clone()
	delete(next.Bills, id)
	return next, nil
}

// SetBudget replaces the budget. Only positive values are accepted.
func SetBudget(s models.Snapshot, budget decimal.Decimal) (models.Snapshot, error) {
	if !budget.IsPositive() {
		return s, &ledgererror.InvalidBudgetError{Value: budget.String(), Reason: "must be a positive number"}
	}
	next := s.Clone()
	next.Budget = budget
	return next, nil
}

// ImportTransactions appends rows, assigning each a fresh ID. Imported rows
// bypass the balance check and leave the vocabularies unchanged.
func ImportTransactions(s models.Snapshot, rows []models.Transaction) (models.Snapshot, []models.Transaction, error) {
	added := make([]models.Transaction, 0, len(rows))
	for _, row := range rows {
		if err := row.Validate(); err != nil {
			return s, nil, err
		}
		row.ID = NewID()
		added = append(added, row)
	}
	next := s.Clone()
	next.Transactions = append(next.Transactions, added...)
	return next, added, nil
}

// Reset returns the first-run snapshot with the given budget.
func Reset(initialBudget decimal.Decimal) models.Snapshot {
	s := models.NewSnapshot()
	if initialBudget.IsPositive() {
		s.Budget = initialBudget
	}
	return s
}

// growVocabulary adds value to vocab when it is new. A vocabulary that grows
// is re-sorted; one that does not is returned unchanged.
func growVocabulary(vocab []string, value string) []string {
	if value == "" {
		return vocab
	}
	for _, v := range vocab {
		if v == value {
			return vocab
		}
	}
	return ledger.MergeVocabulary(vocab, value)
}
