package models

import "github.com/shopspring/decimal"

// Snapshot is the complete persisted state of one ledger. Reducers take a
// snapshot and return a new one; nothing mutates a snapshot in place.
type Snapshot struct {
	Transactions  []Transaction
	Bills         BillMap
	Budget        decimal.Decimal
	ValidPurposes []string
	ValidShops    []string
}

// NewSnapshot returns the first-run state.
func NewSnapshot() Snapshot {
	return Snapshot{
		Transactions:  []Transaction{},
		Bills:         BillMap{},
		Budget:        DefaultBudget,
		ValidPurposes: append([]string(nil), DefaultPurposes...),
		ValidShops:    append([]string(nil), DefaultShops...),
	}
}

// Clone returns a copy whose slices and maps can be changed without
// affecting s.
func (s Snapshot) Clone() Snapshot {
	return Snapshot{
		Transactions:  append([]Transaction{}, s.Transactions...),
		Bills:         s.Bills.Clone(),
		Budget:        s.Budget,
		ValidPurposes: append([]string{}, s.ValidPurposes...),
		ValidShops:    append([]string{}, s.ValidShops...),
	}
}

// FindTransaction returns the index of the transaction with id, or -1.
func (s Snapshot) FindTransaction(id string) int {
	for i, tx := range s.Transactions {
		if tx.ID == id {
			return i
		}
	}
	return -1
}
