// Package store persists the ledger snapshot as a handful of opaque
// key/value payloads. Backends know nothing about the payload format; the
// Repository maps a models.Snapshot onto the keys.
package store

import (
	"context"
	"errors"
)

// Keys under which the snapshot is persisted.
const (
	KeyTransactions  = "transactions"
	KeyBills         = "bills"
	KeyBudget        = "budget"
	KeyValidPurposes = "validPurposes"
	KeyValidShops    = "validShops"
)

// AllKeys lists every key the Repository reads and writes.
var AllKeys = []string{KeyTransactions, KeyBills, KeyBudget, KeyValidPurposes, KeyValidShops}

// ErrClosed is returned by operations on a closed store.
var ErrClosed = errors.New("store is closed")

// Store is a byte-oriented key/value store. Writes to different keys are not
// atomic with respect to each other.
type Store interface {
	// Get returns the payload for key and whether it was present.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Put replaces the payload for key.
	Put(ctx context.Context, key string, value []byte) error
	// Delete removes key; deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
	// Clear removes every key.
	Clear(ctx context.Context) error
	// Close releases the backend's resources.
	Close() error
}
