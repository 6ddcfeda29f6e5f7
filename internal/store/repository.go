package store

import (
	"context"
	"encoding/json"
	"fmt"

	"ssshep/expensepro/internal/logging"
	"ssshep/expensepro/internal/models"

	"github.com/shopspring/decimal"
)

// Repository loads and saves a models.Snapshot through a Store.
type Repository struct {
	store         Store
	logger        logging.Logger
	initialBudget decimal.Decimal
}

// NewRepository returns a Repository whose first-run budget is initialBudget.
// A non-positive initialBudget falls back to models.DefaultBudget.
func NewRepository(s Store, logger logging.Logger, initialBudget decimal.Decimal) *Repository {
	if !initialBudget.IsPositive() {
		initialBudget = models.DefaultBudget
	}
	return &Repository{store: s, logger: logger, initialBudget: initialBudget}
}

// Defaults returns the snapshot used when nothing has been saved yet.
func (r *Repository) Defaults() models.Snapshot {
	s := models.NewSnapshot()
	s.Budget = r.initialBudget
	return s
}

// Load reads every key. Missing keys take their default value; a key whose
// payload cannot be decoded fails the whole load.
func (r *Repository) Load(ctx context.Context) (models.Snapshot, error) {
	snap := r.Defaults()

	if err := r.loadJSON(ctx, KeyTransactions, &snap.Transactions); err != nil {
		return models.Snapshot{}, err
	}
	if err := r.loadJSON(ctx, KeyBills, &snap.Bills); err != nil {
		return models.Snapshot{}, err
	}
	if err := r.loadJSON(ctx, KeyValidPurposes, &snap.ValidPurposes); err != nil {
		return models.Snapshot{}, err
	}
	if err := r.loadJSON(ctx, KeyValidShops, &snap.ValidShops); err != nil {
		return models.Snapshot{}, err
	}

	raw, ok, err := r.store.Get(ctx, KeyBudget)
	if err != nil {
		return models.Snapshot{}, fmt.Errorf("failed to load %s: %w", KeyBudget, err)
	}
	if ok {
		budget, err := decimal.NewFromString(string(raw))
		if err != nil {
			return models.Snapshot{}, fmt.Errorf("failed to decode %s: %w", KeyBudget, err)
		}
		snap.Budget = budget
	}

	if snap.Transactions == nil {
		snap.Transactions = []models.Transaction{}
	}
	if snap.Bills == nil {
		snap.Bills = models.BillMap{}
	}

	r.logger.Debug("Loaded ledger snapshot",
		logging.F(logging.FieldCount, len(snap.Transactions)),
		logging.F(logging.FieldBudget, snap.Budget.String()))
	return snap, nil
}

func (r *Repository) loadJSON(ctx context.Context, key string, target interface{}) error {
	raw, ok, err := r.store.Get(ctx, key)
	if err != nil {
		return fmt.Errorf("failed to load %s: %w", key, err)
	}
	if !ok {
		return nil
	}
	if err := json.Unmarshal(raw, target); err != nil {
		return fmt.Errorf("failed to decode %s: %w", key, err)
	}
	return nil
}

// Save writes the whole snapshot, one key at a time.
func (r *Repository) Save(ctx context.Context, snap models.Snapshot) error {
	transactions := snap.Transactions
	if transactions == nil {
		transactions = []models.Transaction{}
	}
	bills := snap.Bills
	if bills == nil {
		bills = models.BillMap{}
	}

	payloads := []struct {
		key   string
		value interface{}
	}{
		{KeyTransactions, transactions},
		{KeyBills, bills},
		{KeyValidPurposes, snap.ValidPurposes},
		{KeyValidShops, snap.ValidShops},
	}
	for _, p := range payloads {
		data, err := json.Marshal(p.value)
		if err != nil {
			return fmt.Errorf("failed to encode %s: %w", p.key, err)
		}
		if err := r.store.Put(ctx, p.key, data); err != nil {
			return fmt.Errorf("failed to save %s: %w", p.key, err)
		}
	}
	if err := r.store.Put(ctx, KeyBudget, []byte(snap.Budget.String())); err != nil {
		return fmt.Errorf("failed to save %s: %w", KeyBudget, err)
	}

	r.logger.Debug("Saved ledger snapshot", logging.F(logging.FieldCount, len(transactions)))
	return nil
}

// Reset clears every persisted key.
func (r *Repository) Reset(ctx context.Context) error {
	if err := r.store.Clear(ctx); err != nil {
		return fmt.Errorf("failed to clear store: %w", err)
	}
	r.logger.Info("Cleared all stored data")
	return nil
}
