package tracker

import (
	"context"
	"fmt"
	"time"

	"ssshep/expensepro/internal/logging"
	"ssshep/expensepro/internal/models"

	"github.com/shopspring/decimal"
)

// Repository is the persistence boundary the Service depends on.
type Repository interface {
	Load(ctx context.Context) (models.Snapshot, error)
	Save(ctx context.Context, snap models.Snapshot) error
	Reset(ctx context.Context) error
}

// Mutation turns one snapshot into the next.
type Mutation func(models.Snapshot) (models.Snapshot, error)

// Service loads the snapshot, applies a mutation and saves the result
// wholesale. It holds no state between calls.
type Service struct {
	repo   Repository
	logger logging.Logger
}

// NewService creates a Service over repo.
func NewService(repo Repository, logger logging.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// Load returns the current snapshot.
func (s *Service) Load(ctx context.Context) (models.Snapshot, error) {
	snap, err := s.repo.Load(ctx)
	if err != nil {
		return models.Snapshot{}, fmt.Errorf("failed to load ledger: %w", err)
	}
	return snap, nil
}

// Save persists snap.
func (s *Service) Save(ctx context.Context, snap models.Snapshot) error {
	if err := s.repo.Save(ctx, snap); err != nil {
		return fmt.Errorf("failed to save ledger: %w", err)
	}
	return nil
}

// Apply runs fn over the current snapshot and saves its result. Nothing is
// saved when fn fails.
func (s *Service) Apply(ctx context.Context, operation string, fn Mutation) (models.Snapshot, error) {
	start := time.Now()
	log := s.logger.WithField(logging.FieldOperation, operation)

	current, err := s.Load(ctx)
	if err != nil {
		return models.Snapshot{}, err
	}
	next, err := fn(current)
	if err != nil {
		log.WithError(err).Debug("Mutation rejected")
		return current, err
	}
	if err := s.Save(ctx, next); err != nil {
		return current, err
	}

	log.Debug("Mutation applied",
		logging.F(logging.FieldCount, len(next.Transactions)),
		logging.F(logging.FieldDuration, time.Since(start).Milliseconds()))
	return next, nil
}

// Reset wipes the store and saves the first-run snapshot for initialBudget.
func (s *Service) Reset(ctx context.Context, initialBudget decimal.Decimal) (models.Snapshot, error) {
	if err := s.repo.Reset(ctx); err != nil {
		return models.Snapshot{}, fmt.Errorf("failed to reset ledger: %w", err)
	}
	fresh := Reset(initialBudget)
	if err := s.repo.Save(ctx, fresh); err != nil {
		return models.Snapshot{}, fmt.Errorf("failed to reset ledger: %w", err)
	}
	s.logger.Info("Ledger reset to defaults", logging.F(logging.FieldBudget, fresh.Budget.String()))
	return fresh, nil
}
