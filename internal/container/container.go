// Package container provides dependency injection for the expensepro application.
// It centralizes the creation and wiring of all application dependencies,
// making them explicit and testable.
package container

import (
	"errors"
	"fmt"

	"ssshep/expensepro/internal/advisor"
	"ssshep/expensepro/internal/config"
	"ssshep/expensepro/internal/ledgererror"
	"ssshep/expensepro/internal/logging"
	"ssshep/expensepro/internal/report"
	"ssshep/expensepro/internal/store"
	"ssshep/expensepro/internal/tracker"
)

// Container holds all application dependencies and provides methods to access them.
//
// Container is immutable after creation - all fields are private and can only
// be accessed through getter methods.
type Container struct {
	logger     logging.Logger
	config     *config.Config
	store      store.Store
	repository *store.Repository
	service    *tracker.Service
	exporter   *report.Exporter
	advisor    advisor.Advisor
}

// NewContainer creates and wires all application dependencies, building the
// logger from the configuration.
func NewContainer(cfg *config.Config) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}
	return NewContainerWithLogger(cfg, logging.NewLogrusAdapter(cfg.Log.Level, cfg.Log.Format))
}

// NewContainerWithLogger wires dependencies around an existing logger.
func NewContainerWithLogger(cfg *config.Config, logger logging.Logger) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger cannot be nil")
	}

	backend, err := store.NewStore(cfg, logger)
	if err != nil {
		return nil, err
	}

	repo := store.NewRepository(backend, logger, cfg.InitialBudget())
	service := tracker.NewService(repo, logger)

	exporter := report.NewExporter(
		cfg.Export.Directory,
		cfg.Export.FilePrefix,
		cfg.DelimiterRune(),
		cfg.Ledger.TravelKeywords,
		logger,
	)

	// AI advisory is optional; a disabled provider leaves the advisor nil.
	adv, err := advisor.New(cfg, logger)
	switch {
	case errors.Is(err, ledgererror.ErrAdvisorDisabled):
		logger.Debug("AI advisory disabled")
	case err != nil:
		_ = backend.Close()
		return nil, fmt.Errorf("failed to create AI advisor: %w", err)
	default:
		logger.Debug("AI advisory enabled", logging.F(logging.FieldProvider, cfg.AI.Provider))
	}

	logger.Debug("Container initialized successfully",
		logging.F(logging.FieldBackend, cfg.Data.Backend),
		logging.F("ai_enabled", adv != nil))

	return &Container{
		logger:     logger,
		config:     cfg,
		store:      backend,
		repository: repo,
		service:    service,
		exporter:   exporter,
		advisor:    adv,
	}, nil
}

// GetLogger returns the container's logger instance.
func (c *Container) GetLogger() logging.Logger {
	return c.logger
}

// GetConfig returns the container's configuration instance.
func (c *Container) GetConfig() *config.Config {
	return c.config
}

// GetStore returns the key/value backend.
func (c *Container) GetStore() store.Store {
	return c.store
}

// GetRepository returns the snapshot repository.
func (c *Container) GetRepository() *store.Repository {
	return c.repository
}

// GetService returns the ledger service.
func (c *Container) GetService() *tracker.Service {
	return c.service
}

// GetExporter returns the report exporter.
func (c *Container) GetExporter() *report.Exporter {
	return c.exporter
}

// GetAdvisor returns the AI advisor, or ledgererror.ErrAdvisorDisabled when
// AI advisory is not configured.
func (c *Container) GetAdvisor() (advisor.Advisor, error) {
	if c.advisor == nil {
		return nil, ledgererror.ErrAdvisorDisabled
	}
	return c.advisor, nil
}

// Close releases the advisor client and the store.
func (c *Container) Close() error {
	var errs []error
	if c.advisor != nil {
		if err := c.advisor.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close advisor: %w", err))
		}
	}
	if err := c.store.Close(); err != nil {
		errs = append(errs, fmt.Errorf("close store: %w", err))
	}
	c.logger.Debug("Container closed")
	return errors.Join(errs...)
}
