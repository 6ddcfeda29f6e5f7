package store

import (
	"fmt"

	"ssshep/expensepro/internal/config"
	"ssshep/expensepro/internal/logging"
)

// NewStore builds the backend selected by cfg.Data.Backend.
func NewStore(cfg *config.Config, logger logging.Logger) (Store, error) {
	backend := cfg.Data.Backend
	log := logger.WithField(logging.FieldBackend, backend)

	switch backend {
	case config.BackendFile, "":
		dir := cfg.DataDirectory()
		s, err := NewFileStore(dir)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize file store: %w", err)
		}
		log.Debug("Using file store", logging.F("directory", dir))
		return s, nil
	case config.BackendSQLite:
		path := cfg.SQLitePath()
		s, err := NewSQLiteStore(path)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize SQLite store: %w", err)
		}
		log.Debug("Using SQLite store", logging.F("path", path))
		return s, nil
	case config.BackendMemory:
		log.Warn("Using in-memory store; changes are discarded on exit")
		return NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unsupported store backend: %s", backend)
	}
}
