package store

import (
	"path/filepath"
	"testing"

	"ssshep/expensepro/internal/config"
	"ssshep/expensepro/internal/logging"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStore(t *testing.T) {
	tests := []struct {
		backend string
		check   func(t *testing.T, s Store)
	}{
		{config.BackendFile, func(t *testing.T, s Store) { assert.IsType(t, &FileStore{}, s) }},
		{config.BackendSQLite, func(t *testing.T, s Store) { assert.IsType(t, &SQLiteStore{}, s) }},
		{config.BackendMemory, func(t *testing.T, s Store) { assert.IsType(t, &MemoryStore{}, s) }},
	}
	for _, tt := range tests {
		t.Run(tt.backend, func(t *testing.T) {
			cfg := &config.Config{}
			cfg.Data.Backend = tt.backend
			cfg.Data.Directory = filepath.Join(t.TempDir(), "data")
			cfg.Data.SQLiteFile = "test.db"

			s, err := NewStore(cfg, logging.NewMockLogger())
			require.NoError(t, err)
			defer s.Close()
			tt.check(t, s)
		})
	}
}

func TestNewStore_Unknown(t *testing.T) {
	cfg := &config.Config{}
	cfg.Data.Backend = "postgres"
	_, err := NewStore(cfg, logging.NewMockLogger())
	assert.Error(t, err)
}
