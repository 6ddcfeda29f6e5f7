package container

import (
	"context"
	"path/filepath"
	"testing"

	"ssshep/expensepro/internal/config"
	"ssshep/expensepro/internal/ledgererror"
	"ssshep/expensepro/internal/logging"
	"ssshep/expensepro/internal/models"
	"ssshep/expensepro/internal/tracker"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T, backend string) *config.Config {
	t.Helper()
	cfg := &config.Config{}
	cfg.Log.Level = "info"
	cfg.Log.Format = "text"
	cfg.Data.Backend = backend
	cfg.Data.Directory = t.TempDir()
	cfg.Data.SQLiteFile = "ledger.db"
	cfg.Ledger.InitialBudget = 5000
	cfg.Export.Directory = filepath.Join(t.TempDir(), "exports")
	cfg.Export.FilePrefix = "SSSHEP"
	cfg.Export.Delimiter = ","
	cfg.AI.Provider = config.ProviderGemini
	cfg.AI.TimeoutSeconds = 30
	return cfg
}

func TestNewContainer(t *testing.T) {
	tests := []struct {
		name        string
		config      func(t *testing.T) *config.Config
		expectError bool
		errorMsg    string
	}{
		{
			name:        "nil config",
			config:      func(*testing.T) *config.Config { return nil },
			expectError: true,
			errorMsg:    "configuration cannot be nil",
		},
		{
			name:   "memory backend",
			config: func(t *testing.T) *config.Config { return testConfig(t, config.BackendMemory) },
		},
		{
			name:   "file backend",
			config: func(t *testing.T) *config.Config { return testConfig(t, config.BackendFile) },
		},
		{
			name:   "sqlite backend",
			config: func(t *testing.T) *config.Config { return testConfig(t, config.BackendSQLite) },
		},
		{
			name: "unknown backend",
			config: func(t *testing.T) *config.Config {
				return testConfig(t, "postgres")
			},
			expectError: true,
			errorMsg:    "unsupported store backend",
		},
		{
			name: "AI enabled without key",
			config: func(t *testing.T) *config.Config {
				cfg := testConfig(t, config.BackendMemory)
				cfg.AI.Enabled = true
				return cfg
			},
			expectError: true,
			errorMsg:    "failed to create AI advisor",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := NewContainer(tt.config(t))
			if tt.expectError {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errorMsg)
				assert.Nil(t, c)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, c)
			assert.NotNil(t, c.GetLogger())
			assert.NotNil(t, c.GetConfig())
			assert.NotNil(t, c.GetStore())
			assert.NotNil(t, c.GetRepository())
			assert.NotNil(t, c.GetService())
			assert.NotNil(t, c.GetExporter())
			assert.NoError(t, c.Close())
		})
	}
}

func TestContainer_AdvisorDisabled(t *testing.T) {
	c, err := NewContainerWithLogger(testConfig(t, config.BackendMemory), logging.NewMockLogger())
	require.NoError(t, err)
	defer c.Close()

	_, err = c.GetAdvisor()
	assert.ErrorIs(t, err, ledgererror.ErrAdvisorDisabled)
}

func TestContainer_AdvisorOpenAI(t *testing.T) {
	cfg := testConfig(t, config.BackendMemory)
	cfg.AI.Enabled = true
	cfg.AI.Provider = config.ProviderOpenAI
	cfg.AI.OpenAIAPIKey = "test-key"

	c, err := NewContainerWithLogger(cfg, logging.NewMockLogger())
	require.NoError(t, err)
	defer c.Close()

	adv, err := c.GetAdvisor()
	require.NoError(t, err)
	assert.NotNil(t, adv)
}

func TestContainer_ServiceUsesConfiguredBudget(t *testing.T) {
	c, err := NewContainerWithLogger(testConfig(t, config.BackendMemory), logging.NewMockLogger())
	require.NoError(t, err)
	defer c.Close()

	snap, err := c.GetService().Load(context.Background())
	require.NoError(t, err)
	assert.True(t, snap.Budget.Equal(decimal.NewFromInt(5000)))
}

func TestContainer_SQLitePersistsAcrossContainers(t *testing.T) {
	cfg := testConfig(t, config.BackendSQLite)
	ctx := context.Background()

	first, err := NewContainerWithLogger(cfg, logging.NewMockLogger())
	require.NoError(t, err)
	_, err = first.GetService().Apply(ctx, "budget.set", func(s models.Snapshot) (models.Snapshot, error) {
		return tracker.SetBudget(s, decimal.NewFromInt(7500))
	})
	require.NoError(t, err)
	require.NoError(t, first.Close())

	second, err := NewContainerWithLogger(cfg, logging.NewMockLogger())
	require.NoError(t, err)
	defer second.Close()

	snap, err := second.GetService().Load(ctx)
	require.NoError(t, err)
	assert.True(t, snap.Budget.Equal(decimal.NewFromInt(7500)))
}

func TestNewContainerWithLogger_NilLogger(t *testing.T) {
	_, err := NewContainerWithLogger(testConfig(t, config.BackendMemory), nil)
	assert.ErrorContains(t, err, "logger cannot be nil")
}
