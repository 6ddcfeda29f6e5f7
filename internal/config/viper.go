// Package config provides Viper-based hierarchical configuration management
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Storage backends
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
	BackendMemory = "memory"
)

// AI providers
const (
	ProviderGemini = "gemini"
	ProviderOpenAI = "openai"
)

const (
	defaultGeminiModel = "gemini-2.0-flash"
	defaultOpenAIModel = "gpt-4o-mini"
	appDirName         = ".expensepro"
)

// Config represents the complete application configuration
type Config struct {
	Log struct {
		Level  string `mapstructure:"level" yaml:"level"`
		Format string `mapstructure:"format" yaml:"format"`
	} `mapstructure:"log" yaml:"log"`

	Data struct {
		Backend    string `mapstructure:"backend" yaml:"backend"`
		Directory  string `mapstructure:"directory" yaml:"directory"`
		SQLiteFile string `mapstructure:"sqlite_file" yaml:"sqlite_file"`
	} `mapstructure:"data" yaml:"data"`

	Ledger struct {
		InitialBudget  float64  `mapstructure:"initial_budget" yaml:"initial_budget"`
		Currency       string   `mapstructure:"currency" yaml:"currency"`
		TravelKeywords []string `mapstructure:"travel_keywords" yaml:"travel_keywords"`
	} `mapstructure:"ledger" yaml:"ledger"`

	Export struct {
		Directory  string `mapstructure:"directory" yaml:"directory"`
		FilePrefix string `mapstructure:"file_prefix" yaml:"file_prefix"`
		Delimiter  string `mapstructure:"delimiter" yaml:"delimiter"`
	} `mapstructure:"export" yaml:"export"`

	AI struct {
		Enabled        bool   `mapstructure:"enabled" yaml:"enabled"`
		Provider       string `mapstructure:"provider" yaml:"provider"`
		Model          string `mapstructure:"model" yaml:"model"`
		TimeoutSeconds int    `mapstructure:"timeout_seconds" yaml:"timeout_seconds"`
		APIKey         string `mapstructure:"api_key" yaml:"-"` // Never serialize API keys
		OpenAIAPIKey   string `mapstructure:"openai_api_key" yaml:"-"`
	} `mapstructure:"ai" yaml:"ai"`
}

// InitializeConfig loads defaults, then config.yaml from the standard
// locations, then EXPENSEPRO_* environment variables.
func InitializeConfig() (*Config, error) {
	return LoadConfig("")
}

// LoadConfig is InitializeConfig with an explicit config file. An empty path
// searches $HOME/.expensepro, .expensepro and the working directory.
func LoadConfig(path string) (*Config, error) {
	v := viper.New()

	// 1. Set defaults
	setDefaults(v)

	// 2. Config file locations
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("$HOME/" + appDirName)
		v.AddConfigPath(appDirName)
		v.AddConfigPath(".")
	}

	// 3. Environment variables
	v.SetEnvPrefix("EXPENSEPRO")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// 4. Read config file (optional unless given explicitly)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok || path != "" {
			if path != "" {
				return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
			}
			fmt.Fprintf(os.Stderr, "Warning: error reading config file %s: %v\n", v.ConfigFileUsed(), err)
		}
	}

	// 5. Provider keys are always read from their conventional names
	if err := v.BindEnv("ai.api_key", "EXPENSEPRO_AI_API_KEY", "GEMINI_API_KEY"); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to bind GEMINI_API_KEY environment variable: %v\n", err)
	}
	if err := v.BindEnv("ai.openai_api_key", "EXPENSEPRO_AI_OPENAI_API_KEY", "OPENAI_API_KEY"); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to bind OPENAI_API_KEY environment variable: %v\n", err)
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// 6. Validate configuration
	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Log defaults
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	// Data defaults
	v.SetDefault("data.backend", BackendFile)
	v.SetDefault("data.directory", "")
	v.SetDefault("data.sqlite_file", "expensepro.db")

	// Ledger defaults
	v.SetDefault("ledger.initial_budget", 30000)
	v.SetDefault("ledger.currency", "INR")
	v.SetDefault("ledger.travel_keywords", []string{
		"petrol", "bus", "auto", "uber", "metro", "rapido", "travel", "taxi", "cab", "train",
	})

	// Export defaults
	v.SetDefault("export.directory", ".")
	v.SetDefault("export.file_prefix", "SSSHEP")
	v.SetDefault("export.delimiter", ",")

	// AI defaults
	v.SetDefault("ai.enabled", false)
	v.SetDefault("ai.provider", ProviderGemini)
	v.SetDefault("ai.model", "")
	v.SetDefault("ai.timeout_seconds", 60)
	v.SetDefault("ai.api_key", "")
	v.SetDefault("ai.openai_api_key", "")
}

// validateConfig validates the configuration values
func validateConfig(config *Config) error {
	// Validate log level
	if _, err := logrus.ParseLevel(config.Log.Level); err != nil {
		return fmt.Errorf("invalid log level: %s", config.Log.Level)
	}

	// Validate log format
	if config.Log.Format != "text" && config.Log.Format != "json" {
		return fmt.Errorf("invalid log format: %s (must be 'text' or 'json')", config.Log.Format)
	}

	switch config.Data.Backend {
	case BackendFile, BackendSQLite, BackendMemory:
	default:
		return fmt.Errorf("invalid data backend: %s (must be 'file', 'sqlite' or 'memory')", config.Data.Backend)
	}

	if config.Ledger.InitialBudget <= 0 {
		return fmt.Errorf("ledger.initial_budget must be positive, got: %v", config.Ledger.InitialBudget)
	}

	// Validate export delimiter
	if len([]rune(config.Export.Delimiter)) != 1 {
		return fmt.Errorf("export delimiter must be a single character, got: %s", config.Export.Delimiter)
	}

	// Validate AI configuration
	switch config.AI.Provider {
	case ProviderGemini, ProviderOpenAI:
	default:
		return fmt.Errorf("invalid ai.provider: %s (must be 'gemini' or 'openai')", config.AI.Provider)
	}

	if config.AI.Enabled {
		if config.ProviderAPIKey() == "" {
			if config.AI.Provider == ProviderOpenAI {
				return fmt.Errorf("OPENAI_API_KEY required when AI is enabled with the openai provider")
			}
			return fmt.Errorf("GEMINI_API_KEY required when AI is enabled")
		}

		if config.AI.TimeoutSeconds < 1 || config.AI.TimeoutSeconds > 300 {
			return fmt.Errorf("ai.timeout_seconds must be between 1 and 300, got: %d", config.AI.TimeoutSeconds)
		}
	}

	return nil
}

// InitialBudget returns the configured first-run budget as a decimal.
func (c *Config) InitialBudget() decimal.Decimal {
	return decimal.NewFromFloat(c.Ledger.InitialBudget)
}

// ProviderAPIKey returns the key of the selected AI provider.
func (c *Config) ProviderAPIKey() string {
	if c.AI.Provider == ProviderOpenAI {
		return c.AI.OpenAIAPIKey
	}
	return c.AI.APIKey
}

// ModelName returns the configured model or the provider default.
func (c *Config) ModelName() string {
	if c.AI.Model != "" {
		return c.AI.Model
	}
	if c.AI.Provider == ProviderOpenAI {
		return defaultOpenAIModel
	}
	return defaultGeminiModel
}

// DataDirectory returns the data directory, defaulting to ~/.expensepro/data.
func (c *Config) DataDirectory() string {
	if c.Data.Directory != "" {
		return c.Data.Directory
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(appDirName, "data")
	}
	return filepath.Join(home, appDirName, "data")
}

// SQLitePath returns the database path; relative names live in the data directory.
func (c *Config) SQLitePath() string {
	if filepath.IsAbs(c.Data.SQLiteFile) {
		return c.Data.SQLiteFile
	}
	return filepath.Join(c.DataDirectory(), c.Data.SQLiteFile)
}

// DelimiterRune returns the export delimiter as a rune.
func (c *Config) DelimiterRune() rune {
	r := []rune(c.Export.Delimiter)
	if len(r) == 0 {
		return ','
	}
	return r[0]
}

// ToYAML renders the effective configuration. API keys are never included.
func (c *Config) ToYAML() ([]byte, error) {
	out, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config: %w", err)
	}
	return out, nil
}
