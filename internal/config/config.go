package config

import (
	"os"
	"path/filepath"
	"strings"

	"ssshep/expensepro/internal/logging"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// LoadEnv loads a .env file from the working directory or its parent, if
// one exists, and returns the file that was loaded. Nothing is logged: it
// runs before logging is configured.
func LoadEnv() string {
	for _, candidate := range []string{".env", filepath.Join("..", ".env")} {
		if _, err := os.Stat(candidate); err != nil {
			continue
		}
		if err := godotenv.Load(candidate); err != nil {
			return ""
		}
		return candidate
	}
	return ""
}

// GetEnv retrieves an environment variable with a fallback value if not set
func GetEnv(key, fallback string) string {
	value, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	return value
}

// ConfigureLoggingFromConfig builds the application logger from the log section.
// A non-empty override (the --log-level flag) takes precedence.
func ConfigureLoggingFromConfig(config *Config, override string) logging.Logger {
	level := config.Log.Level
	if override != "" {
		level = override
	}
	return logging.NewLogrusAdapter(level, config.Log.Format)
}

// ParseLevel parses a level name leniently, falling back to info.
func ParseLevel(level string) logrus.Level {
	parsed, err := logrus.ParseLevel(strings.ToLower(level))
	if err != nil {
		return logrus.InfoLevel
	}
	return parsed
}
