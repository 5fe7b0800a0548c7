// Package config provides configuration management functionality.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/aristath/brokerbook/internal/fileio"
)

// Load modes for Load Data.
const (
	// LoadModeSequential reads every channel in turn and keeps the last read.
	LoadModeSequential = "sequential"
	// LoadModeCanonical reads one channel and swaps all holders at once.
	LoadModeCanonical = "canonical"
)

// FormatDatabase names the relational store wherever a file format is accepted.
const FormatDatabase = "db"

// Config holds application configuration
type Config struct {
	DataDir         string // Directory holding the record files (always absolute)
	DatabasePath    string // SQLite file, defaults to <DataDir>/brokerbook.db
	LogLevel        string
	Port            int
	DevMode         bool
	LoadMode        string
	CanonicalFormat string
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	absDataDir, err := filepath.Abs(getEnv("BROKERBOOK_DATA_DIR", "./data"))
	if err != nil {
		return nil, fmt.Errorf("failed to resolve data directory path: %w", err)
	}

	if err := os.MkdirAll(absDataDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	cfg := &Config{
		DataDir:         absDataDir,
		DatabasePath:    getEnv("BROKERBOOK_DB_PATH", filepath.Join(absDataDir, "brokerbook.db")),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		Port:            getEnvAsInt("PORT", 8080),
		DevMode:         getEnvAsBool("DEV_MODE", false),
		LoadMode:        getEnv("LOAD_MODE", LoadModeSequential),
		CanonicalFormat: getEnv("CANONICAL_FORMAT", FormatDatabase),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate rejects unknown load modes and canonical formats
func (c *Config) Validate() error {
	switch c.LoadMode {
	case LoadModeSequential, LoadModeCanonical:
	default:
		return fmt.Errorf("invalid LOAD_MODE %q: want %s or %s", c.LoadMode, LoadModeSequential, LoadModeCanonical)
	}

	if err := ValidateFormat(c.CanonicalFormat); err != nil {
		return fmt.Errorf("invalid CANONICAL_FORMAT: %w", err)
	}
	// Text files carry no person ids; a canonical text load cannot be saved.
	if c.LoadMode == LoadModeCanonical && c.CanonicalFormat == string(fileio.FormatText) {
		return fmt.Errorf("invalid CANONICAL_FORMAT %q: text files do not carry ids", c.CanonicalFormat)
	}

	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid PORT %d", c.Port)
	}

	return nil
}

// ValidateFormat accepts a file extension or "db".
func ValidateFormat(format string) error {
	if format == FormatDatabase {
		return nil
	}
	_, err := fileio.ParseFormat(format)
	return err
}

// Helper functions
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}
