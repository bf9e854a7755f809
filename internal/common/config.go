package common

import (
	"os"
)

// Config holds all application configuration
type Config struct {
	Pipeline PipelineConfig
	Store    StoreConfig
}

// PipelineConfig holds the configuration sources consumed by the line
// reconstruction pipeline. Both files are optional; absence degrades the
// corresponding stage to identity behavior.
type PipelineConfig struct {
	AliasPath string
	RulesPath string
}

// StoreConfig holds the local results database configuration.
type StoreConfig struct {
	DBPath string
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		Pipeline: PipelineConfig{
			AliasPath: getEnv("ALIAS_FILE", "kb/aliases.yaml"),
			RulesPath: getEnv("VENDOR_RULES_FILE", ""),
		},
		Store: StoreConfig{
			DBPath: getEnv("RECEIPTS_DB", ""),
		},
	}
}

// Helper functions for environment variable parsing
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
