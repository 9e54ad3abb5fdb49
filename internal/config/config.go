package config

import (
	"os"
	"strconv"

	"claimstat/internal/errors"

	"github.com/joho/godotenv"
)

// Config represents the complete application configuration
type Config struct {
	Paths     PathConfig
	Generator GeneratorDefaults
}

// PathConfig holds file system paths
type PathConfig struct {
	OutputDir string
}

// GeneratorDefaults holds fallback values for data generation
type GeneratorDefaults struct {
	NumRecords int
	Seed       int64
}

// Load reads configuration from a .env file (if present) and environment
// variables, then validates it.
func Load() (*Config, error) {
	// Missing .env is fine; env vars may be set directly.
	_ = godotenv.Load()

	config := &Config{
		Paths: PathConfig{
			OutputDir: getEnvOrDefault("OUTPUT_DIR", "data"),
		},
		Generator: GeneratorDefaults{
			NumRecords: getEnvIntOrDefault("NUM_RECORDS", 1000),
			Seed:       int64(getEnvIntOrDefault("RANDOM_SEED", 42)),
		},
	}

	if err := validateConfig(config); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}

	return config, nil
}

func validateConfig(config *Config) error {
	if config.Paths.OutputDir == "" {
		return errors.ConfigInvalid("OUTPUT_DIR cannot be empty")
	}
	if config.Generator.NumRecords <= 0 {
		return errors.ConfigInvalid("NUM_RECORDS must be positive")
	}
	return nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}
