// Package config provides configuration loading and environment management
package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Value   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("validation failed for %s='%s': %s", e.Field, e.Value, e.Message)
}

// ValidationErrors represents multiple validation errors
type ValidationErrors []ValidationError

func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return ""
	}

	msg := "configuration validation errors:\n"
	for _, err := range ve {
		msg += fmt.Sprintf("  - %s\n", err.Error())
	}
	return msg
}

// OptionalEnvironmentVariables defines environment variables with defaults.
// The mock backend needs no required variables; everything has a development
// default so the binary runs with an empty environment.
var OptionalEnvironmentVariables = map[string]string{
	"API_LATENCY_MIN_MS":  "300",
	"API_LATENCY_MAX_MS":  "800",
	"API_FAILURE_RATE":    "0.1",
	"API_SEED_USERS":      "50",
	"STORE_PAGE_SIZE":     "10",
	"STORE_SORT_BY":       "name",
	"STORE_SORT_ORDER":    "asc",
	"SESSION_TTL_MINUTES": "30",
	"SESSION_SECRET":      "dev-session-secret",
	"SESSION_STATE_FILE":  ".adminpanel_session.json",
	"LOG_LEVEL":           "info",
	"LOG_FORMAT":          "json",
	"ENVIRONMENT":         "development",
}

// Load loads and validates configuration from environment variables
func Load() (*Config, error) {
	// 1. Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: Could not load .env file: %v", err)
	}

	// 2. Load configuration with defaults
	config := &Config{
		API: APIConfig{
			LatencyMinMs: getEnvInt("API_LATENCY_MIN_MS", 300),
			LatencyMaxMs: getEnvInt("API_LATENCY_MAX_MS", 800),
			FailureRate:  getEnvFloat("API_FAILURE_RATE", 0.1),
			SeedUsers:    getEnvInt("API_SEED_USERS", 50),
		},
		Store: StoreConfig{
			PageSize:  getEnvInt("STORE_PAGE_SIZE", 10),
			SortBy:    getEnv("STORE_SORT_BY", "name"),
			SortOrder: getEnv("STORE_SORT_ORDER", "asc"),
		},
		Session: SessionConfig{
			TTLMinutes: getEnvInt("SESSION_TTL_MINUTES", 30),
			Secret:     getEnv("SESSION_SECRET", "dev-session-secret"),
			StateFile:  getEnv("SESSION_STATE_FILE", ".adminpanel_session.json"),
		},
		Logging: LoggingConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
		Application: ApplicationConfig{
			Environment: getEnv("ENVIRONMENT", "development"),
		},
	}

	// 3. Post-load configuration validation
	if err := Validate(config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// getEnv gets environment variable with default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt gets environment variable as integer with default value
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvFloat gets environment variable as float with default value
func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}
