// Package config provides configuration types and structures for the goAdminPanel service.
package config

// Config represents the application configuration
type Config struct {
	API         APIConfig
	Store       StoreConfig
	Session     SessionConfig
	Logging     LoggingConfig
	Application ApplicationConfig
}

// APIConfig holds mock record-API simulation settings
type APIConfig struct {
	LatencyMinMs int     // Lower bound of simulated network delay
	LatencyMaxMs int     // Upper bound of simulated network delay
	FailureRate  float64 // Probability [0,1] of a simulated transient failure
	SeedUsers    int     // Number of generated seed records
}

// StoreConfig holds application state store defaults
type StoreConfig struct {
	PageSize  int    // Records per page
	SortBy    string // Default sort field
	SortOrder string // Default sort direction (asc, desc)
}

// SessionConfig holds auth session configuration
type SessionConfig struct {
	TTLMinutes int    // Session lifetime in minutes
	Secret     string // HMAC secret for session tokens
	StateFile  string // Path for persisted session state
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level  string // Log level (debug, info, warn, error)
	Format string // Log format (json, text)
}

// ApplicationConfig holds application-specific configuration
type ApplicationConfig struct {
	Environment string // Environment (development, staging, production, test)
}
