package config

import "strconv"

// Validate performs post-load validation of the assembled configuration.
func Validate(cfg *Config) error {
	var errs ValidationErrors

	if cfg.API.LatencyMinMs < 0 {
		errs = append(errs, ValidationError{
			Field:   "API_LATENCY_MIN_MS",
			Value:   itoa(cfg.API.LatencyMinMs),
			Message: "must be >= 0",
		})
	}

	if cfg.API.LatencyMaxMs < cfg.API.LatencyMinMs {
		errs = append(errs, ValidationError{
			Field:   "API_LATENCY_MAX_MS",
			Value:   itoa(cfg.API.LatencyMaxMs),
			Message: "must be >= API_LATENCY_MIN_MS",
		})
	}

	if cfg.API.FailureRate < 0 || cfg.API.FailureRate > 1 {
		errs = append(errs, ValidationError{
			Field:   "API_FAILURE_RATE",
			Value:   ftoa(cfg.API.FailureRate),
			Message: "must be between 0 and 1",
		})
	}

	if cfg.API.SeedUsers < 0 {
		errs = append(errs, ValidationError{
			Field:   "API_SEED_USERS",
			Value:   itoa(cfg.API.SeedUsers),
			Message: "must be >= 0",
		})
	}

	if cfg.Store.PageSize < 1 {
		errs = append(errs, ValidationError{
			Field:   "STORE_PAGE_SIZE",
			Value:   itoa(cfg.Store.PageSize),
			Message: "must be >= 1",
		})
	}

	if err := validateSortField(cfg.Store.SortBy); err != nil {
		errs = append(errs, *err)
	}

	if cfg.Store.SortOrder != "asc" && cfg.Store.SortOrder != "desc" {
		errs = append(errs, ValidationError{
			Field:   "STORE_SORT_ORDER",
			Value:   cfg.Store.SortOrder,
			Message: "must be 'asc' or 'desc'",
		})
	}

	if cfg.Session.TTLMinutes < 1 {
		errs = append(errs, ValidationError{
			Field:   "SESSION_TTL_MINUTES",
			Value:   itoa(cfg.Session.TTLMinutes),
			Message: "must be >= 1",
		})
	}

	if cfg.Session.Secret == "" {
		errs = append(errs, ValidationError{
			Field:   "SESSION_SECRET",
			Value:   "",
			Message: "must not be empty",
		})
	}

	if err := validateLogLevel(cfg.Logging.Level); err != nil {
		errs = append(errs, *err)
	}

	if err := validateEnvironmentType(cfg.Application.Environment); err != nil {
		errs = append(errs, *err)
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// validateSortField validates the default sort field
func validateSortField(field string) *ValidationError {
	validFields := map[string]bool{
		"name":       true,
		"email":      true,
		"role":       true,
		"status":     true,
		"dateJoined": true,
	}

	if !validFields[field] {
		return &ValidationError{
			Field:   "STORE_SORT_BY",
			Value:   field,
			Message: "must be one of: name, email, role, status, dateJoined",
		}
	}

	return nil
}

// validateLogLevel validates log level value
func validateLogLevel(level string) *ValidationError {
	validLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}

	if !validLevels[level] {
		return &ValidationError{
			Field:   "LOG_LEVEL",
			Value:   level,
			Message: "must be one of: debug, info, warn, error",
		}
	}

	return nil
}

// validateEnvironmentType validates environment type
func validateEnvironmentType(env string) *ValidationError {
	validEnvs := map[string]bool{
		"development": true,
		"staging":     true,
		"production":  true,
		"test":        true,
	}

	if !validEnvs[env] {
		return &ValidationError{
			Field:   "ENVIRONMENT",
			Value:   env,
			Message: "must be one of: development, staging, production, test",
		}
	}

	return nil
}

func itoa(v int) string {
	return strconv.Itoa(v)
}

func ftoa(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
