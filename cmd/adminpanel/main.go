// Package main provides the entry point for the goAdminPanel demo.
// It wires the mock record API, the application state store and the auth
// session together, walks through a typical admin flow and exports the
// resulting page.
package main

import (
	"context"
	"flag"
	"log"
	"time"

	"github.com/chybatronik/goAdminPanel/internal/config"
	"github.com/chybatronik/goAdminPanel/internal/export"
	"github.com/chybatronik/goAdminPanel/internal/logging"
	"github.com/chybatronik/goAdminPanel/internal/mockapi"
	"github.com/chybatronik/goAdminPanel/internal/session"
	"github.com/chybatronik/goAdminPanel/internal/state"
)

var (
	// Build information (set during build)
	Version   = "dev"
	BuildTime = ""
)

func main() {
	exportPath := flag.String("export", "", "write the loaded page to this CSV file")
	flag.Parse()

	// Initialize configuration first
	appConfig, err := config.Load()
	if err != nil {
		log.Fatalf("FATAL: Failed to load configuration: %v", err)
	}

	logger := logging.NewStructuredLogger(
		appConfig.Logging.Level,
		appConfig.Logging.Format,
		"goAdminPanel",
		Version,
	)

	logStartupEvents(logger, appConfig)

	api := mockapi.NewStore(mockapi.Config{
		LatencyMin:  time.Duration(appConfig.API.LatencyMinMs) * time.Millisecond,
		LatencyMax:  time.Duration(appConfig.API.LatencyMaxMs) * time.Millisecond,
		FailureRate: appConfig.API.FailureRate,
		SeedUsers:   appConfig.API.SeedUsers,
		Logger:      logger,
	})

	auth := session.NewAuthStore(session.Config{
		Secret:  appConfig.Session.Secret,
		TTL:     time.Duration(appConfig.Session.TTLMinutes) * time.Minute,
		Storage: session.NewFileStorage(appConfig.Session.StateFile),
		Logger:  logger,
	})
	auth.OnExpire(func() {
		logger.Warn("Session expired. Please log in again.")
	})

	if err := auth.Restore(); err != nil {
		logger.WithError(err).Warn("Could not restore previous session")
	}
	if !auth.IsAuthenticated() {
		if err := auth.Login("admin@example.com", "password"); err != nil {
			log.Fatalf("FATAL: Demo login failed: %v", err)
		}
	}

	if !auth.CanAccess("/users") {
		log.Fatal("FATAL: Session cannot access the user list")
	}

	store := state.NewUserStore(api, state.Options{
		PageSize:  appConfig.Store.PageSize,
		SortBy:    appConfig.Store.SortBy,
		SortOrder: appConfig.Store.SortOrder,
		Logger:    logger,
	})

	// Log every state transition the way a view would re-render
	store.Subscribe(func(snap state.Snapshot) {
		logger.Debug("state changed",
			"loading", snap.Loading,
			"error", snap.Error,
			"users", len(snap.Users),
			logging.FieldPage, snap.CurrentPage,
			logging.FieldTotal, snap.TotalUsers,
		)
	})

	ctx := context.Background()

	store.LoadRoles(ctx)
	loadWithRetry(ctx, logger, store)

	snap := store.Snapshot()
	logger.Info("Loaded user page",
		logging.FieldPage, snap.CurrentPage,
		"page_count", snap.TotalPages,
		logging.FieldTotal, snap.TotalUsers,
		"roles", snap.Roles,
	)

	if *exportPath != "" {
		if err := export.SaveCSV(*exportPath, snap.Users); err != nil {
			logger.WithError(err).Error("CSV export failed")
		} else {
			logger.Info("Exported current page", "path", *exportPath, "rows", len(snap.Users))
		}
	}

	auth.Logout()
	logger.Info("Done")
}

// loadWithRetry re-triggers a failed load the way an operator clicking
// "retry" would. The record API fails a fraction of all calls, so a few
// attempts are expected.
func loadWithRetry(ctx context.Context, logger *logging.Logger, store *state.UserStore) {
	const maxAttempts = 5

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		store.LoadUsers(ctx)
		snap := store.Snapshot()
		if snap.Error == "" {
			return
		}
		logger.Warn("Load failed, retrying", "attempt", attempt, "error", snap.Error)
	}

	logger.Error("Giving up after repeated load failures")
}

// logStartupEvents logs application startup information
func logStartupEvents(logger *logging.Logger, cfg *config.Config) {
	logger.Startup("Starting goAdminPanel",
		"environment", cfg.Application.Environment,
		"seed_users", cfg.API.SeedUsers,
		"failure_rate", cfg.API.FailureRate,
		"latency_min_ms", cfg.API.LatencyMinMs,
		"latency_max_ms", cfg.API.LatencyMaxMs,
		"page_size", cfg.Store.PageSize,
	)
}
