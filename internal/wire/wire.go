// Package wire provides dependency injection for the fieldreport client.
// It creates singleton services with lazy initialization.
package wire

import (
	"io"
	"log"
	"os"
	"sync"

	"github.com/example/fieldreport/internal/adapters/backend"
	cliadapter "github.com/example/fieldreport/internal/adapters/cli"
	"github.com/example/fieldreport/internal/adapters/connectivity"
	"github.com/example/fieldreport/internal/adapters/session"
	"github.com/example/fieldreport/internal/adapters/sqlite"
	"github.com/example/fieldreport/internal/app"
	"github.com/example/fieldreport/internal/config"
	"github.com/example/fieldreport/internal/db"
	"github.com/example/fieldreport/internal/imaging"
	"github.com/example/fieldreport/internal/logging"
	"github.com/example/fieldreport/internal/ports/primary"
)

var (
	cfg               *config.Config
	monitor           *connectivity.Monitor
	submissionService primary.SubmissionService
	syncService       primary.SyncService
	reportService     primary.ReportService
	authService       primary.AuthService
	once              sync.Once
)

// Config returns the loaded client configuration.
func Config() *config.Config {
	once.Do(initServices)
	return cfg
}

// Monitor returns the singleton connectivity monitor.
func Monitor() *connectivity.Monitor {
	once.Do(initServices)
	return monitor
}

// SubmissionService returns the singleton SubmissionService instance.
func SubmissionService() primary.SubmissionService {
	once.Do(initServices)
	return submissionService
}

// SyncService returns the singleton SyncService instance.
func SyncService() primary.SyncService {
	once.Do(initServices)
	return syncService
}

// ReportService returns the singleton ReportService instance.
func ReportService() primary.ReportService {
	once.Do(initServices)
	return reportService
}

// AuthService returns the singleton AuthService instance.
func AuthService() primary.AuthService {
	once.Do(initServices)
	return authService
}

// initServices initializes all services and their dependencies.
// This is called once via sync.Once.
func initServices() {
	dataDir, err := config.DefaultDir()
	if err != nil {
		log.Fatalf("failed to locate data directory: %v", err)
	}

	cfg, err = config.LoadConfig(dataDir)
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	// Get database connection
	database, err := db.GetDB()
	if err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}

	// Create adapters (secondary ports)
	queueRepo := sqlite.NewQueueRepository(database)
	sessionStore := session.NewFileStore(dataDir)
	processor := imaging.NewProcessor()

	// An unreadable session file means logged out, not a dead client.
	sess, err := sessionStore.Load()
	if err != nil {
		logging.New("wire").WithError(err).Warn("ignoring unreadable session file")
		sess = nil
	}

	gateway := backend.NewClient(cfg.BackendURL, cfg.RequestTimeout(), sess)
	monitor = connectivity.NewMonitor(cfg.BackendURL, cfg.ProbeInterval(), cfg.RequestTimeout())

	// Create services (primary ports implementation)
	submissionService = app.NewSubmissionService(queueRepo, gateway, monitor, processor, logging.New("submission"))
	syncService = app.NewSyncService(queueRepo, gateway, monitor, processor, logging.New("sync"))
	reportService = app.NewReportService(gateway)
	authService = app.NewAuthService(gateway, sessionStore)
}

// SubmissionAdapter returns a new SubmissionAdapter writing to stdout.
// Each call creates a new adapter (adapters are stateless translators).
func SubmissionAdapter() *cliadapter.SubmissionAdapter {
	return SubmissionAdapterWithOutput(os.Stdout)
}

// SubmissionAdapterWithOutput returns a new SubmissionAdapter writing to the
// given output. This variant allows testing or alternate output destinations.
func SubmissionAdapterWithOutput(out io.Writer) *cliadapter.SubmissionAdapter {
	once.Do(initServices)
	return cliadapter.NewSubmissionAdapter(submissionService, out)
}

// SyncAdapter returns a new SyncAdapter writing to stdout.
func SyncAdapter() *cliadapter.SyncAdapter {
	return SyncAdapterWithOutput(os.Stdout)
}

// SyncAdapterWithOutput returns a new SyncAdapter writing to the given output.
func SyncAdapterWithOutput(out io.Writer) *cliadapter.SyncAdapter {
	once.Do(initServices)
	return cliadapter.NewSyncAdapter(syncService, out)
}

// ReportAdapter returns a new ReportAdapter writing to stdout.
func ReportAdapter() *cliadapter.ReportAdapter {
	return ReportAdapterWithOutput(os.Stdout)
}

// ReportAdapterWithOutput returns a new ReportAdapter writing to the given output.
func ReportAdapterWithOutput(out io.Writer) *cliadapter.ReportAdapter {
	once.Do(initServices)
	return cliadapter.NewReportAdapter(reportService, out)
}

// AuthAdapter returns a new AuthAdapter writing to stdout.
func AuthAdapter() *cliadapter.AuthAdapter {
	return AuthAdapterWithOutput(os.Stdout)
}

// AuthAdapterWithOutput returns a new AuthAdapter writing to the given output.
func AuthAdapterWithOutput(out io.Writer) *cliadapter.AuthAdapter {
	once.Do(initServices)
	return cliadapter.NewAuthAdapter(authService, out)
}
