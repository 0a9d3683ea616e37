// internal/app.go
package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	router "walletledger/internal/api"
	"walletledger/internal/api/handler"
	"walletledger/internal/config"
	"walletledger/internal/repository"
	"walletledger/internal/service"
	"walletledger/internal/snapshot"
	"walletledger/internal/util"
)

// Application holds all the initialized components of the application.
type Application struct {
	Config *config.AppConfig
	Logger *slog.Logger

	Repository    *repository.Repository
	LedgerService service.LedgerService

	// HTTP API
	HTTPHandler http.Handler
}

// NewApplication creates a new Application instance. The logger starts with
// defaults so initialization failures are still reportable.
func NewApplication() *Application {
	return &Application{Logger: util.GetLogger()}
}

// Initialize initializes all application components.
func (app *Application) Initialize(ctx context.Context) error {
	// 1. Load Configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	app.Config = cfg

	// 2. Initialize Logger
	util.InitLogger(cfg.LogLevel)
	app.Logger = util.GetLogger()
	app.Logger.Info("Application configuration loaded successfully.")

	// 3. Initialize the in-memory ledger
	app.Repository = repository.New()
	app.LedgerService = service.NewLedgerService(app.Repository, app.Logger)
	app.Logger.Info("Ledger initialized.")

	// 4. Optionally preload a snapshot
	if cfg.SnapshotPath != "" {
		snap, err := snapshot.ReadFile(cfg.SnapshotPath)
		if err != nil {
			return fmt.Errorf("failed to read snapshot %s: %w", cfg.SnapshotPath, err)
		}
		if err := app.LedgerService.ImportRecords(ctx, snap.Wallets, snap.Transactions); err != nil {
			return fmt.Errorf("failed to import snapshot %s: %w", cfg.SnapshotPath, err)
		}
		app.Logger.Info("Snapshot imported.", "path", cfg.SnapshotPath)
	}

	// 5. Initialize HTTP Handlers and Router
	ledgerHandler := handler.NewLedgerHandler(app.LedgerService, app.Logger)
	app.HTTPHandler = router.NewRouter(ledgerHandler, app.Logger)
	app.Logger.Info("HTTP router and handlers initialized.")

	return nil
}

// Shutdown gracefully shuts down application resources. The ledger lives in
// memory only, so there is nothing to flush.
func (app *Application) Shutdown(ctx context.Context) error {
	app.Logger.Info("Application shut down gracefully.")
	return nil
}
