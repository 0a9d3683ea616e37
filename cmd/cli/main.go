// cmd/cli/main.go
package main

import (
	"context"
	"flag"
	"io"
	"log/slog"
	"os"

	"walletledger/internal/config"
	"walletledger/internal/console"
	"walletledger/internal/repository"
	"walletledger/internal/service"
	"walletledger/internal/snapshot"
)

// newLogger builds the console logger. Structured logs use a text handler on
// stderr so they do not interleave with the menu on stdout; the level comes
// from LOG_LEVEL like the HTTP binary.
func newLogger(out io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{Level: level}))
}

func main() {
	snapshotPath := flag.String("snapshot", "", "JSON snapshot file to import before the menu starts")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger := newLogger(os.Stderr, cfg.LogLevel)

	ctx := context.Background()
	repo := repository.New()
	ledger := service.NewLedgerService(repo, logger)

	path := *snapshotPath
	if path == "" {
		path = cfg.SnapshotPath
	}
	if path != "" {
		snap, err := snapshot.ReadFile(path)
		if err != nil {
			logger.Error("Failed to read snapshot", "path", path, "error", err)
			os.Exit(1)
		}
		if err := ledger.ImportRecords(ctx, snap.Wallets, snap.Transactions); err != nil {
			logger.Error("Snapshot failed validation", "path", path, "error", err)
			os.Exit(1)
		}
	}

	console.NewMenu(ledger, os.Stdin, os.Stdout).Run(ctx)
}
