// internal/api/router.go
package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"walletledger/internal/api/handler"
)

// NewRouter sets up and returns a new HTTP router.
func NewRouter(ledgerHandler *handler.LedgerHandler, logger *slog.Logger) http.Handler {
	r := chi.NewRouter()

	// Global middlewares
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(handler.DefaultTimeout))

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	// Wallet API routes
	r.Route("/wallets", func(r chi.Router) {
		r.Post("/", ledgerHandler.CreateWallet)
		r.Get("/", ledgerHandler.ListWallets)
		r.Get("/{walletID}", ledgerHandler.GetWallet)
		r.Post("/{walletID}/transactions", ledgerHandler.AddTransaction)
	})

	// Flattened transaction view
	r.Get("/transactions", ledgerHandler.ListTransactions)

	// Bulk snapshot import
	r.Post("/import", ledgerHandler.Import)

	// Reports
	r.Route("/reports", func(r chi.Router) {
		r.Get("/monthly", ledgerHandler.MonthlyReport)
		r.Get("/top-expenses", ledgerHandler.TopExpenses)
	})

	return r
}
