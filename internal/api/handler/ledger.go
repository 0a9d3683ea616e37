// internal/api/handler/ledger.go
package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"walletledger/internal/api/types"
	"walletledger/internal/domain"
	"walletledger/internal/repository"
	"walletledger/internal/service"
	"walletledger/internal/util" // For custom errors
)

// DefaultTimeout is the per-request timeout applied by the router.
const DefaultTimeout = 10 * time.Second

// LedgerHandler handles HTTP requests against the wallet ledger.
type LedgerHandler struct {
	service service.LedgerService
	logger  *slog.Logger
}

// NewLedgerHandler creates a new LedgerHandler.
func NewLedgerHandler(svc service.LedgerService, logger *slog.Logger) *LedgerHandler {
	return &LedgerHandler{
		service: svc,
		logger:  logger,
	}
}

// Helper function to send JSON responses.
func (h *LedgerHandler) respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		h.logger.Error("Failed to marshal JSON response", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_, _ = w.Write(response)
}

// Helper function to send error responses.
func (h *LedgerHandler) respondWithError(w http.ResponseWriter, err error) {
	statusCode := http.StatusInternalServerError
	message := "Internal server error"

	switch {
	case util.IsError(err, util.ErrInvalidInput), util.IsError(err, util.ErrZeroAmount):
		statusCode = http.StatusBadRequest
		message = err.Error()
	case util.IsError(err, util.ErrWalletNotFound):
		statusCode = http.StatusNotFound
		message = "Wallet not found"
	case util.IsError(err, util.ErrInsufficientFunds):
		statusCode = http.StatusPaymentRequired // 402 Payment Required
		message = "Insufficient funds"
	case util.IsError(err, util.ErrHistoryConflict):
		statusCode = http.StatusConflict
		message = "Transaction would make the balance history go negative"
	case util.IsError(err, util.ErrImportRejected):
		statusCode = http.StatusUnprocessableEntity
		message = "Imported data failed validation"
	default:
		h.logger.Error("Unhandled service error", "error", err)
	}

	h.respondWithJSON(w, statusCode, map[string]string{"error": message})
}

// WalletResponse is the API view of a wallet, including its derived balance.
type WalletResponse struct {
	ID              int             `json:"id"`
	Name            string          `json:"name"`
	CurrencyID      string          `json:"currency_id"`
	StartingBalance decimal.Decimal `json:"starting_balance"`
	Balance         decimal.Decimal `json:"balance"`
}

func walletResponse(wallet *domain.Wallet) WalletResponse {
	return WalletResponse{
		ID:              wallet.ID,
		Name:            wallet.Name,
		CurrencyID:      wallet.CurrencyID,
		StartingBalance: wallet.StartingBalance,
		Balance:         wallet.Balance(),
	}
}

// CreateWalletRequest represents the request body for wallet creation.
type CreateWalletRequest struct {
	Name            string          `json:"name"`
	CurrencyID      string          `json:"currency_id"`
	StartingBalance decimal.Decimal `json:"starting_balance"`
}

// CreateWallet handles the create wallet request.
// POST /wallets
func (h *LedgerHandler) CreateWallet(w http.ResponseWriter, r *http.Request) {
	var req CreateWalletRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondWithError(w, util.ErrInvalidInput)
		return
	}

	wallet, err := h.service.CreateWallet(r.Context(), req.Name, req.CurrencyID, req.StartingBalance)
	if err != nil {
		h.respondWithError(w, err)
		return
	}

	h.respondWithJSON(w, http.StatusCreated, walletResponse(wallet))
}

// ListWallets handles the list wallets request.
// GET /wallets
func (h *LedgerHandler) ListWallets(w http.ResponseWriter, r *http.Request) {
	wallets := h.service.Wallets(r.Context())

	views := make([]WalletResponse, 0, len(wallets))
	for _, wallet := range wallets {
		views = append(views, walletResponse(wallet))
	}
	h.respondWithJSON(w, http.StatusOK, types.NewListResponse(views))
}

// GetWallet handles the get wallet request.
// GET /wallets/{walletID}
func (h *LedgerHandler) GetWallet(w http.ResponseWriter, r *http.Request) {
	walletID, err := strconv.Atoi(chi.URLParam(r, "walletID"))
	if err != nil {
		h.respondWithError(w, util.ErrInvalidInput)
		return
	}

	wallet, err := h.service.WalletByID(r.Context(), walletID)
	if err != nil {
		h.respondWithError(w, err)
		return
	}

	h.respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"wallet":       walletResponse(wallet),
		"transactions": wallet.Transactions(),
	})
}

// AddTransactionRequest represents the request body for adding a transaction.
type AddTransactionRequest struct {
	Date        domain.Date     `json:"date"`
	SumUpdate   decimal.Decimal `json:"sum_update"`
	Description string          `json:"description"`
}

// AddTransaction handles the add transaction request.
// POST /wallets/{walletID}/transactions
func (h *LedgerHandler) AddTransaction(w http.ResponseWriter, r *http.Request) {
	walletID, err := strconv.Atoi(chi.URLParam(r, "walletID"))
	if err != nil {
		h.respondWithError(w, util.ErrInvalidInput)
		return
	}

	var req AddTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondWithError(w, util.ErrInvalidInput)
		return
	}

	transaction, err := h.service.AddTransaction(r.Context(), walletID, req.Date, req.SumUpdate, req.Description)
	if err != nil {
		h.respondWithError(w, err)
		return
	}

	h.respondWithJSON(w, http.StatusCreated, transaction)
}

// ListTransactions handles the list transactions request, flattened across
// all wallets.
// GET /transactions
func (h *LedgerHandler) ListTransactions(w http.ResponseWriter, r *http.Request) {
	transactions := h.service.Transactions(r.Context())
	h.respondWithJSON(w, http.StatusOK, types.NewListResponse(transactions))
}

// ImportRequest represents a snapshot import body. Field names match the
// snapshot file format.
type ImportRequest struct {
	Wallets      []repository.WalletRecord      `json:"Wallets"`
	Transactions []repository.TransactionRecord `json:"Transactions"`
}

// Import handles the bulk import request.
// POST /import
func (h *LedgerHandler) Import(w http.ResponseWriter, r *http.Request) {
	var req ImportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondWithError(w, util.ErrInvalidInput)
		return
	}

	if err := h.service.ImportRecords(r.Context(), req.Wallets, req.Transactions); err != nil {
		h.respondWithError(w, err)
		return
	}

	h.respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"message":      "Import successful",
		"wallets":      len(req.Wallets),
		"transactions": len(req.Transactions),
	})
}

// MonthlyReport handles the monthly report request.
// GET /reports/monthly?year=2025&month=10
func (h *LedgerHandler) MonthlyReport(w http.ResponseWriter, r *http.Request) {
	year, month, err := monthQuery(r)
	if err != nil {
		h.respondWithError(w, err)
		return
	}

	h.respondWithJSON(w, http.StatusOK, h.service.MonthlyReport(r.Context(), year, month))
}

// TopExpensesResponse pairs a wallet view with its largest expenses.
type TopExpensesResponse struct {
	Wallet       WalletResponse       `json:"wallet"`
	Transactions []domain.Transaction `json:"transactions"`
}

// TopExpenses handles the top-expenses-per-wallet report request.
// GET /reports/top-expenses?year=2025&month=10
func (h *LedgerHandler) TopExpenses(w http.ResponseWriter, r *http.Request) {
	year, month, err := monthQuery(r)
	if err != nil {
		h.respondWithError(w, err)
		return
	}

	groups := h.service.TopExpensesByMonth(r.Context(), year, month)
	views := make([]TopExpensesResponse, 0, len(groups))
	for _, group := range groups {
		views = append(views, TopExpensesResponse{
			Wallet:       walletResponse(group.Wallet),
			Transactions: group.Transactions,
		})
	}
	h.respondWithJSON(w, http.StatusOK, types.NewListResponse(views))
}

// monthQuery parses the year and month query parameters.
func monthQuery(r *http.Request) (int, time.Month, error) {
	year, err := strconv.Atoi(r.URL.Query().Get("year"))
	if err != nil {
		return 0, 0, util.ErrInvalidInput
	}
	month, err := strconv.Atoi(r.URL.Query().Get("month"))
	if err != nil || month < 1 || month > 12 {
		return 0, 0, util.ErrInvalidInput
	}
	return year, time.Month(month), nil
}
