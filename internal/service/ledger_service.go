// internal/service/ledger_service.go
package service

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"walletledger/internal/domain"
	"walletledger/internal/repository"
	"walletledger/internal/util"
)

// LedgerService defines the interface for wallet-ledger business logic. It
// is the error-returning, concurrency-safe surface the HTTP and console
// front ends consume; the repository underneath keeps its boolean result
// model.
type LedgerService interface {
	CreateWallet(ctx context.Context, name, currencyID string, startingBalance decimal.Decimal) (*domain.Wallet, error)
	AddTransaction(ctx context.Context, walletID int, date domain.Date, sumUpdate decimal.Decimal, description string) (domain.Transaction, error)
	ImportRecords(ctx context.Context, wallets []repository.WalletRecord, transactions []repository.TransactionRecord) error
	Wallets(ctx context.Context) []*domain.Wallet
	WalletByID(ctx context.Context, id int) (*domain.Wallet, error)
	Transactions(ctx context.Context) []domain.Transaction
	MonthlyReport(ctx context.Context, year int, month time.Month) domain.MonthlyReport
	TopExpensesByMonth(ctx context.Context, year int, month time.Month) []domain.WalletTopExpenses
}

// ledgerService implements the LedgerService interface. A single mutex
// serializes all repository access; trajectory validation and the append
// happen under the same critical section.
type ledgerService struct {
	mu     sync.Mutex
	repo   *repository.Repository
	logger *slog.Logger
}

// NewLedgerService creates a new instance of LedgerService.
func NewLedgerService(repo *repository.Repository, logger *slog.Logger) LedgerService {
	return &ledgerService{repo: repo, logger: logger}
}

// CreateWallet validates the wallet fields and registers a new empty wallet.
func (s *ledgerService) CreateWallet(ctx context.Context, name, currencyID string, startingBalance decimal.Decimal) (*domain.Wallet, error) {
	if !domain.NameIsNotEmpty(name) {
		return nil, fmt.Errorf("create wallet: name must not be empty: %w", util.ErrInvalidInput)
	}
	if !domain.CurrencyIDIsNotEmpty(currencyID) {
		return nil, fmt.Errorf("create wallet: currency must not be empty: %w", util.ErrInvalidInput)
	}
	if !domain.StartingBalanceIsNotNegative(startingBalance) {
		return nil, fmt.Errorf("create wallet: starting balance must not be negative: %w", util.ErrInvalidInput)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	wallet := s.repo.AddWallet(name, currencyID, startingBalance)
	s.logger.Info("wallet created", "wallet_id", wallet.ID, "currency", wallet.CurrencyID)
	return wallet.Clone(), nil
}

// AddTransaction records a transaction against a wallet. On rejection the
// returned error names the first failed precondition; the transaction id is
// consumed either way, matching the repository contract.
func (s *ledgerService) AddTransaction(ctx context.Context, walletID int, date domain.Date, sumUpdate decimal.Decimal, description string) (domain.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	wallet, walletExists := s.repo.WalletByID(walletID)

	tx, ok := s.repo.TryAddTransaction(walletID, date, sumUpdate, description)
	if ok {
		s.logger.Info("transaction recorded",
			"wallet_id", walletID, "transaction_id", tx.ID, "date", tx.Date.String(), "sum_update", tx.SumUpdate)
		return tx, nil
	}

	// A rejected insert leaves the wallet unchanged, so SupportsUpdate below
	// still sees the history the attempt ran against.
	switch {
	case !domain.AmountIsNonZero(sumUpdate):
		return tx, fmt.Errorf("add transaction: %w", util.ErrZeroAmount)
	case !walletExists:
		return tx, fmt.Errorf("add transaction: wallet %d: %w", walletID, util.ErrWalletNotFound)
	case !wallet.SupportsUpdate(sumUpdate):
		return tx, fmt.Errorf("add transaction: %w", util.ErrInsufficientFunds)
	default:
		return tx, fmt.Errorf("add transaction: %w", util.ErrHistoryConflict)
	}
}

// ImportRecords bulk-loads wallet and transaction records. The load is
// all-or-nothing: a rejected batch leaves the repository untouched.
func (s *ledgerService) ImportRecords(ctx context.Context, wallets []repository.WalletRecord, transactions []repository.TransactionRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.repo.TryLoad(wallets, transactions) {
		return fmt.Errorf("import records: %w", util.ErrImportRejected)
	}
	s.logger.Info("records imported", "wallets", len(wallets), "transactions", len(transactions))
	return nil
}

// Wallets returns every wallet in creation order. The wallets are detached
// copies built under the lock, safe to read after it is released.
func (s *ledgerService) Wallets(ctx context.Context) []*domain.Wallet {
	s.mu.Lock()
	defer s.mu.Unlock()

	wallets := s.repo.Wallets()
	copies := make([]*domain.Wallet, len(wallets))
	for i, wallet := range wallets {
		copies[i] = wallet.Clone()
	}
	return copies
}

// WalletByID looks up a single wallet, returned as a detached copy.
func (s *ledgerService) WalletByID(ctx context.Context, id int) (*domain.Wallet, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	wallet, ok := s.repo.WalletByID(id)
	if !ok {
		return nil, fmt.Errorf("wallet %d: %w", id, util.ErrWalletNotFound)
	}
	return wallet.Clone(), nil
}

// Transactions returns every transaction across all wallets.
func (s *ledgerService) Transactions(ctx context.Context) []domain.Transaction {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.repo.Transactions()
}

// MonthlyReport builds the income/expense report for a month.
func (s *ledgerService) MonthlyReport(ctx context.Context, year int, month time.Month) domain.MonthlyReport {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.repo.MonthlyReport(year, month)
}

// TopExpensesByMonth returns the largest expenses per wallet for a month.
// Each group carries a detached copy of its wallet.
func (s *ledgerService) TopExpensesByMonth(ctx context.Context, year int, month time.Month) []domain.WalletTopExpenses {
	s.mu.Lock()
	defer s.mu.Unlock()

	groups := s.repo.TopExpensesByMonth(year, month)
	for i := range groups {
		groups[i].Wallet = groups[i].Wallet.Clone()
	}
	return groups
}
