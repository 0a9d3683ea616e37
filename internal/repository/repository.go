// internal/repository/repository.go
package repository

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"walletledger/internal/domain"
)

// How many expenses TopExpensesByMonth keeps per wallet.
const topExpensesPerWallet = 3

// Repository owns every wallet of a session together with the id sequences
// for wallets and transactions. Ids start at zero, grow sequentially and are
// never reused. The repository is not safe for concurrent use; callers that
// need it serialize access (see the service layer).
type Repository struct {
	nextWalletID      int
	nextTransactionID int

	wallets []*domain.Wallet // creation order
	byID    map[int]*domain.Wallet
}

// New creates an empty repository.
func New() *Repository {
	return &Repository{byID: make(map[int]*domain.Wallet)}
}

// IsEmpty reports whether the repository holds no wallets.
func (r *Repository) IsEmpty() bool {
	return len(r.wallets) == 0
}

// Wallets returns every wallet in creation order.
func (r *Repository) Wallets() []*domain.Wallet {
	return append([]*domain.Wallet(nil), r.wallets...)
}

// Transactions returns every transaction across all wallets, flattened in
// wallet creation order.
func (r *Repository) Transactions() []domain.Transaction {
	var all []domain.Transaction
	for _, wallet := range r.wallets {
		all = append(all, wallet.Transactions()...)
	}
	return all
}

// WalletByID looks up a wallet by its id.
func (r *Repository) WalletByID(id int) (*domain.Wallet, bool) {
	wallet, ok := r.byID[id]
	return wallet, ok
}

// AddWallet creates an empty-history wallet under the next free id. Field
// validation is the caller's responsibility (see the domain validators).
func (r *Repository) AddWallet(name, currencyID string, startingBalance decimal.Decimal) *domain.Wallet {
	id := r.nextWalletID
	r.nextWalletID++

	wallet := domain.NewWallet(id, name, currencyID, startingBalance, nil)
	r.wallets = append(r.wallets, wallet)
	r.byID[id] = wallet
	return wallet
}

// TryAddTransaction builds a transaction under the next free id and offers
// it to the wallet. The id is consumed even when the transaction is
// rejected. Zero amounts and unknown wallet ids are rejected before the
// wallet is touched; otherwise the wallet's own gate decides.
func (r *Repository) TryAddTransaction(walletID int, date domain.Date, sumUpdate decimal.Decimal, description string) (domain.Transaction, bool) {
	tx := domain.Transaction{
		ID:          r.nextTransactionID,
		Date:        date,
		SumUpdate:   sumUpdate,
		Description: description,
	}
	r.nextTransactionID++

	if !domain.AmountIsNonZero(sumUpdate) {
		return tx, false
	}
	wallet, ok := r.byID[walletID]
	if !ok {
		return tx, false
	}
	return tx, wallet.TryAddTransaction(tx)
}

// TryLoad appends imported wallets and their transactions to the repository,
// replacing batch correlation ids with fresh ones. Each wallet's history is
// re-sorted by date and replayed against its starting balance; a zero amount
// or a negative prefix anywhere rejects the batch. The whole batch is
// validated before anything is committed: either every wallet loads or the
// repository stays exactly as it was.
func (r *Repository) TryLoad(wallets []WalletRecord, transactions []TransactionRecord) bool {
	byWallet := make(map[int][]TransactionRecord)
	for _, record := range transactions {
		byWallet[record.WalletID] = append(byWallet[record.WalletID], record)
	}

	type pendingWallet struct {
		record  WalletRecord
		history []TransactionRecord
	}
	pending := make([]pendingWallet, 0, len(wallets))

	for _, record := range wallets {
		if !domain.StartingBalanceIsNotNegative(record.StartingBalance) {
			return false
		}

		history := append([]TransactionRecord(nil), byWallet[record.ID]...)
		sort.SliceStable(history, func(i, j int) bool {
			return history[i].Date.Before(history[j].Date)
		})

		balance := record.StartingBalance
		for _, tx := range history {
			if !domain.AmountIsNonZero(tx.SumUpdate) {
				return false
			}
			balance = balance.Add(tx.SumUpdate)
			if balance.IsNegative() {
				return false
			}
		}

		pending = append(pending, pendingWallet{record: record, history: history})
	}

	for _, p := range pending {
		walletID := r.nextWalletID
		r.nextWalletID++

		history := make([]domain.Transaction, 0, len(p.history))
		for _, tx := range p.history {
			history = append(history, domain.Transaction{
				ID:          r.nextTransactionID,
				Date:        tx.Date,
				SumUpdate:   tx.SumUpdate,
				Description: tx.Description,
			})
			r.nextTransactionID++
		}

		wallet := domain.NewWallet(walletID, p.record.Name, p.record.CurrencyID, p.record.StartingBalance, history)
		r.wallets = append(r.wallets, wallet)
		r.byID[walletID] = wallet
	}

	return true
}

// MonthlyReport partitions the month's transactions into incomes and
// expenses, each sorted by date ascending, with absolute sums per group.
func (r *Repository) MonthlyReport(year int, month time.Month) domain.MonthlyReport {
	var incomes, expenses []domain.Transaction
	for _, tx := range r.Transactions() {
		if tx.Date.Year() != year || tx.Date.Month() != month {
			continue
		}
		if tx.Type() == domain.TransactionTypeIncome {
			incomes = append(incomes, tx)
		} else {
			expenses = append(expenses, tx)
		}
	}

	sortByDate(incomes)
	sortByDate(expenses)

	return domain.MonthlyReport{
		Incomes:     incomes,
		Expenses:    expenses,
		IncomesSum:  absoluteSum(incomes),
		ExpensesSum: absoluteSum(expenses),
	}
}

// TopExpensesByMonth returns, per wallet in creation order, the month's
// largest expenses sorted by absolute amount descending, at most three per
// wallet. Wallets without a matching expense are omitted.
func (r *Repository) TopExpensesByMonth(year int, month time.Month) []domain.WalletTopExpenses {
	var result []domain.WalletTopExpenses
	for _, wallet := range r.wallets {
		var expenses []domain.Transaction
		for _, tx := range wallet.Transactions() {
			if tx.Date.Year() == year && tx.Date.Month() == month && tx.Type() == domain.TransactionTypeExpense {
				expenses = append(expenses, tx)
			}
		}
		if len(expenses) == 0 {
			continue
		}

		sort.SliceStable(expenses, func(i, j int) bool {
			return expenses[i].AbsoluteAmount().GreaterThan(expenses[j].AbsoluteAmount())
		})
		if len(expenses) > topExpensesPerWallet {
			expenses = expenses[:topExpensesPerWallet]
		}

		result = append(result, domain.WalletTopExpenses{Wallet: wallet, Transactions: expenses})
	}
	return result
}

func sortByDate(transactions []domain.Transaction) {
	sort.SliceStable(transactions, func(i, j int) bool {
		return transactions[i].Date.Before(transactions[j].Date)
	})
}

func absoluteSum(transactions []domain.Transaction) decimal.Decimal {
	sum := decimal.Zero
	for _, tx := range transactions {
		sum = sum.Add(tx.AbsoluteAmount())
	}
	return sum
}
