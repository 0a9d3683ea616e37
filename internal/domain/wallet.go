// internal/domain/wallet.go
package domain

import (
	"sort"

	"github.com/shopspring/decimal" // For precise monetary calculations
)

// Wallet is a single cash account: a fixed starting balance plus an
// insertion-ordered history of transactions. The wallet is the sole authority
// on whether a transaction may enter its history; the gate keeps the running
// balance non-negative at every point along the date axis, not just at the
// end.
type Wallet struct {
	ID              int             `json:"id"`
	Name            string          `json:"name"`
	CurrencyID      string          `json:"currency_id"`
	StartingBalance decimal.Decimal `json:"starting_balance"`

	transactions []Transaction
}

// NewWallet creates a Wallet seeded with an already-validated history.
// Identity fields never change after creation; only the history grows.
func NewWallet(id int, name, currencyID string, startingBalance decimal.Decimal, transactions []Transaction) *Wallet {
	return &Wallet{
		ID:              id,
		Name:            name,
		CurrencyID:      currencyID,
		StartingBalance: startingBalance,
		transactions:    append([]Transaction(nil), transactions...),
	}
}

// Transactions returns the history in insertion order. Insertion order may
// differ from date order when back-dated entries were added.
func (w *Wallet) Transactions() []Transaction {
	return append([]Transaction(nil), w.transactions...)
}

// Clone returns a copy with its own transaction history. Reads on the clone
// never observe later mutations of the original.
func (w *Wallet) Clone() *Wallet {
	return NewWallet(w.ID, w.Name, w.CurrencyID, w.StartingBalance, w.transactions)
}

// Balance is the final balance: starting balance plus every update, ignoring
// chronology.
func (w *Wallet) Balance() decimal.Decimal {
	balance := w.StartingBalance
	for _, tx := range w.transactions {
		balance = balance.Add(tx.SumUpdate)
	}
	return balance
}

// TryAddTransaction appends tx if both the final balance and the whole
// balance trajectory stay non-negative. A rejected transaction leaves the
// wallet completely unchanged.
func (w *Wallet) TryAddTransaction(tx Transaction) bool {
	if !w.SupportsUpdate(tx.SumUpdate) || !w.TimelineAllows(tx.Date, tx.SumUpdate) {
		return false
	}
	w.transactions = append(w.transactions, tx)
	return true
}

// SupportsUpdate reports whether the final balance stays non-negative after
// applying update. Necessary but not sufficient: a back-dated debit can pass
// here and still break an earlier point of the trajectory.
func (w *Wallet) SupportsUpdate(update decimal.Decimal) bool {
	return !w.Balance().Add(update).IsNegative()
}

// TimelineAllows reports whether applying update at date keeps the running
// balance non-negative at date and at every later point of the history.
// Later transactions are replayed in date order with same-day ties broken by
// id, so the walk matches original creation order even after out-of-sequence
// inserts.
func (w *Wallet) TimelineAllows(date Date, update decimal.Decimal) bool {
	if !update.IsNegative() {
		// A credit can only raise every later prefix sum.
		return true
	}

	balance := w.StartingBalance
	var later []Transaction
	for _, tx := range w.transactions {
		if tx.Date.After(date) {
			later = append(later, tx)
		} else {
			balance = balance.Add(tx.SumUpdate)
		}
	}

	balance = balance.Add(update)
	if balance.IsNegative() {
		return false
	}

	sort.Slice(later, func(i, j int) bool {
		if c := later[i].Date.Compare(later[j].Date); c != 0 {
			return c < 0
		}
		return later[i].ID < later[j].ID
	})
	for _, tx := range later {
		balance = balance.Add(tx.SumUpdate)
		if balance.IsNegative() {
			return false
		}
	}
	return true
}

// Field validators used at construction and import time. The trajectory
// invariant is enforced separately by the mutation gate above.

// NameIsNotEmpty validates a wallet display name.
func NameIsNotEmpty(name string) bool { return len(name) > 0 }

// CurrencyIDIsNotEmpty validates a currency code.
func CurrencyIDIsNotEmpty(currencyID string) bool { return len(currencyID) > 0 }

// StartingBalanceIsNotNegative validates an initial balance.
func StartingBalanceIsNotNegative(balance decimal.Decimal) bool { return !balance.IsNegative() }
