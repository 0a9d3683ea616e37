// internal/repository/records.go
package repository

import (
	"github.com/shopspring/decimal"

	"walletledger/internal/domain"
)

// Import feed records. Ids here are batch-local correlation keys: they only
// tie transactions to their wallet within one TryLoad call and are replaced
// with fresh repository ids on commit. The JSON field names follow the
// snapshot files produced by the data generator.

// WalletRecord is one imported wallet.
type WalletRecord struct {
	ID              int             `json:"Id"`
	Name            string          `json:"Name"`
	CurrencyID      string          `json:"CurrencyId"`
	StartingBalance decimal.Decimal `json:"StartingBalance"`
}

// TransactionRecord is one imported transaction. WalletID refers to a
// WalletRecord correlation key in the same batch.
type TransactionRecord struct {
	ID          int             `json:"Id"`
	WalletID    int             `json:"WalletId"`
	Date        domain.Date     `json:"Date"`
	SumUpdate   decimal.Decimal `json:"SumUpdate"`
	Description string          `json:"Description"`
}
