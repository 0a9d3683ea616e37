// internal/domain/report.go
package domain

import "github.com/shopspring/decimal"

// MonthlyReport groups one month's transactions by type. Each group is
// sorted by date ascending and carries the absolute sum of its amounts.
// Ordering between the two groups is left to the presentation layer.
type MonthlyReport struct {
	Incomes     []Transaction   `json:"incomes"`
	Expenses    []Transaction   `json:"expenses"`
	IncomesSum  decimal.Decimal `json:"incomes_sum"`
	ExpensesSum decimal.Decimal `json:"expenses_sum"`
}

// WalletTopExpenses pairs a wallet with its largest expenses for a month,
// sorted by absolute amount descending.
type WalletTopExpenses struct {
	Wallet       *Wallet       `json:"wallet"`
	Transactions []Transaction `json:"transactions"`
}
