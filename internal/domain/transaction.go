// internal/domain/transaction.go
package domain

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal" // For precise monetary calculations
)

// TransactionType classifies a transaction by the sign of its amount.
type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "INCOME"
	TransactionTypeExpense TransactionType = "EXPENSE"
)

const dateLayout = "2006-01-02"

// Date is a calendar date without a time component. Transactions carry dates
// only; same-day ordering is decided by transaction id.
type Date struct {
	t time.Time
}

// NewDate builds a Date from its calendar parts.
func NewDate(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DateOf truncates t to its calendar date.
func DateOf(t time.Time) Date {
	return NewDate(t.Year(), t.Month(), t.Day())
}

// ParseDate parses an ISO "2006-01-02" date.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return Date{}, err
	}
	return DateOf(t), nil
}

func (d Date) Year() int         { return d.t.Year() }
func (d Date) Month() time.Month { return d.t.Month() }
func (d Date) Day() int          { return d.t.Day() }

func (d Date) Before(other Date) bool { return d.t.Before(other.t) }
func (d Date) After(other Date) bool  { return d.t.After(other.t) }

// Compare returns -1, 0 or +1 ordering d against other.
func (d Date) Compare(other Date) int { return d.t.Compare(other.t) }

func (d Date) String() string { return d.t.Format(dateLayout) }

// MarshalJSON encodes the date as an ISO "2006-01-02" string.
func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// UnmarshalJSON decodes an ISO "2006-01-02" string.
func (d *Date) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Transaction is a single dated balance update against a wallet. A positive
// SumUpdate is a credit, a negative one a debit. Transactions are immutable
// once created.
type Transaction struct {
	ID          int             `json:"id"`          // Assigned by the repository, unique across all wallets
	Date        Date            `json:"date"`        // Calendar date of the transaction
	SumUpdate   decimal.Decimal `json:"sum_update"`  // Signed amount applied to the balance
	Description string          `json:"description"` // Optional free text
}

// AbsoluteAmount is the unsigned amount of the transaction.
func (t Transaction) AbsoluteAmount() decimal.Decimal {
	return t.SumUpdate.Abs()
}

// Type derives the transaction kind from the sign of its amount.
func (t Transaction) Type() TransactionType {
	if t.SumUpdate.IsNegative() {
		return TransactionTypeExpense
	}
	return TransactionTypeIncome
}

// AmountIsNonZero reports whether amount is usable as a transaction update.
func AmountIsNonZero(amount decimal.Decimal) bool {
	return !amount.IsZero()
}
