// internal/domain/transaction_test.go
package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransactionType(t *testing.T) {
	assert.Equal(t, TransactionTypeExpense, Transaction{SumUpdate: money(t, "-5")}.Type())
	assert.Equal(t, TransactionTypeIncome, Transaction{SumUpdate: money(t, "5")}.Type())
	// Zero counts as income by the sign rule, though the repository never
	// accepts a zero amount.
	assert.Equal(t, TransactionTypeIncome, Transaction{SumUpdate: decimal.Zero}.Type())
}

func TestTransactionAbsoluteAmount(t *testing.T) {
	tx := Transaction{SumUpdate: money(t, "-12.34")}
	assert.True(t, tx.AbsoluteAmount().Equal(money(t, "12.34")))
}

func TestAmountIsNonZero(t *testing.T) {
	assert.True(t, AmountIsNonZero(money(t, "0.01")))
	assert.False(t, AmountIsNonZero(decimal.Zero))
}

func TestParseDate(t *testing.T) {
	date, err := ParseDate("2025-10-15")
	require.NoError(t, err)
	assert.Equal(t, 2025, date.Year())
	assert.Equal(t, time.October, date.Month())
	assert.Equal(t, 15, date.Day())

	_, err = ParseDate("15.10.2025")
	assert.Error(t, err)
}

func TestDateOrdering(t *testing.T) {
	earlier := NewDate(2025, time.January, 1)
	later := NewDate(2025, time.January, 5)

	assert.True(t, earlier.Before(later))
	assert.True(t, later.After(earlier))
	assert.Equal(t, 0, earlier.Compare(NewDate(2025, time.January, 1)))
}

func TestDateJSON(t *testing.T) {
	encoded, err := json.Marshal(NewDate(2025, time.June, 9))
	require.NoError(t, err)
	assert.Equal(t, `"2025-06-09"`, string(encoded))

	var decoded Date
	require.NoError(t, json.Unmarshal([]byte(`"2025-06-09"`), &decoded))
	assert.Equal(t, 0, decoded.Compare(NewDate(2025, time.June, 9)))

	assert.Error(t, json.Unmarshal([]byte(`"not a date"`), &decoded))
}
