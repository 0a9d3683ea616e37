// internal/console/table_test.go
package console

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"walletledger/internal/domain"
)

func TestTableRender(t *testing.T) {
	table := NewTable("ID", "Name")
	table.AddRow("0", "Savings")
	table.AddRow("12", "X")

	var out strings.Builder
	table.Render(&out)

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "| ID | Name    |", lines[0])
	assert.Equal(t, "| -- | ------- |", lines[1])
	assert.Equal(t, "| 0  | Savings |", lines[2])
	assert.Equal(t, "| 12 | X       |", lines[3])
}

func TestTransactionRow(t *testing.T) {
	expense := domain.Transaction{
		ID:        4,
		Date:      domain.NewDate(2025, time.October, 15),
		SumUpdate: decimal.NewFromInt(-30),
	}

	row := transactionRow(expense)
	assert.Equal(t, []string{"4", "2025-10-15", "30", "Expense", "-"}, row)

	income := domain.Transaction{
		ID:          5,
		Date:        domain.NewDate(2025, time.October, 16),
		SumUpdate:   decimal.NewFromInt(30),
		Description: "salary",
	}
	assert.Equal(t, []string{"5", "2025-10-16", "30", "Income", "salary"}, transactionRow(income))
}

func TestWalletRow(t *testing.T) {
	wallet := domain.NewWallet(1, "Savings", "USD", decimal.NewFromInt(100), []domain.Transaction{
		{ID: 0, Date: domain.NewDate(2025, time.October, 15), SumUpdate: decimal.NewFromInt(-25)},
	})

	assert.Equal(t, []string{"1", "Savings", "USD", "100", "75"}, walletRow(wallet))
}
