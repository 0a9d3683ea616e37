// internal/console/table.go
package console

import (
	"fmt"
	"io"
	"strings"

	"walletledger/internal/domain"
)

// Table renders rows as fixed-width columns sized to the widest cell of each
// column.
type Table struct {
	header []string
	rows   [][]string
}

// NewTable creates a table with the given column headers.
func NewTable(header ...string) *Table {
	return &Table{header: header}
}

// AddRow appends one row. Missing cells render empty.
func (t *Table) AddRow(cells ...string) {
	t.rows = append(t.rows, cells)
}

// Render writes the table to w.
func (t *Table) Render(w io.Writer) {
	widths := make([]int, len(t.header))
	for i, cell := range t.header {
		widths[i] = len([]rune(cell))
	}
	for _, row := range t.rows {
		for i, cell := range row {
			if i < len(widths) && len([]rune(cell)) > widths[i] {
				widths[i] = len([]rune(cell))
			}
		}
	}

	writeRow := func(row []string) {
		parts := make([]string, len(widths))
		for i := range widths {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}
			parts[i] = cell + strings.Repeat(" ", widths[i]-len([]rune(cell)))
		}
		fmt.Fprintln(w, "| "+strings.Join(parts, " | ")+" |")
	}

	writeRow(t.header)
	separator := make([]string, len(widths))
	for i, width := range widths {
		separator[i] = strings.Repeat("-", width)
	}
	writeRow(separator)
	for _, row := range t.rows {
		writeRow(row)
	}
}

// Row adapters: one plain function per row kind, selected statically at the
// call site.

func walletHeader() []string {
	return []string{"ID", "Name", "Currency", "Starting balance", "Balance"}
}

func walletRow(wallet *domain.Wallet) []string {
	return []string{
		fmt.Sprintf("%d", wallet.ID),
		wallet.Name,
		wallet.CurrencyID,
		wallet.StartingBalance.String(),
		wallet.Balance().String(),
	}
}

func transactionHeader() []string {
	return []string{"ID", "Date", "Amount", "Type", "Description"}
}

func transactionRow(tx domain.Transaction) []string {
	kind := "Income"
	if tx.Type() == domain.TransactionTypeExpense {
		kind = "Expense"
	}
	description := tx.Description
	if description == "" {
		description = "-"
	}
	return []string{
		fmt.Sprintf("%d", tx.ID),
		tx.Date.String(),
		tx.AbsoluteAmount().String(),
		kind,
		description,
	}
}
