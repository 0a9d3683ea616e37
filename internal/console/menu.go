// internal/console/menu.go
package console

import (
	"context"
	"fmt"
	"io"
	"time"

	"walletledger/internal/domain"
	"walletledger/internal/service"
	"walletledger/internal/snapshot"
)

// Menu is the interactive command loop over the ledger. Commands read their
// input through the Prompter; a cancelled prompt aborts the command, a
// cancelled command id exits the loop.
type Menu struct {
	service service.LedgerService
	prompt  *Prompter
	out     io.Writer
}

// NewMenu creates a Menu reading from in and writing to out.
func NewMenu(svc service.LedgerService, in io.Reader, out io.Writer) *Menu {
	return &Menu{
		service: svc,
		prompt:  NewPrompter(in, out),
		out:     out,
	}
}

// Run executes the command loop until the user exits.
func (m *Menu) Run(ctx context.Context) {
	commands := []struct {
		name string
		run  func(ctx context.Context)
	}{
		{"Import data from a snapshot file", m.importSnapshot},
		{"Add a wallet", m.addWallet},
		{"Add a transaction", m.addTransaction},
		{"Show wallets", m.showWallets},
		{"Print the monthly transactions report", m.monthlyReport},
		{"Print the top 3 expenses per wallet for a month", m.topExpenses},
	}

	commandTable := NewTable("ID", "Action")
	for i, command := range commands {
		commandTable.AddRow(fmt.Sprintf("%d", i), command.name)
	}

	fmt.Fprintln(m.out, "Press Ctrl+D (or Ctrl+Z on Windows) to cancel a prompt or exit")
	for {
		fmt.Fprintln(m.out)
		commandTable.Render(m.out)
		fmt.Fprintln(m.out)

		id, ok := m.prompt.ReadInt("Command id: ")
		if !ok {
			break
		}
		if id < 0 || id >= len(commands) {
			fmt.Fprintln(m.out, "No command under that id, reread the list")
			continue
		}
		commands[id].run(ctx)
	}
	fmt.Fprintln(m.out, "\nFarewell")
}

func (m *Menu) importSnapshot(ctx context.Context) {
	path, ok := m.prompt.ReadNonEmpty("Snapshot file path: ")
	if !ok {
		return
	}

	snap, err := snapshot.ReadFile(path)
	if err != nil {
		fmt.Fprintf(m.out, "Could not read the snapshot: %v\n", err)
		return
	}
	if err := m.service.ImportRecords(ctx, snap.Wallets, snap.Transactions); err != nil {
		fmt.Fprintln(m.out, "The snapshot failed validation, nothing was imported")
		return
	}
	fmt.Fprintf(m.out, "Imported %d wallets and %d transactions\n", len(snap.Wallets), len(snap.Transactions))
}

func (m *Menu) addWallet(ctx context.Context) {
	name, ok := m.prompt.ReadNonEmpty("Wallet name: ")
	if !ok {
		return
	}
	currency, ok := m.prompt.ReadNonEmpty("Currency code: ")
	if !ok {
		return
	}

	startingBalance, ok := m.prompt.ReadDecimal("Starting balance: ")
	if !ok {
		return
	}
	for !domain.StartingBalanceIsNotNegative(startingBalance) {
		fmt.Fprintln(m.out, "The starting balance cannot be negative, try again")
		if startingBalance, ok = m.prompt.ReadDecimal("Starting balance: "); !ok {
			return
		}
	}

	wallet, err := m.service.CreateWallet(ctx, name, currency, startingBalance)
	if err != nil {
		fmt.Fprintf(m.out, "Could not create the wallet: %v\n", err)
		return
	}

	table := NewTable(walletHeader()...)
	table.AddRow(walletRow(wallet)...)
	table.Render(m.out)
}

func (m *Menu) addTransaction(ctx context.Context) {
	walletID, ok := m.prompt.ReadInt("Wallet id: ")
	if !ok {
		return
	}
	date, ok := m.prompt.ReadDate("Date (2006-01-02): ")
	if !ok {
		return
	}

	sumUpdate, ok := m.prompt.ReadDecimal("Amount (negative for an expense): ")
	if !ok {
		return
	}
	for !domain.AmountIsNonZero(sumUpdate) {
		fmt.Fprintln(m.out, "The amount cannot be zero, try again")
		if sumUpdate, ok = m.prompt.ReadDecimal("Amount (negative for an expense): "); !ok {
			return
		}
	}

	description, ok := m.prompt.ReadLine("Description (optional): ")
	if !ok {
		return
	}

	tx, err := m.service.AddTransaction(ctx, walletID, date, sumUpdate, description)
	if err != nil {
		fmt.Fprintf(m.out, "The transaction was rejected: %v\n", err)
		return
	}

	table := NewTable(transactionHeader()...)
	table.AddRow(transactionRow(tx)...)
	table.Render(m.out)
}

func (m *Menu) showWallets(ctx context.Context) {
	wallets := m.service.Wallets(ctx)
	if len(wallets) == 0 {
		fmt.Fprintln(m.out, "There are no wallets yet")
		return
	}

	table := NewTable(walletHeader()...)
	for _, wallet := range wallets {
		table.AddRow(walletRow(wallet)...)
	}
	table.Render(m.out)
}

func (m *Menu) monthlyReport(ctx context.Context) {
	year, month, ok := m.readMonth()
	if !ok {
		return
	}

	report := m.service.MonthlyReport(ctx, year, month)
	if len(report.Incomes) == 0 && len(report.Expenses) == 0 {
		fmt.Fprintln(m.out, "No transactions for that month")
		return
	}

	printGroup := func(title string, transactions []domain.Transaction) {
		fmt.Fprintln(m.out, title)
		table := NewTable(transactionHeader()...)
		for _, tx := range transactions {
			table.AddRow(transactionRow(tx)...)
		}
		table.Render(m.out)
	}

	// The larger group goes first.
	incomes := func() { printGroup(fmt.Sprintf("Incomes (total %s):", report.IncomesSum), report.Incomes) }
	expenses := func() { printGroup(fmt.Sprintf("Expenses (total %s):", report.ExpensesSum), report.Expenses) }
	if report.ExpensesSum.GreaterThan(report.IncomesSum) {
		expenses()
		incomes()
	} else {
		incomes()
		expenses()
	}
}

func (m *Menu) topExpenses(ctx context.Context) {
	year, month, ok := m.readMonth()
	if !ok {
		return
	}

	groups := m.service.TopExpensesByMonth(ctx, year, month)
	if len(groups) == 0 {
		fmt.Fprintln(m.out, "No expenses for that month")
		return
	}

	for _, group := range groups {
		fmt.Fprintf(m.out, "%s (%s):\n", group.Wallet.Name, group.Wallet.CurrencyID)
		table := NewTable(transactionHeader()...)
		for _, tx := range group.Transactions {
			table.AddRow(transactionRow(tx)...)
		}
		table.Render(m.out)
	}
}

func (m *Menu) readMonth() (int, time.Month, bool) {
	year, ok := m.prompt.ReadInt("Year: ")
	if !ok {
		return 0, 0, false
	}
	for {
		month, ok := m.prompt.ReadInt("Month (1-12): ")
		if !ok {
			return 0, 0, false
		}
		if month < 1 || month > 12 {
			fmt.Fprintln(m.out, "Months run from 1 to 12, try again")
			continue
		}
		return year, time.Month(month), true
	}
}
