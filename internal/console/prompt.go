// internal/console/prompt.go
package console

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"walletledger/internal/domain"
)

// Prompter reads line-oriented user input. Every Read method returns
// ok=false when the input stream ends (Ctrl+D / Ctrl+Z): cancellation is an
// ordinary outcome of interactive use, not an error. Format mistakes
// re-prompt instead of failing.
type Prompter struct {
	scanner *bufio.Scanner
	out     io.Writer
}

// NewPrompter creates a Prompter reading from in and echoing prompts to out.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{scanner: bufio.NewScanner(in), out: out}
}

// ReadLine prompts with label and returns the trimmed next line.
func (p *Prompter) ReadLine(label string) (string, bool) {
	fmt.Fprint(p.out, label)
	if !p.scanner.Scan() {
		return "", false
	}
	return strings.TrimSpace(p.scanner.Text()), true
}

// ReadNonEmpty re-prompts until a non-empty line is entered.
func (p *Prompter) ReadNonEmpty(label string) (string, bool) {
	for {
		line, ok := p.ReadLine(label)
		if !ok {
			return "", false
		}
		if line != "" {
			return line, true
		}
		fmt.Fprintln(p.out, "A value is required, try again")
	}
}

// ReadInt re-prompts until a valid integer is entered.
func (p *Prompter) ReadInt(label string) (int, bool) {
	for {
		line, ok := p.ReadLine(label)
		if !ok {
			return 0, false
		}
		value, err := strconv.Atoi(line)
		if err != nil {
			fmt.Fprintln(p.out, "That is not a whole number, try again")
			continue
		}
		return value, true
	}
}

// ReadDecimal re-prompts until a valid decimal amount is entered.
func (p *Prompter) ReadDecimal(label string) (decimal.Decimal, bool) {
	for {
		line, ok := p.ReadLine(label)
		if !ok {
			return decimal.Zero, false
		}
		value, err := decimal.NewFromString(line)
		if err != nil {
			fmt.Fprintln(p.out, "That is not a valid amount, try again")
			continue
		}
		return value, true
	}
}

// ReadDate re-prompts until a valid ISO date (2006-01-02) is entered.
func (p *Prompter) ReadDate(label string) (domain.Date, bool) {
	for {
		line, ok := p.ReadLine(label)
		if !ok {
			return domain.Date{}, false
		}
		date, err := domain.ParseDate(line)
		if err != nil {
			fmt.Fprintln(p.out, "Dates look like 2025-10-15, try again")
			continue
		}
		return date, true
	}
}
