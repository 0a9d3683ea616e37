// internal/util/errors.go
package util

import "errors"

// Common application-specific errors. The core communicates rejection via
// boolean results; the service layer maps those to these sentinels for the
// HTTP and console front ends.
var (
	ErrInvalidInput      = errors.New("invalid input provided")
	ErrZeroAmount        = errors.New("transaction amount must be non-zero")
	ErrWalletNotFound    = errors.New("wallet not found")
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrHistoryConflict   = errors.New("transaction would make the balance history go negative")
	ErrImportRejected    = errors.New("imported data failed validation")
)

// IsError reports whether err wraps target.
func IsError(err, target error) bool {
	return errors.Is(err, target)
}
