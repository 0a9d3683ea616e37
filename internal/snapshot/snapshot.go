// internal/snapshot/snapshot.go
package snapshot

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"walletledger/internal/repository"
)

// Snapshot is the on-disk import format: one JSON object holding wallet and
// transaction record arrays, with ISO dates and numeric amounts. Business
// validation of the records stays in the repository; this package only
// decodes.
type Snapshot struct {
	Wallets      []repository.WalletRecord      `json:"Wallets"`
	Transactions []repository.TransactionRecord `json:"Transactions"`
}

// Read decodes a snapshot from r.
func Read(r io.Reader) (Snapshot, error) {
	var snap Snapshot
	if err := json.NewDecoder(r).Decode(&snap); err != nil {
		return Snapshot{}, fmt.Errorf("decode snapshot: %w", err)
	}
	return snap, nil
}

// ReadFile decodes a snapshot from the file at path.
func ReadFile(path string) (Snapshot, error) {
	file, err := os.Open(path)
	if err != nil {
		return Snapshot{}, fmt.Errorf("open snapshot: %w", err)
	}
	defer file.Close()
	return Read(file)
}
