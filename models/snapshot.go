package models

import (
	"encoding/json"
	"fmt"
	"os"
)

// Snapshot is the complete store view the engine operates on: every charge
// document (pending and settled, per type), every banking transaction, the
// accounts and the stored ledgers. The maintenance CLIs read and write it as
// JSON; the engine itself is oblivious to where it came from.
type Snapshot struct {
	Parties          []*Account        `json:"parties"`
	Suppliers        []*Account        `json:"suppliers"`
	Documents        DocumentSet       `json:"documents"`
	BankTransactions []BankTransaction `json:"bank_transactions"`
	Ledgers          []AccountLedger   `json:"ledgers"`
}

func (s *Snapshot) Accounts() []*Account {
	out := make([]*Account, 0, len(s.Parties)+len(s.Suppliers))
	out = append(out, s.Parties...)
	out = append(out, s.Suppliers...)
	return out
}

func LoadSnapshot(path string) (*Snapshot, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read snapshot: %w", err)
	}
	var snap Snapshot
	if err := json.Unmarshal(b, &snap); err != nil {
		return nil, fmt.Errorf("decode snapshot %s: %w", path, err)
	}
	return &snap, nil
}

func (s *Snapshot) Save(path string) error {
	b, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}
	return nil
}
