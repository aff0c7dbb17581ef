package finsight

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
)

// This file handles the user-facing backup format: a single JSON object with
// top-level keys transactions, investments and debts. A bare JSON array is
// also accepted on import and treated as a transactions-only backup.

// Backup is the bulk export/import shape.
type Backup struct {
	Transactions []Transaction `json:"transactions"`
	Investments  []Investment  `json:"investments"`
	Debts        []Debt        `json:"debts"`
}

// Export snapshots the three collections of a book.
func Export(b *Book) Backup {
	return Backup{
		Transactions: b.Transactions,
		Investments:  b.Investments,
		Debts:        b.Debts,
	}
}

// EncodeBackup writes a backup as indented JSON.
func EncodeBackup(w io.Writer, bk Backup) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(bk); err != nil {
		return fmt.Errorf("cannot encode backup: %w", err)
	}
	return nil
}

// DecodeBackup parses a backup file. A malformed file yields an error and
// no partial result.
func DecodeBackup(r io.Reader) (Backup, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return Backup{}, fmt.Errorf("cannot read backup: %w", err)
	}
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var txs []Transaction
		if err := json.Unmarshal(trimmed, &txs); err != nil {
			return Backup{}, fmt.Errorf("invalid backup format: %w", err)
		}
		return Backup{Transactions: txs}, nil
	}
	var bk Backup
	if err := json.Unmarshal(trimmed, &bk); err != nil {
		return Backup{}, fmt.Errorf("invalid backup format: %w", err)
	}
	if bk.Transactions == nil && bk.Investments == nil && bk.Debts == nil {
		return Backup{}, fmt.Errorf("invalid backup format: no recognized collections")
	}
	return bk, nil
}

// Import overwrites all three collections of the book with the backup
// content. From the caller's perspective the replacement is all-or-nothing:
// decoding failed earlier or the whole backup applies.
func (b *Book) Import(bk Backup) {
	b.Transactions = bk.Transactions
	b.Investments = bk.Investments
	b.Debts = bk.Debts
	b.Revision++
}
