package finsight

import (
	"errors"
	"testing"

	"github.com/finsight/finsight/date"
)

func TestBookAddTransaction(t *testing.T) {
	b := NewBook()

	added, err := b.AddTransaction(Transaction{
		Type: Income, Category: "Salary", Amount: 100, Date: date.MustParse("2026-02-01"),
	})
	if err != nil {
		t.Fatalf("AddTransaction: %v", err)
	}
	if added.ID == "" {
		t.Errorf("AddTransaction did not generate an id")
	}
	if len(b.Transactions) != 1 {
		t.Fatalf("book has %d transactions, want 1", len(b.Transactions))
	}

	// A duplicate id is refused and the collection stays untouched.
	if _, err := b.AddTransaction(added); err == nil {
		t.Errorf("AddTransaction accepted a duplicate id")
	}
	if len(b.Transactions) != 1 {
		t.Errorf("book has %d transactions after rejected add, want 1", len(b.Transactions))
	}
}

func TestBookAddInvalidTransaction(t *testing.T) {
	b := NewBook()
	rev := b.Revision

	tests := []struct {
		name string
		tx   Transaction
	}{
		{"bad type", Transaction{Type: "transfer", Category: "X", Amount: 1, Date: date.MustParse("2026-02-01")}},
		{"no category", Transaction{Type: Income, Amount: 1, Date: date.MustParse("2026-02-01")}},
		{"no date", Transaction{Type: Income, Category: "X", Amount: 1}},
		{"negative amount", Transaction{Type: Income, Category: "X", Amount: -1, Date: date.MustParse("2026-02-01")}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := b.AddTransaction(tt.tx); err == nil {
				t.Errorf("AddTransaction(%+v) succeeded, want error", tt.tx)
			}
		})
	}
	if len(b.Transactions) != 0 || b.Revision != rev {
		t.Errorf("rejected adds modified the book")
	}
}

func TestBookUpdateDelete(t *testing.T) {
	b := NewBook()
	added, err := b.AddTransaction(Transaction{
		Type: Expense, Category: "Housing", Amount: 1400, Date: date.MustParse("2026-02-01"),
	})
	if err != nil {
		t.Fatalf("AddTransaction: %v", err)
	}

	added.Amount = 1500
	if err := b.UpdateTransaction(added); err != nil {
		t.Fatalf("UpdateTransaction: %v", err)
	}
	if b.Transactions[0].Amount != 1500 {
		t.Errorf("amount = %v after update, want 1500", b.Transactions[0].Amount)
	}

	missing := added
	missing.ID = "nope"
	if err := b.UpdateTransaction(missing); !errors.Is(err, ErrNotFound) {
		t.Errorf("UpdateTransaction(unknown id) = %v, want ErrNotFound", err)
	}

	if err := b.DeleteTransaction(added.ID); err != nil {
		t.Fatalf("DeleteTransaction: %v", err)
	}
	if len(b.Transactions) != 0 {
		t.Errorf("book still has %d transactions after delete", len(b.Transactions))
	}
	if err := b.DeleteTransaction(added.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("second delete = %v, want ErrNotFound", err)
	}
}

func TestBookRevision(t *testing.T) {
	b := NewBook()
	rev := b.Revision

	if _, err := b.AddDebt(Debt{Name: "Visa", Type: "Credit Card", Balance: 100, MinimumPayment: 10}); err != nil {
		t.Fatalf("AddDebt: %v", err)
	}
	if b.Revision == rev {
		t.Errorf("revision unchanged after mutation")
	}

	rev = b.Revision
	b.SetSettings(Settings{View: Yearly, ActiveTab: "debts"})
	if b.Revision == rev {
		t.Errorf("revision unchanged after settings change")
	}

	rev = b.Revision
	b.Clear()
	if len(b.Debts) != 0 || b.Revision == rev {
		t.Errorf("Clear left debts or revision untouched")
	}
}

// Replacing a collection is atomic: one invalid item refuses the whole set.
func TestBookSetTransactionsAtomic(t *testing.T) {
	b := NewBook()
	if _, err := b.AddTransaction(Transaction{
		Type: Income, Category: "Salary", Amount: 100, Date: date.MustParse("2026-02-01"),
	}); err != nil {
		t.Fatalf("AddTransaction: %v", err)
	}

	err := b.SetTransactions([]Transaction{
		{ID: "a", Type: Income, Category: "Salary", Amount: 100, Date: date.MustParse("2026-02-01")},
		{ID: "b", Type: "bogus", Category: "X", Amount: 1, Date: date.MustParse("2026-02-02")},
	})
	if err == nil {
		t.Fatalf("SetTransactions accepted an invalid item")
	}
	if len(b.Transactions) != 1 {
		t.Errorf("failed replace modified the collection: %d items", len(b.Transactions))
	}
}
