package finsight

import (
	"fmt"
)

// ErrNotFound is returned when a mutation targets an unknown record id.
var ErrNotFound = fmt.Errorf("record not found")

// Book is the explicit application state: the three record collections and
// the persisted UI settings of one user, held in memory for the session.
// Collections are logically unordered sets, but insertion order is preserved
// for stable rendering.
//
// Book itself performs no I/O. Every successful mutation bumps Revision so a
// write coalescer can tell whether a snapshot is stale.
type Book struct {
	Transactions []Transaction `json:"transactions"`
	Investments  []Investment  `json:"investments"`
	Debts        []Debt        `json:"debts"`
	Settings     Settings      `json:"settings"`

	Revision uint64 `json:"-"`
}

// NewBook returns an empty book with default settings.
func NewBook() *Book {
	return &Book{Settings: Settings{View: Monthly, ActiveTab: "dashboard"}}
}

// AddTransaction validates and appends a transaction. A missing id is
// generated, a duplicate id is rejected.
func (b *Book) AddTransaction(t Transaction) (Transaction, error) {
	if t.ID == "" {
		t.ID = NewID()
	}
	if err := t.Validate(); err != nil {
		return Transaction{}, err
	}
	for _, x := range b.Transactions {
		if x.ID == t.ID {
			return Transaction{}, fmt.Errorf("duplicate transaction id %q", t.ID)
		}
	}
	b.Transactions = append(b.Transactions, t)
	b.Revision++
	return t, nil
}

// UpdateTransaction replaces the transaction with the same id, keeping its
// position in the collection.
func (b *Book) UpdateTransaction(t Transaction) error {
	if err := t.Validate(); err != nil {
		return err
	}
	for i, x := range b.Transactions {
		if x.ID == t.ID {
			b.Transactions[i] = t
			b.Revision++
			return nil
		}
	}
	return fmt.Errorf("transaction %q: %w", t.ID, ErrNotFound)
}

// DeleteTransaction removes a transaction by id.
func (b *Book) DeleteTransaction(id string) error {
	for i, x := range b.Transactions {
		if x.ID == id {
			b.Transactions = append(b.Transactions[:i], b.Transactions[i+1:]...)
			b.Revision++
			return nil
		}
	}
	return fmt.Errorf("transaction %q: %w", id, ErrNotFound)
}

// AddInvestment validates and appends an investment.
func (b *Book) AddInvestment(inv Investment) (Investment, error) {
	if inv.ID == "" {
		inv.ID = NewID()
	}
	if err := inv.Validate(); err != nil {
		return Investment{}, err
	}
	for _, x := range b.Investments {
		if x.ID == inv.ID {
			return Investment{}, fmt.Errorf("duplicate investment id %q", inv.ID)
		}
	}
	b.Investments = append(b.Investments, inv)
	b.Revision++
	return inv, nil
}

// UpdateInvestment replaces the investment with the same id.
func (b *Book) UpdateInvestment(inv Investment) error {
	if err := inv.Validate(); err != nil {
		return err
	}
	for i, x := range b.Investments {
		if x.ID == inv.ID {
			b.Investments[i] = inv
			b.Revision++
			return nil
		}
	}
	return fmt.Errorf("investment %q: %w", inv.ID, ErrNotFound)
}

// DeleteInvestment removes an investment by id.
func (b *Book) DeleteInvestment(id string) error {
	for i, x := range b.Investments {
		if x.ID == id {
			b.Investments = append(b.Investments[:i], b.Investments[i+1:]...)
			b.Revision++
			return nil
		}
	}
	return fmt.Errorf("investment %q: %w", id, ErrNotFound)
}

// AddDebt validates and appends a debt.
func (b *Book) AddDebt(d Debt) (Debt, error) {
	if d.ID == "" {
		d.ID = NewID()
	}
	if err := d.Validate(); err != nil {
		return Debt{}, err
	}
	for _, x := range b.Debts {
		if x.ID == d.ID {
			return Debt{}, fmt.Errorf("duplicate debt id %q", d.ID)
		}
	}
	b.Debts = append(b.Debts, d)
	b.Revision++
	return d, nil
}

// UpdateDebt replaces the debt with the same id.
func (b *Book) UpdateDebt(d Debt) error {
	if err := d.Validate(); err != nil {
		return err
	}
	for i, x := range b.Debts {
		if x.ID == d.ID {
			b.Debts[i] = d
			b.Revision++
			return nil
		}
	}
	return fmt.Errorf("debt %q: %w", d.ID, ErrNotFound)
}

// DeleteDebt removes a debt by id.
func (b *Book) DeleteDebt(id string) error {
	for i, x := range b.Debts {
		if x.ID == id {
			b.Debts = append(b.Debts[:i], b.Debts[i+1:]...)
			b.Revision++
			return nil
		}
	}
	return fmt.Errorf("debt %q: %w", id, ErrNotFound)
}

// SetTransactions replaces the whole collection after validating every item.
// On any invalid item the book is left untouched.
func (b *Book) SetTransactions(items []Transaction) error {
	for i, t := range items {
		if err := t.Validate(); err != nil {
			return fmt.Errorf("transaction %d: %w", i, err)
		}
	}
	b.Transactions = items
	b.Revision++
	return nil
}

// SetInvestments replaces the whole collection after validating every item.
func (b *Book) SetInvestments(items []Investment) error {
	for i, inv := range items {
		if err := inv.Validate(); err != nil {
			return fmt.Errorf("investment %d: %w", i, err)
		}
	}
	b.Investments = items
	b.Revision++
	return nil
}

// SetDebts replaces the whole collection after validating every item.
func (b *Book) SetDebts(items []Debt) error {
	for i, d := range items {
		if err := d.Validate(); err != nil {
			return fmt.Errorf("debt %d: %w", i, err)
		}
	}
	b.Debts = items
	b.Revision++
	return nil
}

// SetSettings stores the UI state. Settings carry no invariants.
func (b *Book) SetSettings(s Settings) {
	b.Settings = s
	b.Revision++
}

// Clear removes all records from the three collections.
func (b *Book) Clear() {
	b.Transactions = nil
	b.Investments = nil
	b.Debts = nil
	b.Revision++
}
