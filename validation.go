package finsight

import (
	"fmt"
	"math"
)

// finiteNonNegative reports an error when v is NaN, infinite or below zero.
// Zero is allowed everywhere.
func finiteNonNegative(field string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("%s must be a finite number", field)
	}
	if v < 0 {
		return fmt.Errorf("%s must not be negative", field)
	}
	return nil
}

// Validate checks a transaction for correctness. A validation failure on
// add or edit refuses the mutation, it never corrupts the collection.
func (t Transaction) Validate() error {
	if t.Type != Income && t.Type != Expense {
		return fmt.Errorf("invalid transaction type %q", t.Type)
	}
	if t.Category == "" {
		return fmt.Errorf("transaction category is required")
	}
	if t.Date.IsZero() {
		return fmt.Errorf("transaction date is required")
	}
	return finiteNonNegative("amount", t.Amount)
}

// Validate checks an investment for correctness.
func (i Investment) Validate() error {
	if i.Name == "" {
		return fmt.Errorf("investment name is required")
	}
	if i.Type == "" {
		return fmt.Errorf("investment type is required")
	}
	if err := finiteNonNegative("shares", i.Shares); err != nil {
		return err
	}
	if err := finiteNonNegative("purchasePrice", i.PurchasePrice); err != nil {
		return err
	}
	return finiteNonNegative("currentPrice", i.CurrentPrice)
}

// Validate checks a debt for correctness.
func (d Debt) Validate() error {
	if d.Name == "" {
		return fmt.Errorf("debt name is required")
	}
	if d.Type == "" {
		return fmt.Errorf("debt type is required")
	}
	if err := finiteNonNegative("balance", d.Balance); err != nil {
		return err
	}
	if err := finiteNonNegative("interestRate", d.InterestRate); err != nil {
		return err
	}
	if err := finiteNonNegative("minimumPayment", d.MinimumPayment); err != nil {
		return err
	}
	if d.CreditLimit != nil {
		return finiteNonNegative("creditLimit", *d.CreditLimit)
	}
	return nil
}
