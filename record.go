package finsight

import (
	"github.com/google/uuid"

	"github.com/finsight/finsight/date"
)

// TxType is the direction of a transaction. Amounts are stored unsigned;
// the sign is derived from the type at aggregation time.
type TxType string

const (
	Income  TxType = "income"
	Expense TxType = "expense"
)

// Transaction is a single income or expense record.
type Transaction struct {
	ID       string    `json:"id"`
	Type     TxType    `json:"type"`
	Category string    `json:"category"`
	Amount   float64   `json:"amount"`
	Date     date.Date `json:"date"`
	Note     string    `json:"note"`
}

// Investment is a holding. Value and gain are always derived from shares
// and prices, never persisted.
type Investment struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Type          string    `json:"type"`
	Shares        float64   `json:"shares"`
	PurchasePrice float64   `json:"purchasePrice"`
	CurrentPrice  float64   `json:"currentPrice"`
	PurchaseDate  date.Date `json:"purchaseDate"`
	Note          string    `json:"note"`
}

// Value returns the current market value of the holding.
func (i Investment) Value() float64 { return i.Shares * i.CurrentPrice }

// Cost returns the cost basis of the holding.
func (i Investment) Cost() float64 { return i.Shares * i.PurchasePrice }

// Gain returns the unrealized gain (or loss, when negative).
func (i Investment) Gain() float64 { return i.Value() - i.Cost() }

// Debt is an outstanding liability. CreditLimit is nil for debts without a
// revolving limit (loans).
type Debt struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Type           string    `json:"type"`
	Balance        float64   `json:"balance"`
	InterestRate   float64   `json:"interestRate"` // annual percentage
	MinimumPayment float64   `json:"minimumPayment"`
	CreditLimit    *float64  `json:"creditLimit,omitempty"`
	DueDate        date.Date `json:"dueDate,omitzero"`
	Note           string    `json:"note"`
}

// Utilization returns the balance as a percentage of the credit limit, or
// false when the debt has no limit.
func (d Debt) Utilization() (float64, bool) {
	if d.CreditLimit == nil || *d.CreditLimit <= 0 {
		return 0, false
	}
	return d.Balance / *d.CreditLimit * 100, true
}

// Settings is UI state persisted for continuity only.
type Settings struct {
	View      View   `json:"view"`
	ActiveTab string `json:"activeTab"`
}

// NewID returns a fresh record identifier. The client side of the store is
// responsible for identifier generation.
func NewID() string { return uuid.NewString() }

// IncomeCategories and ExpenseCategories are the category sets offered on
// entry. Free-form category names are still accepted on import.
var (
	IncomeCategories = []string{
		"Salary", "Freelance", "Investments", "Side Hustle", "Gifts", "Other Income",
	}
	ExpenseCategories = []string{
		"Housing", "Food & Dining", "Transport", "Utilities", "Entertainment",
		"Healthcare", "Shopping", "Education", "Subscriptions", "Other",
	}
)

// InvestmentTypes enumerates the supported holding types.
var InvestmentTypes = []string{
	"Stocks", "ETFs", "Bonds", "Crypto", "Real Estate", "Mutual Funds", "Commodities", "Other",
}

// DebtTypes enumerates the supported liability types.
var DebtTypes = []string{
	"Credit Card", "Student Loan", "Mortgage", "Car Loan", "Personal Loan",
	"Medical Debt", "Business Loan", "Other",
}

// Palette is the display color cycle for category breakdowns. Colors are
// assigned by breakdown position, not category identity, so a category's
// color may change when the breakdown cardinality changes.
var Palette = []string{
	"#a78bfa", "#f472b6", "#38bdf8", "#22c55e", "#facc15",
	"#fb923c", "#e879f9", "#34d399", "#f87171", "#818cf8",
}
