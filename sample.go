package finsight

import "github.com/finsight/finsight/date"

// Sample data used to seed an empty book on first load and by the
// reset-to-samples action.

func f(v float64) *float64 { return &v }

// SampleBackup returns a complete sample data set.
func SampleBackup() Backup {
	return Backup{
		Transactions: SampleTransactions(),
		Investments:  SampleInvestments(),
		Debts:        SampleDebts(),
	}
}

// SampleTransactions covers two months of typical activity.
func SampleTransactions() []Transaction {
	mk := func(ty TxType, cat string, amount float64, day, note string) Transaction {
		return Transaction{ID: NewID(), Type: ty, Category: cat, Amount: amount, Date: date.MustParse(day), Note: note}
	}
	return []Transaction{
		mk(Income, "Salary", 5200, "2026-02-01", "Monthly salary"),
		mk(Income, "Freelance", 850, "2026-02-03", "Web design project"),
		mk(Expense, "Housing", 1400, "2026-02-01", "Rent"),
		mk(Expense, "Food & Dining", 45, "2026-02-02", "Groceries"),
		mk(Expense, "Transport", 60, "2026-02-03", "Gas"),
		mk(Expense, "Utilities", 130, "2026-02-04", "Electric & Water"),
		mk(Expense, "Entertainment", 25, "2026-02-05", "Streaming"),
		mk(Expense, "Food & Dining", 38, "2026-02-06", "Restaurant"),
		mk(Expense, "Shopping", 120, "2026-02-07", "Clothes"),
		mk(Income, "Investments", 320, "2026-02-08", "Dividends"),
		mk(Expense, "Healthcare", 75, "2026-02-09", "Pharmacy"),
		mk(Expense, "Subscriptions", 55, "2026-02-10", "Software tools"),
		mk(Income, "Salary", 5200, "2026-01-01", "Monthly salary"),
		mk(Income, "Freelance", 600, "2026-01-10", "Logo design"),
		mk(Expense, "Housing", 1400, "2026-01-01", "Rent"),
		mk(Expense, "Food & Dining", 420, "2026-01-15", "Monthly groceries"),
		mk(Expense, "Transport", 180, "2026-01-12", "Car maintenance"),
		mk(Expense, "Entertainment", 90, "2026-01-20", "Concert tickets"),
		mk(Expense, "Utilities", 145, "2026-01-05", "Bills"),
		mk(Expense, "Education", 200, "2026-01-18", "Online course"),
	}
}

// SampleInvestments holds a small diversified portfolio.
func SampleInvestments() []Investment {
	mk := func(name, ty string, shares, buy, now float64, day, note string) Investment {
		return Investment{ID: NewID(), Name: name, Type: ty, Shares: shares,
			PurchasePrice: buy, CurrentPrice: now, PurchaseDate: date.MustParse(day), Note: note}
	}
	return []Investment{
		mk("AAPL", "Stocks", 15, 178.50, 242.30, "2024-06-15", "Apple Inc."),
		mk("VOO", "ETFs", 10, 420.00, 512.80, "2024-01-10", "S&P 500 ETF"),
		mk("BTC", "Crypto", 0.15, 42000, 97500, "2024-03-20", "Bitcoin"),
		mk("MSFT", "Stocks", 8, 380.00, 445.60, "2025-02-01", "Microsoft"),
		mk("BND", "Bonds", 25, 72.50, 73.10, "2025-06-01", "Total Bond Market"),
	}
}

// SampleDebts includes one revolving and two installment debts.
func SampleDebts() []Debt {
	return []Debt{
		{ID: NewID(), Name: "Chase Sapphire", Type: "Credit Card", Balance: 3200,
			InterestRate: 21.99, MinimumPayment: 85, CreditLimit: f(12000),
			DueDate: date.MustParse("2026-02-25"), Note: "Travel rewards card"},
		{ID: NewID(), Name: "Federal Student Loan", Type: "Student Loan", Balance: 28500,
			InterestRate: 4.99, MinimumPayment: 320,
			DueDate: date.MustParse("2026-02-15"), Note: "Undergraduate loans"},
		{ID: NewID(), Name: "Toyota Financing", Type: "Car Loan", Balance: 14200,
			InterestRate: 5.49, MinimumPayment: 385,
			DueDate: date.MustParse("2026-02-20"), Note: "2024 Camry"},
	}
}
