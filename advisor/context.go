package advisor

import (
	"fmt"
	"strings"

	"github.com/finsight/finsight"
)

// BuildContext formats the metrics snapshot plus the raw records into the
// deterministic text block handed to the model. Category sections aggregate
// over all transactions in first-seen order.
func BuildContext(b *finsight.Book, sum finsight.Summary) string {
	incomeByCat, incomeOrder := sumByCategory(b.Transactions, finsight.Income)
	expenseByCat, expenseOrder := sumByCategory(b.Transactions, finsight.Expense)

	var sb strings.Builder
	sb.WriteString("## User's Financial Snapshot\n\n")

	sb.WriteString("### Income & Expenses (Current Period)\n")
	fmt.Fprintf(&sb, "- Total Income: $%.2f\n", sum.Stats.Income)
	fmt.Fprintf(&sb, "- Total Expenses: $%.2f\n", sum.Stats.Expense)
	fmt.Fprintf(&sb, "- Net Cash Flow: $%.2f\n\n", sum.Stats.Net)

	sb.WriteString("### Income Sources\n")
	writeCategoryLines(&sb, incomeOrder, incomeByCat, "No income recorded")

	sb.WriteString("\n### Expense Breakdown\n")
	writeCategoryLines(&sb, expenseOrder, expenseByCat, "No expenses recorded")

	sb.WriteString("\n### Investment Portfolio\n")
	fmt.Fprintf(&sb, "- Total Value: $%.2f\n", sum.Portfolio.TotalValue)
	fmt.Fprintf(&sb, "- Total Cost Basis: $%.2f\n", sum.Portfolio.TotalCost)
	fmt.Fprintf(&sb, "- Total Gain/Loss: $%.2f (%.1f%%)\n", sum.Portfolio.TotalGain, sum.Portfolio.GainPct)
	if len(b.Investments) == 0 {
		sb.WriteString("- No investments\n")
	}
	for _, i := range b.Investments {
		fmt.Fprintf(&sb, "- %s (%s): %g shares, bought at $%g, now $%g\n",
			i.Name, i.Type, i.Shares, i.PurchasePrice, i.CurrentPrice)
	}

	sb.WriteString("\n### Debts\n")
	fmt.Fprintf(&sb, "- Total Debt: $%.2f\n", sum.Debts.TotalDebt)
	fmt.Fprintf(&sb, "- Monthly Minimum Payments: $%.2f\n", sum.Debts.TotalMinPayment)
	fmt.Fprintf(&sb, "- Average Interest Rate: %.2f%%\n", sum.Debts.AvgRate)
	fmt.Fprintf(&sb, "- Credit Utilization: %.0f%%\n", sum.Debts.CreditUsed)
	if len(b.Debts) == 0 {
		sb.WriteString("- No debts\n")
	}
	for _, d := range b.Debts {
		fmt.Fprintf(&sb, "- %s (%s): $%.2f at %g%% APR, min $%g/mo\n",
			d.Name, d.Type, d.Balance, d.InterestRate, d.MinimumPayment)
	}

	sb.WriteString("\n### Net Worth\n")
	fmt.Fprintf(&sb, "$%.2f\n", sum.NetWorth)

	sb.WriteString("\n### Projections (Annual, based on 3-month average)\n")
	fmt.Fprintf(&sb, "- Projected Annual Income: $%.2f\n", sum.Projected.AnnualIncome)
	fmt.Fprintf(&sb, "- Projected Annual Expenses: $%.2f\n", sum.Projected.AnnualExpense)
	fmt.Fprintf(&sb, "- Projected Annual Savings: $%.2f\n", sum.Projected.AnnualNet)
	fmt.Fprintf(&sb, "- Savings Rate: %.1f%%\n", sum.Projected.SavingsRate)

	return strings.TrimSpace(sb.String())
}

// sumByCategory totals transactions of one type per category, remembering
// first-seen category order so the output is stable.
func sumByCategory(txs []finsight.Transaction, ty finsight.TxType) (map[string]float64, []string) {
	totals := make(map[string]float64)
	var order []string
	for _, t := range txs {
		if t.Type != ty {
			continue
		}
		if _, ok := totals[t.Category]; !ok {
			order = append(order, t.Category)
		}
		totals[t.Category] += t.Amount
	}
	return totals, order
}

func writeCategoryLines(sb *strings.Builder, order []string, totals map[string]float64, empty string) {
	if len(order) == 0 {
		fmt.Fprintf(sb, "- %s\n", empty)
		return
	}
	for _, cat := range order {
		fmt.Fprintf(sb, "- %s: $%.2f\n", cat, totals[cat])
	}
}
