package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"

	"github.com/finsight/finsight"
)

// payoffTime formats a month count as "2y 3m", or the never hint when the
// payment cannot amortize the balance.
func payoffTime(p finsight.Payoff) string {
	if p.Never {
		return "Never (increase payments)"
	}
	years, months := p.Months/12, p.Months%12
	if years > 0 {
		return fmt.Sprintf("%dy %dm", years, months)
	}
	return fmt.Sprintf("%dm", months)
}

// PayoffMarkdown renders the estimated payoff timeline for every debt at
// minimum payments.
func PayoffMarkdown(payoffs []finsight.DebtPayoff) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Debt Payoff Projection")
	if len(payoffs) == 0 {
		doc.PlainText("No debts recorded.")
		return doc.String()
	}
	doc.PlainText("Estimated months to pay off at minimum payments.")

	rows := make([][]string, 0, len(payoffs))
	for _, dp := range payoffs {
		interest := "-"
		if !dp.Payoff.Never && dp.Payoff.TotalInterest > 0 {
			interest = finsight.USD(dp.Payoff.TotalInterest)
		}
		rows = append(rows, []string{
			dp.Debt.Name,
			dp.Debt.Type,
			finsight.USD(dp.Debt.Balance),
			fmt.Sprintf("%.2f%%", dp.Debt.InterestRate),
			finsight.USD(dp.Debt.MinimumPayment),
			payoffTime(dp.Payoff),
			interest,
		})
	}
	doc.Table(md.TableSet{
		Header: []string{"Debt", "Type", "Balance", "APR", "Min/mo", "Payoff", "Interest"},
		Rows:   rows,
	})
	return doc.String()
}
