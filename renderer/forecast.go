package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"

	"github.com/finsight/finsight"
)

// ForecastMarkdown renders the month-by-month forecast series and the
// annualized projection figures.
func ForecastMarkdown(p finsight.Projection, months []finsight.ForecastMonth) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Income vs Expense Forecast")
	doc.PlainText("Based on 3-month rolling average. Future months are marked projected.")

	rows := make([][]string, 0, len(months))
	for _, m := range months {
		label := m.Month.String()
		switch {
		case m.Current:
			label += " (current)"
		case m.Projected:
			label += " (projected)"
		}
		rows = append(rows, []string{
			label,
			finsight.Abbrev(m.Income),
			finsight.Abbrev(m.Expense),
			finsight.Abbrev(m.Net),
		})
	}
	doc.Table(md.TableSet{
		Header: []string{"Month", "Income", "Expense", "Net"},
		Rows:   rows,
	})

	doc.H2("Annualized")
	doc.Table(md.TableSet{
		Header: []string{"Income", "Expenses", "Savings", "Savings Rate"},
		Rows: [][]string{{
			finsight.USD(p.AnnualIncome),
			finsight.USD(p.AnnualExpense),
			finsight.SignedUSD(p.AnnualNet),
			fmt.Sprintf("%.1f%%", p.SavingsRate),
		}},
	})
	return doc.String()
}
