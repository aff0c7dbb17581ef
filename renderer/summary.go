// Package renderer turns metric snapshots into markdown reports for the
// CLI, which prints them through a terminal markdown renderer.
package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"

	"github.com/finsight/finsight"
)

// SummaryMarkdown renders the full summary: period stats, category
// breakdown, portfolio, debts and net worth.
func SummaryMarkdown(s *finsight.Summary) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Finsight Summary on %s (%s)", s.Ref, s.View))

	doc.H2("Cash Flow")
	doc.Table(md.TableSet{
		Header: []string{"Income", "Expenses", "Net", "Records"},
		Rows: [][]string{{
			finsight.USD(s.Stats.Income),
			finsight.USD(s.Stats.Expense),
			finsight.SignedUSD(s.Stats.Net),
			fmt.Sprintf("%d", s.Stats.Count),
		}},
	})

	if len(s.Breakdown) > 0 {
		doc.H2("Categories")
		rows := make([][]string, 0, len(s.Breakdown))
		for _, c := range s.Breakdown {
			rows = append(rows, []string{c.Name, string(c.Type), finsight.USD(c.Total), fmt.Sprintf("%d", c.Count)})
		}
		doc.Table(md.TableSet{
			Header: []string{"Category", "Type", "Total", "Count"},
			Rows:   rows,
		})
	}

	doc.H2("Portfolio")
	doc.PlainText(fmt.Sprintf("Total Value: %s (cost %s, gain %s, %.1f%%)",
		finsight.USD(s.Portfolio.TotalValue),
		finsight.USD(s.Portfolio.TotalCost),
		finsight.SignedUSD(s.Portfolio.TotalGain),
		s.Portfolio.GainPct))

	doc.H2("Debts")
	doc.PlainText(fmt.Sprintf("Total Debt: %s, minimum payments %s/mo, average rate %.2f%%, credit used %.0f%%",
		finsight.USD(s.Debts.TotalDebt),
		finsight.USD(s.Debts.TotalMinPayment),
		s.Debts.AvgRate,
		s.Debts.CreditUsed))

	doc.H2("Net Worth")
	doc.PlainText(finsight.USD(s.NetWorth))

	return doc.String()
}

// HoldingsMarkdown renders the investment list with per-holding gains.
func HoldingsMarkdown(invs []finsight.Investment) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Investment Portfolio")
	if len(invs) == 0 {
		doc.PlainText("No investments recorded.")
		return doc.String()
	}
	rows := make([][]string, 0, len(invs))
	for _, i := range invs {
		rows = append(rows, []string{
			i.Name,
			i.Type,
			fmt.Sprintf("%g", i.Shares),
			finsight.USD(i.PurchasePrice),
			finsight.USD(i.CurrentPrice),
			finsight.USD(i.Value()),
			finsight.SignedUSD(i.Gain()),
		})
	}
	doc.Table(md.TableSet{
		Header: []string{"Name", "Type", "Shares", "Buy", "Now", "Value", "Gain"},
		Rows:   rows,
	})
	return doc.String()
}
