package renderer

import (
	"bytes"

	md "github.com/nao1215/markdown"

	"github.com/finsight/finsight"
)

// TransactionsMarkdown renders a transaction list, newest last.
func TransactionsMarkdown(txs []finsight.Transaction) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Transactions")
	if len(txs) == 0 {
		doc.PlainText("No transactions recorded.")
		return doc.String()
	}
	rows := make([][]string, 0, len(txs))
	for _, t := range txs {
		amount := finsight.USD(t.Amount)
		if t.Type == finsight.Expense {
			amount = "-" + amount
		}
		rows = append(rows, []string{t.Date.String(), string(t.Type), t.Category, amount, t.Note})
	}
	doc.Table(md.TableSet{
		Header: []string{"Date", "Type", "Category", "Amount", "Note"},
		Rows:   rows,
	})
	return doc.String()
}
