package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/finsight/finsight"
	"github.com/finsight/finsight/date"
	"github.com/google/subcommands"
)

// addCmd records one income or expense transaction.
type addCmd struct {
	kind     string
	category string
	amount   float64
	date     string
	note     string
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "record an income or expense transaction" }
func (*addCmd) Usage() string {
	return `fin add -type <income|expense> -category <name> -amount <value> [-d <date>] [-note <text>]

  Records a transaction. Amounts are positive; the type carries the sign.

Usage Examples:
# Record this month's rent.
$ fin add -type expense -category Housing -amount 1800

`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.kind, "type", "expense", "Transaction type: income or expense.")
	f.StringVar(&c.category, "category", "", "Category name.")
	f.Float64Var(&c.amount, "amount", 0, "Amount in dollars, positive.")
	f.StringVar(&c.date, "d", date.Today().String(), "Transaction date.")
	f.StringVar(&c.note, "note", "", "Free-form note.")
}

func (c *addCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	on, err := date.Parse(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}

	b, st, err := openBook(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading data: %v\n", err)
		return subcommands.ExitFailure
	}

	t, err := b.AddTransaction(finsight.Transaction{
		Type:     finsight.TxType(c.kind),
		Category: c.category,
		Amount:   c.amount,
		Date:     on,
		Note:     c.note,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	if status := saveBook(ctx, st, b); status != subcommands.ExitSuccess {
		return status
	}
	fmt.Printf("Recorded %s of %s in %s on %s\n", t.Type, finsight.USD(t.Amount), t.Category, t.Date)
	return subcommands.ExitSuccess
}
