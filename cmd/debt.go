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

// debtCmd records one outstanding liability.
type debtCmd struct {
	name    string
	kind    string
	balance float64
	rate    float64
	minimum float64
	limit   float64
	due     string
	note    string
}

func (*debtCmd) Name() string     { return "debt" }
func (*debtCmd) Synopsis() string { return "record an outstanding debt" }
func (*debtCmd) Usage() string {
	return `fin debt -name <name> -type <type> -balance <value> -rate <apr> -min <payment> [-limit <value>] [-due <date>]

  Records a liability. The limit flag marks revolving credit and enables
  utilization reporting.
`
}

func (c *debtCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Debt name.")
	f.StringVar(&c.kind, "type", "Credit Card", "Debt type: Credit Card, Mortgage, Car Loan...")
	f.Float64Var(&c.balance, "balance", 0, "Outstanding balance.")
	f.Float64Var(&c.rate, "rate", 0, "Annual interest rate in percent.")
	f.Float64Var(&c.minimum, "min", 0, "Minimum monthly payment.")
	f.Float64Var(&c.limit, "limit", 0, "Credit limit for revolving debt. Zero means no limit.")
	f.StringVar(&c.due, "due", "", "Next due date, optional.")
	f.StringVar(&c.note, "note", "", "Free-form note.")
}

func (c *debtCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	d := finsight.Debt{
		Name:           c.name,
		Type:           c.kind,
		Balance:        c.balance,
		InterestRate:   c.rate,
		MinimumPayment: c.minimum,
		Note:           c.note,
	}
	if c.limit > 0 {
		d.CreditLimit = &c.limit
	}
	if c.due != "" {
		due, err := date.Parse(c.due)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing due date: %v\n", err)
			return subcommands.ExitUsageError
		}
		d.DueDate = due
	}

	b, st, err := openBook(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading data: %v\n", err)
		return subcommands.ExitFailure
	}

	added, err := b.AddDebt(d)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	if status := saveBook(ctx, st, b); status != subcommands.ExitSuccess {
		return status
	}
	fmt.Printf("Recorded %s with balance %s at %.2f%%\n", added.Name, finsight.USD(added.Balance), added.InterestRate)
	return subcommands.ExitSuccess
}
