package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/finsight/finsight"
	"github.com/finsight/finsight/date"
	"github.com/finsight/finsight/renderer"
	"github.com/google/subcommands"
)

// investCmd records one investment holding.
type investCmd struct {
	name     string
	kind     string
	shares   float64
	buyPrice float64
	curPrice float64
	date     string
	note     string
}

func (*investCmd) Name() string     { return "invest" }
func (*investCmd) Synopsis() string { return "record an investment holding" }
func (*investCmd) Usage() string {
	return `fin invest -name <name> -type <type> -shares <n> -buy <price> [-now <price>] [-d <date>]

  Records a holding. Value and gain are always derived from shares and
  prices at read time.
`
}

func (c *investCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Holding name, e.g. a ticker.")
	f.StringVar(&c.kind, "type", "Stocks", "Holding type: Stocks, ETFs, Bonds, Crypto...")
	f.Float64Var(&c.shares, "shares", 0, "Number of shares or units.")
	f.Float64Var(&c.buyPrice, "buy", 0, "Purchase price per share.")
	f.Float64Var(&c.curPrice, "now", 0, "Current price per share. Defaults to the purchase price.")
	f.StringVar(&c.date, "d", date.Today().String(), "Purchase date.")
	f.StringVar(&c.note, "note", "", "Free-form note.")
}

func (c *investCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	on, err := date.Parse(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}
	if c.curPrice == 0 {
		c.curPrice = c.buyPrice
	}

	b, st, err := openBook(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading data: %v\n", err)
		return subcommands.ExitFailure
	}

	inv, err := b.AddInvestment(finsight.Investment{
		Name:          c.name,
		Type:          c.kind,
		Shares:        c.shares,
		PurchasePrice: c.buyPrice,
		CurrentPrice:  c.curPrice,
		PurchaseDate:  on,
		Note:          c.note,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	if status := saveBook(ctx, st, b); status != subcommands.ExitSuccess {
		return status
	}
	fmt.Printf("Recorded %g shares of %s worth %s\n", inv.Shares, inv.Name, finsight.USD(inv.Value()))
	return subcommands.ExitSuccess
}

// holdingsCmd lists the investment portfolio.
type holdingsCmd struct{}

func (*holdingsCmd) Name() string     { return "holdings" }
func (*holdingsCmd) Synopsis() string { return "display the investment portfolio" }
func (*holdingsCmd) Usage() string {
	return `fin holdings

  Displays every holding with its current value and unrealized gain.
`
}

func (*holdingsCmd) SetFlags(_ *flag.FlagSet) {}

func (c *holdingsCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	b, _, err := openBook(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading data: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.HoldingsMarkdown(b.Investments))
	return subcommands.ExitSuccess
}
