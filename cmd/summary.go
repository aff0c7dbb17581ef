package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/finsight/finsight"
	"github.com/finsight/finsight/renderer"
	"github.com/google/subcommands"
)

// summaryCmd holds the flags for the 'summary' subcommand.
type summaryCmd struct {
	view string
	ref  string
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display a financial summary for a period" }
func (*summaryCmd) Usage() string {
	return `fin summary [-view <view>] [-ref <period>]

  Displays the period cash flow, category breakdown, portfolio, debts and
  net worth.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.view, "view", "", "Period granularity: daily, monthly or yearly. Defaults to the saved setting.")
	f.StringVar(&c.ref, "ref", "", "Period to report on, e.g. 2026-02. Defaults to the current period.")
}

func (c *summaryCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	b, _, err := openBook(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading data: %v\n", err)
		return subcommands.ExitFailure
	}

	view := b.Settings.View
	if c.view != "" {
		view, err = finsight.ParseView(c.view)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
	}
	ref := c.ref
	if ref == "" {
		ref = finsight.CurrentRef(view)
	}

	s := finsight.NewSummary(b, view, ref)
	printMarkdown(renderer.SummaryMarkdown(&s))
	return subcommands.ExitSuccess
}
