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

// txCmd holds the flags for the 'tx' subcommand.
type txCmd struct {
	view string
	ref  string
	head int
	tail int
}

func (*txCmd) Name() string     { return "tx" }
func (*txCmd) Synopsis() string { return "list recorded transactions" }
func (*txCmd) Usage() string {
	return `fin tx [-view <view>] [-ref <period>] [-head n | -tail n]

  Lists transactions, optionally restricted to one period.
`
}

func (c *txCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.view, "view", "", "Period granularity: daily, monthly or yearly.")
	f.StringVar(&c.ref, "ref", "", "Period to list, e.g. 2026-02. Defaults to the current period.")
	f.IntVar(&c.head, "head", 0, "Only display the first n transactions.")
	f.IntVar(&c.tail, "tail", 0, "Only display the last n transactions.")
}

func (c *txCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	b, _, err := openBook(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading data: %v\n", err)
		return subcommands.ExitFailure
	}

	txs := b.Transactions
	if c.view != "" || c.ref != "" {
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
		txs = finsight.FilterPeriod(txs, view, ref)
	}

	if c.head > 0 && len(txs) > c.head {
		txs = txs[:c.head]
	}
	if c.tail > 0 && len(txs) > c.tail {
		txs = txs[len(txs)-c.tail:]
	}

	printMarkdown(renderer.TransactionsMarkdown(txs))
	return subcommands.ExitSuccess
}
