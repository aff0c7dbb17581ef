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

// payoffCmd displays the debt payoff timeline.
type payoffCmd struct{}

func (*payoffCmd) Name() string     { return "payoff" }
func (*payoffCmd) Synopsis() string { return "estimate debt payoff timelines" }
func (*payoffCmd) Usage() string {
	return `fin payoff

  Estimates, for each debt, how long the minimum payment takes to clear the
  balance and how much interest accrues on the way.
`
}

func (*payoffCmd) SetFlags(_ *flag.FlagSet) {}

func (c *payoffCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	b, _, err := openBook(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading data: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.PayoffMarkdown(finsight.EstimatePayoffs(b.Debts)))
	return subcommands.ExitSuccess
}
