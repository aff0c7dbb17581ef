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

// forecastCmd holds the flags for the 'forecast' subcommand.
type forecastCmd struct {
	back    int
	forward int
}

func (*forecastCmd) Name() string     { return "forecast" }
func (*forecastCmd) Synopsis() string { return "project cash flow from recent months" }
func (*forecastCmd) Usage() string {
	return `fin forecast [-back n] [-forward n]

  Projects income and expenses forward from the rolling average of the
  last three active months.
`
}

func (c *forecastCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.back, "back", 5, "Number of past months to display.")
	f.IntVar(&c.forward, "forward", 6, "Number of projected months to display.")
}

func (c *forecastCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	b, _, err := openBook(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading data: %v\n", err)
		return subcommands.ExitFailure
	}

	monthly := finsight.MonthlyTotals(b.Transactions)
	months := finsight.Forecast(monthly, date.ThisMonth(), c.back, c.forward)
	printMarkdown(renderer.ForecastMarkdown(finsight.NewProjection(monthly), months))
	return subcommands.ExitSuccess
}
