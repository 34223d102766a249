package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	equitywise "github.com/basant-kumar/EquityWise"
	"github.com/basant-kumar/EquityWise/renderer"
	"github.com/google/subcommands"
)

// holdingsCmd holds the flags for the 'holdings' subcommand.
type holdingsCmd struct {
	date string
}

func (*holdingsCmd) Name() string     { return "holdings" }
func (*holdingsCmd) Synopsis() string { return "display the shares held per grant as of a date" }
func (*holdingsCmd) Usage() string {
	return `ew holdings [-d <date>]

  Reconstructs the per-grant holdings as of a date (today by default)
  and values them in USD and INR.

Usage Examples:
$ ew holdings
$ ew holdings -d 2024-12-31

`
}

func (c *holdingsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", equitywise.Today().String(), "Date to value the holdings at, ISO form.")
}

func (c *holdingsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	on, err := equitywise.ParseDate(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}

	rates, prices, vestings, disposals, err := loadInputs()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	calc := equitywise.NewCalculator(rates, prices)

	holdings, err := calc.Holdings(vestings, disposals, on)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.HoldingsMarkdown(on, holdings))
	return subcommands.ExitSuccess
}
