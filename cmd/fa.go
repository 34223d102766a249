package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	equitywise "github.com/basant-kumar/EquityWise"
	"github.com/basant-kumar/EquityWise/renderer"
	"github.com/google/subcommands"
)

// faCmd holds the flags for the 'fa' subcommand.
type faCmd struct {
	year     string
	all      bool
	detailed bool
}

func (*faCmd) Name() string     { return "fa" }
func (*faCmd) Synopsis() string { return "compute the Foreign Assets declaration for a calendar year" }
func (*faCmd) Usage() string {
	return `ew fa [-year <year>] [-detailed] | ew fa -all

  Computes the Schedule FA balances (opening, peak, closing) for one
  calendar year, or the compliance overview of every covered year.

Usage Examples:
$ ew fa -year 2024
$ ew fa -year 2024 -detailed
$ ew fa -all

`
}

func (c *faCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.year, "year", "", "Calendar year to compute, e.g. 2024.")
	f.BoolVar(&c.all, "all", false, "Compute the overview of every year covered by the data.")
	f.BoolVar(&c.detailed, "detailed", false, "Add the vest-wise declaration table.")
}

func (c *faCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	svc, err := loadService()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	if c.all {
		summaries := svc.Summaries()
		findings := equitywise.ValidateContinuity(summaries)
		printMarkdown(renderer.ComplianceMarkdown(summaries, findings))
		return subcommands.ExitSuccess
	}

	if c.year == "" {
		fmt.Fprintln(os.Stderr, "Error: -year is required (or use -all)")
		return subcommands.ExitUsageError
	}

	var out strings.Builder
	for _, year := range strings.Split(c.year, ",") {
		s, err := svc.SummaryFor(strings.TrimSpace(year))
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitUsageError
		}
		out.WriteString(renderer.SummaryMarkdown(&s, c.detailed))
	}
	printMarkdown(out.String())
	return subcommands.ExitSuccess
}
