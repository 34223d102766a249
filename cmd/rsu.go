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

// rsuCmd holds the flags for the 'rsu' subcommand.
type rsuCmd struct {
	fy string
}

func (*rsuCmd) Name() string     { return "rsu" }
func (*rsuCmd) Synopsis() string { return "compute the RSU tax summary for a financial year" }
func (*rsuCmd) Usage() string {
	return `ew rsu -fy <financial year>

  Computes vesting income and capital gains for one Indian financial
  year (April to March). Both label forms are accepted.

Usage Examples:
$ ew rsu -fy FY24-25
$ ew rsu -fy FY2025

`
}

func (c *rsuCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.fy, "fy", equitywise.FinancialYearOf(equitywise.Today()), "Financial year, e.g. FY24-25 or FY2025.")
}

func (c *rsuCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	rates, prices, vestings, disposals, err := loadInputs()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	calc := equitywise.NewCalculator(rates, prices)

	s, err := calc.FYSummaryFor(c.fy, vestings, disposals)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}
	printMarkdown(renderer.FYSummaryMarkdown(&s))
	return subcommands.ExitSuccess
}
