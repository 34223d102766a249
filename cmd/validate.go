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

type validateCmd struct{}

func (*validateCmd) Name() string     { return "validate" }
func (*validateCmd) Synopsis() string { return "cross-check the data files for inconsistencies" }
func (*validateCmd) Usage() string {
	return `ew validate

  Checks the vesting and gain/loss statements against each other and
  the market data series: sales against unknown grants, overselling,
  empty series. Findings never stop a calculation, they explain why
  its figures may be off.

`
}

func (*validateCmd) SetFlags(f *flag.FlagSet) {}

func (*validateCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	rates, prices, vestings, disposals, err := loadInputs()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	issues := equitywise.ValidateData(vestings, disposals, rates, prices)
	printMarkdown(renderer.IssuesMarkdown(issues))

	for _, i := range issues {
		if i.Severity == "error" {
			return subcommands.ExitFailure
		}
	}
	return subcommands.ExitSuccess
}
