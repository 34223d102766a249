package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	equitywise "github.com/basant-kumar/EquityWise"
	"github.com/google/subcommands"
)

// reportCmd holds the flags for the 'report' subcommand.
type reportCmd struct {
	outDir string
	year   string
}

func (*reportCmd) Name() string     { return "report" }
func (*reportCmd) Synopsis() string { return "export the FA declaration figures as CSV files" }
func (*reportCmd) Usage() string {
	return `ew report [-o <dir>] [-year <year>]

  Writes the year summaries, the vest-wise declaration rows, and the
  current holdings as CSV files ready to copy into the tax portal.
  Without -year the vest-wise export covers every year.

Usage Examples:
$ ew report -o output
$ ew report -o output -year 2024

`
}

func (c *reportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.outDir, "o", "output", "Directory to write the CSV files into.")
	f.StringVar(&c.year, "year", "", "Restrict the vest-wise export to one calendar year.")
}

func (c *reportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	rates, prices, vestings, disposals, err := loadInputs()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	calc := equitywise.NewCalculator(rates, prices)
	svc := equitywise.NewService(calc, vestings, disposals)

	var summaries []equitywise.YearSummary
	if c.year != "" {
		s, err := svc.SummaryFor(c.year)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitUsageError
		}
		summaries = []equitywise.YearSummary{s}
	} else {
		summaries = svc.Summaries()
	}

	if err := os.MkdirAll(c.outDir, 0755); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	if err := c.writeCSV("fa_summary.csv", func(w *os.File) error {
		return equitywise.WriteSummaryCSV(w, summaries)
	}); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	for _, s := range summaries {
		name := fmt.Sprintf("fa_vest_details_%d.csv", s.Year)
		if err := c.writeCSV(name, func(w *os.File) error {
			return equitywise.WriteVestDetailsCSV(w, s)
		}); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
	}

	holdings, err := calc.Holdings(vestings, disposals, equitywise.Today())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if err := c.writeCSV("holdings.csv", func(w *os.File) error {
		return equitywise.WriteHoldingsCSV(w, holdings)
	}); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Reports written to %s\n", c.outDir)
	return subcommands.ExitSuccess
}

func (c *reportCmd) writeCSV(name string, write func(*os.File) error) error {
	path := filepath.Join(c.outDir, name)
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return f.Close()
}
