// Package cmd implements the `ew` CLI for Foreign Assets and RSU tax
// calculations.
package cmd

import (
	"flag"
	"fmt"
	"os"

	equitywise "github.com/basant-kumar/EquityWise"
	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
	"github.com/joho/godotenv"
)

// Register registers every subcommand on a commander.
func Register(c *subcommands.Commander) {
	c.Register(&faCmd{}, "reports")
	c.Register(&rsuCmd{}, "reports")
	c.Register(&holdingsCmd{}, "reports")
	c.Register(&reportCmd{}, "reports")
	c.Register(&validateCmd{}, "data")
	c.Register(&topicCmd{}, "documentation")
}

// Environment variables overriding the data path flag defaults, set
// directly or through a .env file in the working directory.
const (
	EnvRatesFile     = "EW_RATES"
	EnvPricesFile    = "EW_PRICES"
	EnvVestingsFile  = "EW_VESTINGS"
	EnvDisposalsFile = "EW_DISPOSALS"
)

// The .env file loads before the flag defaults below are evaluated.
var _ = godotenv.Load()

// As a CLI application the process is short lived, so global flags are
// plain package variables.
var (
	ratesFile     = flag.String("rates", envOr(EnvRatesFile, "data/sbi-ttbr.csv"), "Path to the exchange rate CSV file")
	pricesFile    = flag.String("prices", envOr(EnvPricesFile, "data/prices.csv"), "Path to the stock price CSV file")
	vestingsFile  = flag.String("vestings", envOr(EnvVestingsFile, "data/vestings.csv"), "Path to the vesting statement (CSV or JSONL)")
	disposalsFile = flag.String("disposals", envOr(EnvDisposalsFile, "data/gainloss.csv"), "Path to the gain/loss statement (CSV or JSONL)")
)

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// loadInputs reads the four data files named by the global flags.
func loadInputs() (rates, prices *equitywise.Series, vestings []equitywise.VestingLot, disposals []equitywise.DisposalLot, err error) {
	if rates, err = equitywise.LoadRates(*ratesFile); err != nil {
		return nil, nil, nil, nil, fmt.Errorf("loading %s: %w", *ratesFile, err)
	}
	if prices, err = equitywise.LoadPrices(*pricesFile); err != nil {
		return nil, nil, nil, nil, fmt.Errorf("loading %s: %w", *pricesFile, err)
	}
	if vestings, err = equitywise.LoadVestings(*vestingsFile); err != nil {
		return nil, nil, nil, nil, fmt.Errorf("loading %s: %w", *vestingsFile, err)
	}
	if disposals, err = equitywise.LoadDisposals(*disposalsFile); err != nil {
		return nil, nil, nil, nil, fmt.Errorf("loading %s: %w", *disposalsFile, err)
	}
	return rates, prices, vestings, disposals, nil
}

// loadService builds the calculation service over the data files.
func loadService() (*equitywise.Service, error) {
	rates, prices, vestings, disposals, err := loadInputs()
	if err != nil {
		return nil, err
	}
	calc := equitywise.NewCalculator(rates, prices)
	return equitywise.NewService(calc, vestings, disposals), nil
}

// printMarkdown renders markdown for the terminal, falling back to the
// raw text when rendering fails (no TTY, unknown terminal).
func printMarkdown(md string) {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(0))
	if err == nil {
		if out, rerr := r.Render(md); rerr == nil {
			fmt.Print(out)
			return
		}
	}
	fmt.Print(md)
}
