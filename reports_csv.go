package equitywise

import (
	"encoding/csv"
	"fmt"
	"io"
)

// CSV report writers for the FA declaration figures. The vest-wise
// export mirrors the income tax portal's Foreign Assets schedule: one
// row per vest with initial, peak, and closing values.

// WriteSummaryCSV writes one row per year summary.
func WriteSummaryCSV(w io.Writer, summaries []YearSummary) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{
		"Year", "Opening Date", "Opening Balance (INR)",
		"Peak Date", "Peak Balance (INR)",
		"Closing Balance (INR)", "Closing Shares",
		"Sold In Year", "Declaration Required",
	}); err != nil {
		return err
	}
	for _, s := range summaries {
		row := []string{
			fmt.Sprint(s.Year),
			s.Opening.On.String(),
			s.Opening.ValueINR.StringFixed(),
			s.Peak.On.String(),
			s.Peak.ValueINR.StringFixed(),
			s.Closing.ValueINR.StringFixed(),
			s.Closing.Shares.String(),
			s.SoldInYear.String(),
			fmt.Sprint(s.DeclarationRequired),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteVestDetailsCSV writes the vest-wise declaration rows of one
// year summary.
func WriteVestDetailsCSV(w io.Writer, s YearSummary) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{
		"Grant", "Vest Date", "Shares",
		"Initial Value (INR)", "Initial Rate",
		"Peak Date", "Peak Value (INR)", "Peak Price (USD)", "Peak Rate",
		"Closing Shares", "Closing Value (INR)",
		"Shares Sold", "Gross Proceeds (INR)", "Fully Sold",
	}); err != nil {
		return err
	}
	for _, d := range s.VestDetails {
		row := []string{
			d.Grant,
			d.VestDate.String(),
			fmt.Sprint(d.InitialShares),
			d.InitialValueINR.StringFixed(),
			d.InitialRate.String(),
			d.PeakDate.String(),
			d.PeakValueINR.StringFixed(),
			d.PeakPriceUSD.StringFixed(),
			d.PeakRate.String(),
			d.ClosingShares.String(),
			d.ClosingValueINR.StringFixed(),
			d.SharesSold.String(),
			d.ProceedsINR.StringFixed(),
			fmt.Sprint(d.FullySold),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteHoldingsCSV writes one row per grant holding.
func WriteHoldingsCSV(w io.Writer, holdings []Holding) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{
		"Grant", "As Of", "Quantity",
		"Cost/Share (USD)", "Cost Basis (USD)", "Cost Basis (INR)",
		"Price (USD)", "Rate", "Market Value (USD)", "Market Value (INR)",
	}); err != nil {
		return err
	}
	for _, h := range holdings {
		row := []string{
			h.Grant,
			h.AsOf.String(),
			h.Quantity.String(),
			h.CostPerShareUSD.StringFixed(),
			h.CostBasisUSD.StringFixed(),
			h.CostBasisINR.StringFixed(),
			h.PriceUSD.StringFixed(),
			h.Rate.String(),
			h.MarketValueUSD.StringFixed(),
			h.MarketValueINR.StringFixed(),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
