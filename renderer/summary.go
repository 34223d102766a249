package renderer

import (
	"bytes"
	"fmt"
	"io"

	equitywise "github.com/basant-kumar/EquityWise"
	md "github.com/nao1215/markdown"
)

// SummaryMarkdown renders one calendar year's Foreign Assets summary
// to a markdown string. The detailed flag adds the vest-wise table.
func SummaryMarkdown(s *equitywise.YearSummary, detailed bool) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Foreign Assets Summary %d", s.Year))

	verdict := "No declaration required."
	if s.DeclarationRequired {
		verdict = fmt.Sprintf("Declaration required: the peak balance reached %s on %s.",
			s.Peak.ValueINR, s.Peak.On)
	}
	doc.PlainText(verdict)

	doc.H2("Balances")
	doc.Table(md.TableSet{
		Header: []string{"Balance", "Date", "Shares", "Price (USD)", "Rate", "Value (INR)"},
		Rows: [][]string{
			balanceRow("Opening", s.Opening),
			balanceRow("Peak", s.Peak),
			balanceRow("Closing", s.Closing),
		},
	})

	doc.H2("Shares")
	doc.Table(md.TableSet{
		Header: []string{"Vested Ever", "Sold Ever", "Sold In Year", "Opening Shares", "Current Holdings"},
		Rows: [][]string{{
			s.VestedEver.String(),
			s.SoldEver.String(),
			s.SoldInYear.String(),
			s.OpeningShares.String(),
			s.CurrentHoldings.String(),
		}},
	})
	buf.WriteString(doc.String())

	if detailed {
		ConditionalBlock(&buf, func(w io.Writer) bool {
			if len(s.VestDetails) == 0 {
				return false
			}
			vestDetailsSection(w, s.VestDetails)
			return true
		})
	}

	return buf.String()
}

func balanceRow(label string, b equitywise.Balance) []string {
	return []string{
		label,
		b.On.String(),
		b.Shares.String(),
		b.PriceUSD.String(),
		b.Rate.String(),
		b.ValueINR.String(),
	}
}

// vestDetailsSection renders the vest-wise declaration table, one row
// per (grant, vest date) pair still relevant in the year.
func vestDetailsSection(w io.Writer, details []equitywise.VestDetail) {
	doc := md.NewMarkdown(w)
	doc.H2("Vest-wise Details")

	rows := make([][]string, 0, len(details))
	for _, d := range details {
		held := d.ClosingShares.String()
		if d.FullySold {
			held = "fully sold"
		}
		rows = append(rows, []string{
			d.Grant,
			d.VestDate.String(),
			fmt.Sprintf("%d", d.InitialShares),
			d.InitialValueINR.String(),
			d.PeakDate.String(),
			d.PeakValueINR.String(),
			held,
			d.ClosingValueINR.String(),
			d.SharesSold.String(),
			d.ProceedsINR.String(),
		})
	}
	doc.Table(md.TableSet{
		Header: []string{"Grant", "Vest Date", "Shares", "Initial (INR)", "Peak Date", "Peak (INR)", "Held At Close", "Closing (INR)", "Sold", "Proceeds (INR)"},
		Rows:   rows,
	})
	io.WriteString(w, doc.String())
}
