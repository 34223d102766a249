package renderer

import (
	"bytes"
	"fmt"

	equitywise "github.com/basant-kumar/EquityWise"
	md "github.com/nao1215/markdown"
)

// FYSummaryMarkdown renders one financial year's RSU taxation summary.
func FYSummaryMarkdown(s *equitywise.FYSummary) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("RSU Summary %s", s.FinancialYear))

	doc.H2("Vesting Income")
	doc.Table(md.TableSet{
		Header: []string{"Vestings", "Shares", "Income (USD)", "Income (INR)"},
		Rows: [][]string{{
			fmt.Sprintf("%d", s.VestingCount),
			s.VestedQuantity.String(),
			s.VestIncomeUSD.String(),
			s.VestIncomeINR.String(),
		}},
	})

	doc.H2("Capital Gains")
	doc.Table(md.TableSet{
		Header: []string{"Sales", "Shares", "Proceeds (INR)", "Cost Basis (INR)", "Gains (INR)"},
		Rows: [][]string{{
			fmt.Sprintf("%d", s.SaleCount),
			s.SoldQuantity.String(),
			s.ProceedsINR.String(),
			s.CostBasisINR.String(),
			s.GainsINR.String(),
		}},
	})
	doc.Table(md.TableSet{
		Header: []string{"Term", "Gains (USD)", "Gains (INR)"},
		Rows: [][]string{
			{"Short term", s.ShortTermGainsUSD.String(), s.ShortTermGainsINR.String()},
			{"Long term", s.LongTermGainsUSD.String(), s.LongTermGainsINR.String()},
		},
	})

	doc.PlainText(fmt.Sprintf("Net taxable (vest income + gains): %s", s.NetINR))
	return doc.String()
}
