package renderer

import (
	"fmt"
	"strings"

	equitywise "github.com/basant-kumar/EquityWise"
)

// HoldingsMarkdown renders the per-grant holdings table as of one
// date.
func HoldingsMarkdown(asOf equitywise.Date, holdings []equitywise.Holding) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Holdings on %s\n\n", asOf)
	if len(holdings) == 0 {
		fmt.Fprintln(&b, "No shares held.")
		return b.String()
	}

	fmt.Fprintln(&b, "| Grant | Shares | Cost/Share (USD) | Cost Basis (USD) | Price (USD) | Value (USD) | Value (INR) |")
	fmt.Fprintln(&b, "|:---|---:|---:|---:|---:|---:|---:|")

	totalUSD, totalINR := equitywise.M(0, equitywise.USD), equitywise.M(0, equitywise.INR)
	var totalShares equitywise.Quantity
	for _, h := range holdings {
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s | %s | %s |\n",
			h.Grant,
			h.Quantity,
			h.CostPerShareUSD,
			h.CostBasisUSD,
			h.PriceUSD,
			h.MarketValueUSD,
			h.MarketValueINR,
		)
		totalShares = totalShares.Add(h.Quantity)
		totalUSD = totalUSD.Add(h.MarketValueUSD)
		totalINR = totalINR.Add(h.MarketValueINR)
	}
	fmt.Fprintf(&b, "| **Total** | %s | | | | %s | %s |\n", totalShares, totalUSD, totalINR)
	return b.String()
}
