package renderer

import (
	"strings"
	"testing"

	equitywise "github.com/basant-kumar/EquityWise"
)

func sampleSummary() equitywise.YearSummary {
	return equitywise.YearSummary{
		Year:            2024,
		VestedEver:      equitywise.Q(10),
		SoldEver:        equitywise.Q(4),
		SoldInYear:      equitywise.Q(2),
		OpeningShares:   equitywise.Q(8),
		CurrentHoldings: equitywise.Q(6),
		Opening: equitywise.Balance{
			On:       equitywise.NewDate(2023, 5, 15),
			Shares:   equitywise.Q(8),
			ValueINR: equitywise.M(180000, equitywise.INR),
		},
		Peak: equitywise.Balance{
			On:       equitywise.NewDate(2024, 4, 30),
			Shares:   equitywise.Q(8),
			ValueINR: equitywise.M(250000, equitywise.INR),
		},
		Closing: equitywise.Balance{
			On:       equitywise.NewDate(2024, 12, 31),
			Shares:   equitywise.Q(6),
			ValueINR: equitywise.M(210000, equitywise.INR),
		},
		VestDetails: []equitywise.VestDetail{{
			Grant:         "RU1234",
			VestDate:      equitywise.NewDate(2023, 5, 15),
			InitialShares: 8,
			ClosingShares: equitywise.Q(6),
			SharesSold:    equitywise.Q(2),
		}},
		DeclarationRequired:         true,
		ExceedsDeclarationThreshold: true,
	}
}

func TestSummaryMarkdown(t *testing.T) {
	s := sampleSummary()

	got := SummaryMarkdown(&s, false)
	for _, want := range []string{
		"# Foreign Assets Summary 2024",
		"Declaration required",
		"2024-04-30",
		"## Balances",
		"## Shares",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("summary missing %q:\n%s", want, got)
		}
	}
	if strings.Contains(got, "Vest-wise Details") {
		t.Error("plain summary should not carry the vest-wise table")
	}
}

func TestSummaryMarkdownDetailed(t *testing.T) {
	s := sampleSummary()

	got := SummaryMarkdown(&s, true)
	if !strings.Contains(got, "## Vest-wise Details") || !strings.Contains(got, "RU1234") {
		t.Errorf("detailed summary missing the vest-wise table:\n%s", got)
	}

	s.VestDetails = nil
	if got := SummaryMarkdown(&s, true); strings.Contains(got, "Vest-wise Details") {
		t.Error("empty vest details should skip the section entirely")
	}
}

func TestSummaryMarkdownNoDeclaration(t *testing.T) {
	s := sampleSummary()
	s.DeclarationRequired = false

	if got := SummaryMarkdown(&s, false); !strings.Contains(got, "No declaration required") {
		t.Errorf("summary missing the negative verdict:\n%s", got)
	}
}

func TestHoldingsMarkdown(t *testing.T) {
	asOf := equitywise.NewDate(2024, 12, 31)
	holdings := []equitywise.Holding{{
		Grant:          "RU1234",
		AsOf:           asOf,
		Quantity:       equitywise.Q(6),
		MarketValueUSD: equitywise.M(3000, equitywise.USD),
		MarketValueINR: equitywise.M(249000, equitywise.INR),
	}}

	got := HoldingsMarkdown(asOf, holdings)
	for _, want := range []string{"# Holdings on 2024-12-31", "RU1234", "**Total**"} {
		if !strings.Contains(got, want) {
			t.Errorf("holdings missing %q:\n%s", want, got)
		}
	}

	if got := HoldingsMarkdown(asOf, nil); !strings.Contains(got, "No shares held") {
		t.Errorf("empty holdings should say so:\n%s", got)
	}
}

func TestFYSummaryMarkdown(t *testing.T) {
	s := equitywise.FYSummary{
		FinancialYear:  "FY24-25",
		VestingCount:   2,
		VestedQuantity: equitywise.Q(10),
		SaleCount:      1,
		SoldQuantity:   equitywise.Q(4),
	}

	got := FYSummaryMarkdown(&s)
	for _, want := range []string{
		"# RSU Summary FY24-25",
		"## Vesting Income",
		"## Capital Gains",
		"Short term",
		"Long term",
		"Net taxable",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("report missing %q:\n%s", want, got)
		}
	}
}

func TestComplianceMarkdown(t *testing.T) {
	summaries := []equitywise.YearSummary{sampleSummary()}

	got := ComplianceMarkdown(summaries, []string{"closing and opening differ by 12.0%"})
	for _, want := range []string{"Compliance Overview", "2024", "yes", "## Findings", "12.0%"} {
		if !strings.Contains(got, want) {
			t.Errorf("overview missing %q:\n%s", want, got)
		}
	}

	if got := ComplianceMarkdown(summaries, nil); strings.Contains(got, "Findings") {
		t.Error("no findings should skip the section")
	}
}

func TestIssuesMarkdown(t *testing.T) {
	issues := []equitywise.Issue{{Severity: "warning", Message: "grant RU9 has sales but no vesting lot"}}
	if got := IssuesMarkdown(issues); !strings.Contains(got, "warning: grant RU9") {
		t.Errorf("issues missing the warning:\n%s", got)
	}
	if got := IssuesMarkdown(nil); !strings.Contains(got, "No issues found") {
		t.Errorf("empty issues should say so:\n%s", got)
	}
}
