package equitywise

import (
	"testing"

	"github.com/basant-kumar/EquityWise/date"
)

// day is a test helper to build a date from its ISO form.
func day(s string) Date { return date.MustParse(s) }

// usd is a helper for tests to create dollar money from const.
func usd(v float64) Money { return M(v, USD) }

// inr is a helper for tests to create rupee money from const.
func inr(v float64) Money { return M(v, INR) }

// vest builds a valid vesting lot or fails the test.
func vest(t *testing.T, grant, on string, quantity int, fmv, rate, totalINR float64) VestingLot {
	t.Helper()
	v, err := NewVestingLot(grant, day(on), quantity, fmv, rate, totalINR)
	if err != nil {
		t.Fatalf("NewVestingLot() error = %v", err)
	}
	return v
}

// sale builds a valid disposal lot or fails the test.
func sale(t *testing.T, grant, acquired, sold string, quantity, perShare, proceeds, costBasis, gainLoss float64) DisposalLot {
	t.Helper()
	d, err := NewDisposalLot(grant, day(acquired), day(sold), quantity, perShare, proceeds, costBasis, gainLoss, "")
	if err != nil {
		t.Fatalf("NewDisposalLot() error = %v", err)
	}
	return d
}

// series builds a market data series from date/value pairs.
func series(t *testing.T, name string, points map[string]float64) *Series {
	t.Helper()
	s := NewSeries(name)
	for on, v := range points {
		if err := s.Append(day(on), v); err != nil {
			t.Fatalf("Append(%s) error = %v", on, err)
		}
	}
	return s
}

// calc builds a calculator from rate and price points.
func calc(t *testing.T, rates, prices map[string]float64) *Calculator {
	t.Helper()
	return NewCalculator(series(t, "exchange rate", rates), series(t, "stock price", prices))
}
