package equitywise

import (
	"errors"
	"reflect"
	"testing"
	"time"
)

func TestYearBalancesEmptyData(t *testing.T) {
	// No lots at all: the sweep still yields 13 dated entries, the
	// January 1 fallback opening plus 12 month ends, all zero valued.
	c := calc(t,
		map[string]float64{"2024-01-02": 83.0, "2024-12-31": 83.5},
		map[string]float64{"2024-01-02": 500.0, "2024-12-31": 520.0},
	)

	balances := c.YearBalances(nil, nil, 2024)

	if len(balances) != 13 {
		t.Fatalf("len(balances) = %d, want 13", len(balances))
	}
	for key, b := range balances {
		if b.HoldingsCount != 0 {
			t.Errorf("%s: HoldingsCount = %d, want 0", key, b.HoldingsCount)
		}
		if !b.ValueINR.IsZero() {
			t.Errorf("%s: ValueINR = %s, want 0", key, b.ValueINR)
		}
	}
	if _, ok := balances["2024-01-01"]; !ok {
		t.Error("missing January 1 fallback opening entry")
	}
	if _, ok := balances["2024-02-29"]; !ok {
		t.Error("missing leap year February month end")
	}
	if _, ok := balances["2024-12-31"]; !ok {
		t.Error("missing December 31 entry")
	}
}

func TestYearBalancesEmptySeries(t *testing.T) {
	// Missing market data degrades each date to a zero placeholder
	// instead of aborting the sweep.
	c := NewCalculator(nil, nil)
	vestings := []VestingLot{vest(t, "RU1", "2023-04-15", 3, 400, 82, 98400)}

	balances := c.YearBalances(vestings, nil, 2024)
	if len(balances) != 13 {
		t.Fatalf("len(balances) = %d, want 13", len(balances))
	}
	for key, b := range balances {
		if !b.ValueINR.IsZero() || b.HoldingsCount != 0 {
			t.Errorf("%s: want zero placeholder, got %+v", key, b)
		}
	}
}

func TestOpeningDate(t *testing.T) {
	vestings := []VestingLot{
		vest(t, "RU1", "2022-08-15", 5, 400, 80, 160000),
		vest(t, "RU1", "2023-04-15", 3, 450, 82, 110700),
	}

	tests := []struct {
		name      string
		disposals []DisposalLot
		want      string
	}{
		{
			name: "earliest vest with shares remaining",
			want: "2022-08-15",
		},
		{
			name: "earliest vest fully sold before the year",
			disposals: []DisposalLot{
				sale(t, "RU1", "2022-08-15", "2023-06-01", 5, 500, 2500, 2000, 500),
			},
			want: "2023-04-15",
		},
		{
			name: "partial sale keeps the earliest vest relevant",
			disposals: []DisposalLot{
				sale(t, "RU1", "2022-08-15", "2023-06-01", 3, 500, 1500, 1200, 300),
			},
			want: "2022-08-15",
		},
		{
			name: "sale during the year does not count",
			disposals: []DisposalLot{
				sale(t, "RU1", "2022-08-15", "2024-02-01", 5, 500, 2500, 2000, 500),
			},
			want: "2022-08-15",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := OpeningDate(vestings, tt.disposals, 2024); got != day(tt.want) {
				t.Errorf("OpeningDate() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestOpeningDateFallback(t *testing.T) {
	if got := OpeningDate(nil, nil, 2024); got != NewDate(2024, time.January, 1) {
		t.Errorf("OpeningDate() = %s, want 2024-01-01", got)
	}
}

func TestYearBalancesIdempotent(t *testing.T) {
	c := calc(t,
		map[string]float64{"2024-01-02": 83.0, "2024-06-28": 84.0, "2024-12-31": 83.5},
		map[string]float64{"2024-01-02": 500.0, "2024-06-28": 560.0, "2024-12-31": 520.0},
	)
	vestings := []VestingLot{vest(t, "RU1", "2023-04-15", 3, 400, 82, 98400)}
	disposals := []DisposalLot{sale(t, "RU1", "2023-04-15", "2024-09-10", 1, 550, 550, 400, 150)}

	first := c.YearBalances(vestings, disposals, 2024)
	second := c.YearBalances(vestings, disposals, 2024)
	if !reflect.DeepEqual(first, second) {
		t.Error("YearBalances is not idempotent")
	}
}

func TestYearBalancesTracksSales(t *testing.T) {
	c := calc(t,
		map[string]float64{"2024-01-02": 83.0, "2024-06-28": 83.0, "2024-12-31": 83.0},
		map[string]float64{"2024-01-02": 500.0, "2024-06-28": 500.0, "2024-12-31": 500.0},
	)
	vestings := []VestingLot{vest(t, "RU1", "2023-04-15", 4, 400, 82, 131200)}
	disposals := []DisposalLot{sale(t, "RU1", "2023-04-15", "2024-07-10", 4, 550, 2200, 1600, 600)}

	balances := c.YearBalances(vestings, disposals, 2024)

	// Before the sale the full position is valued.
	june := balances["2024-06-30"]
	if june.HoldingsCount != 1 || !june.Shares.Equal(Q(4)) {
		t.Errorf("June: %+v, want 4 shares held", june)
	}
	// After the sale the grant is gone.
	december := balances["2024-12-31"]
	if december.HoldingsCount != 0 || !december.ValueINR.IsZero() {
		t.Errorf("December: %+v, want empty position", december)
	}
	// The date's own rate and price are recorded even with no holding.
	if !december.Rate.Equal(Q(83.0)) {
		t.Errorf("December rate = %s, want 83", december.Rate)
	}
}

func TestParseYear(t *testing.T) {
	if y, err := ParseYear("2024"); err != nil || y != 2024 {
		t.Errorf("ParseYear(2024) = %d, %v", y, err)
	}
	for _, bad := range []string{"", "20x4", "FY2024", "99"} {
		if _, err := ParseYear(bad); !errors.Is(err, ErrInvalidYear) {
			t.Errorf("ParseYear(%q) error = %v, want ErrInvalidYear", bad, err)
		}
	}
}
