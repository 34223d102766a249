package equitywise

import "testing"

func TestResolveHoldingNoDisposals(t *testing.T) {
	// A single vest of 3 shares at 473.56 and no sales.
	c := calc(t,
		map[string]float64{"2024-12-31": 83.4516},
		map[string]float64{"2024-12-31": 500.00},
	)
	vestings := []VestingLot{vest(t, "RU1", "2024-04-15", 3, 473.56, 83.4516, 118558.0)}

	h, ok, err := c.ResolveHolding("RU1", vestings, nil, day("2024-12-31"))
	if err != nil {
		t.Fatalf("ResolveHolding() error = %v", err)
	}
	if !ok {
		t.Fatal("ResolveHolding() reported no holding")
	}
	if !h.Quantity.Equal(Q(3)) {
		t.Errorf("Quantity = %s, want 3", h.Quantity)
	}
	if want := usd(1420.68); !h.CostBasisUSD.Equal(want) {
		t.Errorf("CostBasisUSD = %s, want %s", h.CostBasisUSD, want)
	}
	if want := usd(473.56); !h.CostPerShareUSD.Equal(want) {
		t.Errorf("CostPerShareUSD = %s, want %s", h.CostPerShareUSD, want)
	}
	if want := usd(1500); !h.MarketValueUSD.Equal(want) {
		t.Errorf("MarketValueUSD = %s, want %s", h.MarketValueUSD, want)
	}
	if h.LatestVest != day("2024-04-15") {
		t.Errorf("LatestVest = %s, want 2024-04-15", h.LatestVest)
	}
}

func TestResolveHoldingFIFO(t *testing.T) {
	// Two vests for RU2 and a sale of 4 shares acquired from the first
	// lot. FIFO leaves 1 share of the first lot and all of the second.
	c := calc(t,
		map[string]float64{"2024-12-31": 83.50},
		map[string]float64{"2024-12-31": 500.00},
	)
	vestings := []VestingLot{
		vest(t, "RU2", "2023-01-15", 5, 400, 82.0, 164000),
		vest(t, "RU2", "2023-07-15", 3, 450, 82.5, 111375),
	}
	disposals := []DisposalLot{
		sale(t, "RU2", "2023-01-15", "2024-06-15", 4, 520, 2080, 1600, 480),
	}

	h, ok, err := c.ResolveHolding("RU2", vestings, disposals, day("2024-12-31"))
	if err != nil {
		t.Fatalf("ResolveHolding() error = %v", err)
	}
	if !ok {
		t.Fatal("ResolveHolding() reported no holding")
	}
	if !h.Quantity.Equal(Q(4)) {
		t.Errorf("Quantity = %s, want 4 (8 vested - 4 sold)", h.Quantity)
	}
	if want := usd(1*400 + 3*450); !h.CostBasisUSD.Equal(want) {
		t.Errorf("CostBasisUSD = %s, want %s", h.CostBasisUSD, want)
	}
	// Cost basis always equals average cost times quantity.
	if got := h.CostPerShareUSD.Mul(h.Quantity); !got.Equal(h.CostBasisUSD) {
		t.Errorf("CostPerShareUSD x Quantity = %s, want %s", got, h.CostBasisUSD)
	}
}

func TestResolveHoldingAsOfFilters(t *testing.T) {
	c := calc(t,
		map[string]float64{"2024-06-01": 83.0},
		map[string]float64{"2024-06-01": 500.0},
	)
	vestings := []VestingLot{
		vest(t, "RU3", "2024-01-15", 5, 400, 83, 166000),
		vest(t, "RU3", "2024-09-15", 3, 450, 83, 112050), // after as-of
	}
	disposals := []DisposalLot{
		sale(t, "RU3", "2024-01-15", "2024-10-01", 2, 500, 1000, 800, 200), // after as-of
	}

	h, ok, err := c.ResolveHolding("RU3", vestings, disposals, day("2024-06-01"))
	if err != nil {
		t.Fatalf("ResolveHolding() error = %v", err)
	}
	if !ok || !h.Quantity.Equal(Q(5)) {
		t.Errorf("Quantity = %s, want 5 (later vest and sale excluded)", h.Quantity)
	}
}

func TestResolveHoldingOversold(t *testing.T) {
	// Selling more than vested floors the holding at zero and omits
	// the grant.
	c := calc(t,
		map[string]float64{"2024-12-31": 83.0},
		map[string]float64{"2024-12-31": 500.0},
	)
	vestings := []VestingLot{vest(t, "RU4", "2023-01-15", 2, 400, 82, 65600)}
	disposals := []DisposalLot{
		sale(t, "RU4", "2023-01-15", "2024-03-01", 5, 500, 2500, 2000, 500),
	}

	_, ok, err := c.ResolveHolding("RU4", vestings, disposals, day("2024-12-31"))
	if err != nil {
		t.Fatalf("ResolveHolding() error = %v", err)
	}
	if ok {
		t.Error("oversold grant should contribute no holding")
	}
}

func TestHoldingsMatchesByGrantOnly(t *testing.T) {
	// The disposal's acquisition date matches no vest, but the grant
	// does; the primary path still consumes the shares.
	c := calc(t,
		map[string]float64{"2024-12-31": 83.0},
		map[string]float64{"2024-12-31": 500.0},
	)
	vestings := []VestingLot{vest(t, "RU5", "2023-01-15", 5, 400, 82, 164000)}
	disposals := []DisposalLot{
		sale(t, "RU5", "2023-02-20", "2024-03-01", 2, 500, 1000, 800, 200),
	}

	h, ok, err := c.ResolveHolding("RU5", vestings, disposals, day("2024-12-31"))
	if err != nil {
		t.Fatalf("ResolveHolding() error = %v", err)
	}
	if !ok || !h.Quantity.Equal(Q(3)) {
		t.Errorf("Quantity = %s, want 3", h.Quantity)
	}
}

func TestHoldingsOmitsEmptyGrants(t *testing.T) {
	c := calc(t,
		map[string]float64{"2024-12-31": 83.0},
		map[string]float64{"2024-12-31": 500.0},
	)
	vestings := []VestingLot{
		vest(t, "RU6", "2023-01-15", 2, 400, 82, 65600),
		vest(t, "RU7", "2023-06-15", 3, 450, 82, 110700),
	}
	disposals := []DisposalLot{
		sale(t, "RU6", "2023-01-15", "2023-09-01", 2, 500, 1000, 800, 200), // fully sold
	}

	holdings, err := c.Holdings(vestings, disposals, day("2024-12-31"))
	if err != nil {
		t.Fatalf("Holdings() error = %v", err)
	}
	if len(holdings) != 1 || holdings[0].Grant != "RU7" {
		t.Fatalf("Holdings() = %v, want only RU7", holdings)
	}
}

func TestResolveHoldingMissingMarketData(t *testing.T) {
	c := NewCalculator(nil, nil)
	vestings := []VestingLot{vest(t, "RU8", "2023-01-15", 2, 400, 82, 65600)}

	_, _, err := c.ResolveHolding("RU8", vestings, nil, day("2024-12-31"))
	if err == nil {
		t.Fatal("expected missing market data error")
	}
}
