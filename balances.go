package equitywise

import (
	"log"
	"time"
)

// Balance is the valued position across all grants at one candidate
// date of the year sweep.
type Balance struct {
	On            Date
	HoldingsCount int
	Shares        Quantity
	Rate          Quantity
	PriceUSD      Money
	ValueUSD      Money
	ValueINR      Money
}

// yearCandidates returns the sweep dates for a calendar year: the
// opening date followed by the last day of each of the 12 months.
func yearCandidates(opening Date, year int) []Date {
	dates := make([]Date, 0, 13)
	dates = append(dates, opening)
	for m := time.January; m <= time.December; m++ {
		dates = append(dates, NewDate(year, m+1, 0))
	}
	return dates
}

// OpeningDate returns the date the opening balance of a calendar year
// is valued at: the earliest vesting date whose shares were not fully
// sold before January 1 of that year. Sales count against a vest when
// they match its grant and acquisition date. Without any such vest the
// opening date falls back to January 1.
func OpeningDate(vestings []VestingLot, disposals []DisposalLot, year int) Date {
	yearStart := NewDate(year, time.January, 1)

	var earliest Date
	for _, v := range vestings {
		var soldBefore Quantity
		for _, d := range disposals {
			if d.Grant == v.Grant && d.Acquired == v.VestDate && d.Sold.Before(yearStart) {
				soldBefore = soldBefore.Add(d.Quantity)
			}
		}
		if soldBefore.LessThan(Q(v.Quantity)) {
			if earliest.IsZero() || v.VestDate.Before(earliest) {
				earliest = v.VestDate
			}
		}
	}
	if earliest.IsZero() {
		log.Printf("no relevant vesting dates found for %d, using January 1st", year)
		return yearStart
	}
	return earliest
}

// YearBalances runs the calendar-year sweep: it values the holdings
// at the opening date and at each month end, keyed by ISO date string.
//
// A failed valuation at one date degrades to a zero-valued placeholder
// so the sweep always completes with partial results.
func (c *Calculator) YearBalances(vestings []VestingLot, disposals []DisposalLot, year int) map[string]Balance {
	opening := OpeningDate(vestings, disposals, year)

	balances := make(map[string]Balance, 13)
	for _, on := range yearCandidates(opening, year) {
		b, err := c.balanceOn(vestings, disposals, on)
		if err != nil {
			log.Printf("warning: could not calculate balance for %s: %v", on, err)
			b = Balance{On: on, PriceUSD: M(0, USD), ValueUSD: M(0, USD), ValueINR: M(0, INR)}
		}
		balances[on.String()] = b
	}
	return balances
}

// balanceOn values all holdings at one date.
func (c *Calculator) balanceOn(vestings []VestingLot, disposals []DisposalLot, on Date) (Balance, error) {
	holdings, err := c.Holdings(vestings, disposals, on)
	if err != nil {
		return Balance{}, err
	}

	b := Balance{On: on, HoldingsCount: len(holdings), PriceUSD: M(0, USD), ValueUSD: M(0, USD), ValueINR: M(0, INR)}
	for _, h := range holdings {
		b.Shares = b.Shares.Add(h.Quantity)
		b.ValueUSD = b.ValueUSD.Add(h.MarketValueUSD)
		b.ValueINR = b.ValueINR.Add(h.MarketValueINR)
	}

	// The date's own resolved rate and price, also recorded when no
	// holding exists at that date.
	rate, err := c.RateOn(on, RateLookupWindow)
	if err != nil {
		return Balance{}, err
	}
	price, err := c.PriceOn(on, PriceLookupWindow)
	if err != nil {
		return Balance{}, err
	}
	b.Rate, b.PriceUSD = rate, price
	return b, nil
}
