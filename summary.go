package equitywise

import (
	"log"
	"sort"
	"time"
)

// DeclarationThresholdINR is the statutory Foreign Assets declaration
// threshold of 2 lakh rupees. The peak balance, not the opening or
// closing one, is tested against it.
var DeclarationThresholdINR = M(200000, INR)

// VestDetail is the per-vest compliance record for one calendar year:
// initial, peak, and closing valuation of one (grant, vest date) pair
// plus its in-year sale activity.
type VestDetail struct {
	Grant           string
	VestDate        Date
	InitialShares   int
	InitialPriceUSD Money // FMV per share at vesting
	InitialRate     Quantity
	InitialValueUSD Money
	InitialValueINR Money
	PeakDate        Date
	PeakPriceUSD    Money
	PeakRate        Quantity
	PeakValueINR    Money
	ClosingShares   Quantity
	ClosingPriceUSD Money
	ClosingRate     Quantity
	ClosingValueINR Money
	SharesSold      Quantity // sold during the year
	ProceedsINR     Money    // gross, at each sale date's own rate
	FullySold       bool
}

// YearSummary is the Foreign Assets declaration summary for one
// calendar year. It is constructed fresh per calculation request and
// never mutated afterwards.
type YearSummary struct {
	Year int

	// Share statistics, all floored at zero.
	VestedEver      Quantity
	SoldEver        Quantity
	SoldInYear      Quantity
	OpeningShares   Quantity // vested before the year minus sold before it
	CurrentHoldings Quantity // vested ever minus sold ever

	Opening Balance // valued at the opening date
	Peak    Balance // highest sweep entry, first maximum wins
	Closing Balance // December 31, unconditionally

	VestDetails []VestDetail

	// DeclarationRequired is the statutory test: peak balance at or
	// above the threshold. ExceedsDeclarationThreshold is the separate
	// strictly-above display check.
	DeclarationRequired         bool
	ExceedsDeclarationThreshold bool
}

// BuildSummary computes the Foreign Assets declaration summary for a
// calendar year.
func (c *Calculator) BuildSummary(year int, vestings []VestingLot, disposals []DisposalLot) YearSummary {
	s := YearSummary{Year: year}
	s.shareStatistics(vestings, disposals)

	opening := OpeningDate(vestings, disposals, year)
	balances := c.YearBalances(vestings, disposals, year)

	// Peak selection walks the sweep in candidate order, opening date
	// first, so the first maximum wins under strict comparison.
	for i, on := range yearCandidates(opening, year) {
		b := balances[on.String()]
		if i == 0 {
			s.Opening = b
			s.Peak = b
			continue
		}
		if b.ValueINR.GreaterThan(s.Peak.ValueINR) {
			s.Peak = b
		}
	}
	s.Closing = balances[NewDate(year, time.December, 31).String()]

	s.VestDetails = c.vestDetails(year, vestings, disposals)

	s.DeclarationRequired = s.Peak.ValueINR.GreaterThanOrEqual(DeclarationThresholdINR)
	s.ExceedsDeclarationThreshold = s.Peak.ValueINR.GreaterThan(DeclarationThresholdINR)

	log.Printf("FA summary for %d: opening %s, peak %s on %s, closing %s, declaration required: %v",
		year, s.Opening.ValueINR, s.Peak.ValueINR, s.Peak.On, s.Closing.ValueINR, s.DeclarationRequired)
	return s
}

func (s *YearSummary) shareStatistics(vestings []VestingLot, disposals []DisposalLot) {
	yearStart := NewDate(s.Year, time.January, 1)
	yearEnd := NewDate(s.Year, time.December, 31)

	var vestedBefore, soldBefore Quantity
	for _, v := range vestings {
		q := Q(v.Quantity)
		s.VestedEver = s.VestedEver.Add(q)
		if v.VestDate.Before(yearStart) {
			vestedBefore = vestedBefore.Add(q)
		}
	}
	for _, d := range disposals {
		s.SoldEver = s.SoldEver.Add(d.Quantity)
		if d.Sold.Before(yearStart) {
			soldBefore = soldBefore.Add(d.Quantity)
		}
		if !d.Sold.Before(yearStart) && !d.Sold.After(yearEnd) {
			s.SoldInYear = s.SoldInYear.Add(d.Quantity)
		}
	}
	s.OpeningShares = vestedBefore.Sub(soldBefore).Floor()
	s.CurrentHoldings = s.VestedEver.Sub(s.SoldEver).Floor()
}

// vestDetails builds the per-vest records for the year. A vest is
// relevant when its date is on or before year end and it either still
// has shares at year end or saw sales during the year. Sales are
// matched to a vest by grant and acquisition date.
func (c *Calculator) vestDetails(year int, vestings []VestingLot, disposals []DisposalLot) []VestDetail {
	yearStart := NewDate(year, time.January, 1)
	yearEnd := NewDate(year, time.December, 31)

	var details []VestDetail
	for _, v := range vestings {
		if v.VestDate.After(yearEnd) {
			continue
		}

		var soldThroughYear, soldInYear Quantity
		proceedsINR := M(0, INR)
		for _, d := range disposals {
			if d.Grant != v.Grant || d.Acquired != v.VestDate || d.Sold.After(yearEnd) {
				continue
			}
			soldThroughYear = soldThroughYear.Add(d.Quantity)
			if !d.Sold.Before(yearStart) {
				soldInYear = soldInYear.Add(d.Quantity)
				// Proceeds at the sale date's own rate, not the year-end one.
				rate, err := c.RateOn(d.Sold, RateLookupWindow)
				if err != nil {
					log.Printf("warning: proceeds for %s sold %s: %v", d.Grant, d.Sold, err)
					continue
				}
				proceedsINR = proceedsINR.Add(d.ProceedsPerShare.Mul(d.Quantity).Convert(rate, INR))
			}
		}

		remaining := Q(v.Quantity).Sub(soldThroughYear).Floor()
		if !remaining.IsPositive() && !soldInYear.IsPositive() {
			continue
		}

		detail := VestDetail{
			Grant:           v.Grant,
			VestDate:        v.VestDate,
			InitialShares:   v.Quantity,
			InitialPriceUSD: v.FMVUSD,
			InitialRate:     v.ForexRate,
			InitialValueUSD: v.FMVUSD.Mul(Q(v.Quantity)),
			InitialValueINR: v.InitialValueINR(),
			ClosingShares:   remaining,
			SharesSold:      soldInYear,
			ProceedsINR:     proceedsINR,
			FullySold:       remaining.IsZero(),
		}
		c.scanVestPeak(&detail, year, soldInYear, remaining)

		if price, err := c.PriceOn(yearEnd, PriceLookupWindow); err == nil {
			if rate, err := c.RateOn(yearEnd, RateLookupWindow); err == nil {
				detail.ClosingPriceUSD = price
				detail.ClosingRate = rate
				detail.ClosingValueINR = price.Mul(remaining).Convert(rate, INR)
			}
		}

		details = append(details, detail)
	}

	sort.Slice(details, func(i, j int) bool { return details[i].VestDate.Before(details[j].VestDate) })
	return details
}

// scanVestPeak finds one vest's highest month-end value within the
// year. The scan starts at the vest's own month for in-year vests and
// at January for carryover vests from prior years. Sales are assumed
// to happen at year end: each month-end before December 31 values the
// vest's full quantity, the year-end one values the remaining shares.
func (c *Calculator) scanVestPeak(d *VestDetail, year int, soldInYear, remaining Quantity) {
	yearEnd := NewDate(year, time.December, 31)

	startMonth := time.January
	if d.VestDate.Year() == year {
		startMonth = d.VestDate.Month()
	}
	for m := startMonth; m <= time.December; m++ {
		on := NewDate(year, m+1, 0)
		if on.Before(d.VestDate) {
			continue
		}
		price, err := c.PriceOn(on, PriceLookupWindow)
		if err != nil {
			log.Printf("warning: vest peak for %s: %v", d.Grant, err)
			continue
		}
		rate, err := c.RateOn(on, RateLookupWindow)
		if err != nil {
			log.Printf("warning: vest peak for %s: %v", d.Grant, err)
			continue
		}

		shares := Q(d.InitialShares)
		if soldInYear.IsPositive() && !on.Before(yearEnd) {
			shares = remaining
		}
		value := price.Mul(shares).Convert(rate, INR)
		if value.GreaterThan(d.PeakValueINR) {
			d.PeakValueINR = value
			d.PeakDate = on
			d.PeakPriceUSD = price
			d.PeakRate = rate
		}
	}
}
