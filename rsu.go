package equitywise

import (
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/basant-kumar/EquityWise/date"
)

// longTermHoldingDays is India's 24-month rule for equity held abroad,
// counted as 24 x 30 days. Gains past it are long-term.
const longTermHoldingDays = 24 * 30

// FinancialYearOf returns the Indian financial year label, "FY24-25"
// style, for a date. The financial year runs April 1 to March 31.
func FinancialYearOf(on Date) string {
	start := on.Year()
	if on.Month() < time.April {
		start--
	}
	return fmt.Sprintf("FY%02d-%02d", start%100, (start+1)%100)
}

// ParseFinancialYear accepts both the "FY2025" and "FY24-25" label
// forms and returns the financial year's ending calendar year.
func ParseFinancialYear(s string) (int, error) {
	part, ok := strings.CutPrefix(s, "FY")
	if !ok {
		return 0, fmt.Errorf("%w: %q is not a financial year, want FY2025 or FY24-25", ErrInvalidYear, s)
	}
	if _, after, ok := strings.Cut(part, "-"); ok {
		// Short form: the part after the dash is the ending year.
		short, err := strconv.Atoi(after)
		if err != nil || short < 0 || short > 99 {
			return 0, fmt.Errorf("%w: %q is not a financial year, want FY2025 or FY24-25", ErrInvalidYear, s)
		}
		if short < 50 {
			return 2000 + short, nil
		}
		return 1900 + short, nil
	}
	year, err := strconv.Atoi(part)
	if err != nil || year < 1900 || year > 2200 {
		return 0, fmt.Errorf("%w: %q is not a financial year, want FY2025 or FY24-25", ErrInvalidYear, s)
	}
	return year, nil
}

// FinancialYearLabel returns the "FY24-25" label of the financial year
// ending in the given calendar year.
func FinancialYearLabel(endYear int) string {
	return fmt.Sprintf("FY%02d-%02d", (endYear-1)%100, endYear%100)
}

// FinancialYearRange returns the date range of the financial year
// ending in the given calendar year: April 1 to March 31.
func FinancialYearRange(endYear int) date.Range {
	return date.Range{From: NewDate(endYear-1, time.April, 1), To: NewDate(endYear, time.March, 31)}
}

// VestingEvent is a vesting lot seen through the income tax lens: the
// fair market value at vesting is taxable income (salary, not capital
// gain), and that FMV becomes the cost basis for any later sale.
type VestingEvent struct {
	Grant         string
	VestDate      Date
	Quantity      int
	FMVUSD        Money    // per share
	FMVINR        Money    // per share, at the vesting statement's rate
	Rate          Quantity // exchange rate from the vesting statement
	IncomeUSD     Money
	IncomeINR     Money // authoritative figure from the vesting statement
	FinancialYear string
}

// SaleEvent is a disposal lot with its capital gain classified for one
// financial year. Broker-reported cost basis and gain are
// authoritative; figures are converted at the sale date's own rate.
type SaleEvent struct {
	Grant         string
	OrderRef      string
	Acquired      Date
	Sold          Date
	Quantity      Quantity
	SalePriceUSD  Money // per share
	ProceedsUSD   Money
	ProceedsINR   Money
	CostBasisUSD  Money
	CostBasisINR  Money
	GainUSD       Money
	GainINR       Money
	RateAtSale    Quantity
	HoldingDays   int
	LongTerm      bool
	VestFMVUSD    Money
	VestRate      Quantity
	FinancialYear string
}

// VestingEvents derives the income tax view of every vesting lot.
func (c *Calculator) VestingEvents(vestings []VestingLot) []VestingEvent {
	events := make([]VestingEvent, 0, len(vestings))
	for _, v := range vestings {
		events = append(events, VestingEvent{
			Grant:         v.Grant,
			VestDate:      v.VestDate,
			Quantity:      v.Quantity,
			FMVUSD:        v.FMVUSD,
			FMVINR:        v.FMVUSD.Convert(v.ForexRate, INR),
			Rate:          v.ForexRate,
			IncomeUSD:     v.FMVUSD.Mul(Q(v.Quantity)),
			IncomeINR:     v.TotalINR,
			FinancialYear: FinancialYearOf(v.VestDate),
		})
	}
	return events
}

// SaleEvents derives the capital gains view of every disposal lot.
// The vesting lots supply the exact FMV and rate of the matching vest,
// looked up by grant and acquisition date; without a match the FMV is
// recomputed from the broker cost basis. Disposals whose sale date has
// no resolvable exchange rate are skipped with a log entry.
func (c *Calculator) SaleEvents(disposals []DisposalLot, vestings []VestingLot) []SaleEvent {
	byVest := make(map[string]VestingLot, len(vestings))
	for _, v := range vestings {
		byVest[v.Grant+"_"+v.VestDate.String()] = v
	}

	var events []SaleEvent
	for _, d := range disposals {
		if !d.Quantity.IsPositive() {
			continue
		}
		rate, err := c.RateOn(d.Sold, TransactionLookupWindow)
		if err != nil {
			log.Printf("warning: skipping sale of %s on %s: %v", d.Grant, d.Sold, err)
			continue
		}

		gainUSD := d.GainLossUSD
		if gainUSD.IsZero() {
			// Fallback when the broker figure is absent.
			gainUSD = d.TotalProceeds.Sub(d.CostBasisUSD)
		}

		e := SaleEvent{
			Grant:         d.Grant,
			OrderRef:      d.OrderRef,
			Acquired:      d.Acquired,
			Sold:          d.Sold,
			Quantity:      d.Quantity,
			SalePriceUSD:  d.ProceedsPerShare,
			ProceedsUSD:   d.TotalProceeds,
			ProceedsINR:   d.TotalProceeds.Convert(rate, INR),
			CostBasisUSD:  d.CostBasisUSD,
			CostBasisINR:  d.CostBasisUSD.Convert(rate, INR),
			GainUSD:       gainUSD,
			GainINR:       gainUSD.Convert(rate, INR),
			RateAtSale:    rate,
			HoldingDays:   d.Sold.Sub(d.Acquired),
			FinancialYear: FinancialYearOf(d.Sold),
		}
		e.LongTerm = e.HoldingDays > longTermHoldingDays

		if v, ok := byVest[d.Grant+"_"+d.Acquired.String()]; ok {
			e.VestFMVUSD = v.FMVUSD
			e.VestRate = v.ForexRate
		} else {
			log.Printf("warning: no vesting lot for sale of %s acquired %s, recomputing FMV from broker cost basis", d.Grant, d.Acquired)
			e.VestFMVUSD = d.CostBasisUSD.Div(d.Quantity)
			if vestRate, err := c.RateOn(d.Acquired, TransactionLookupWindow); err == nil {
				e.VestRate = vestRate
			} else {
				e.VestRate = rate
			}
		}
		events = append(events, e)
	}
	return events
}

// FYSummary aggregates one financial year's RSU activity: vest income
// on one side, sale proceeds and the short/long-term gain split on the
// other.
type FYSummary struct {
	FinancialYear string

	VestingCount   int
	VestedQuantity Quantity
	VestIncomeUSD  Money
	VestIncomeINR  Money

	SaleCount    int
	SoldQuantity Quantity
	ProceedsUSD  Money
	ProceedsINR  Money
	CostBasisUSD Money
	CostBasisINR Money
	GainsUSD     Money
	GainsINR     Money

	ShortTermGainsUSD Money
	ShortTermGainsINR Money
	LongTermGainsUSD  Money
	LongTermGainsINR  Money

	// NetINR is the vest income plus capital gains for the year.
	NetINR Money
}

// FYSummaryFor computes the RSU summary for a financial year given by
// label, accepting both "FY2025" and "FY24-25" forms.
func (c *Calculator) FYSummaryFor(label string, vestings []VestingLot, disposals []DisposalLot) (FYSummary, error) {
	endYear, err := ParseFinancialYear(label)
	if err != nil {
		return FYSummary{}, err
	}
	fy := FinancialYearLabel(endYear)

	s := FYSummary{
		FinancialYear: fy,
		VestIncomeUSD: M(0, USD), VestIncomeINR: M(0, INR),
		ProceedsUSD: M(0, USD), ProceedsINR: M(0, INR),
		CostBasisUSD: M(0, USD), CostBasisINR: M(0, INR),
		GainsUSD: M(0, USD), GainsINR: M(0, INR),
		ShortTermGainsUSD: M(0, USD), ShortTermGainsINR: M(0, INR),
		LongTermGainsUSD: M(0, USD), LongTermGainsINR: M(0, INR),
	}

	for _, v := range c.VestingEvents(vestings) {
		if v.FinancialYear != fy {
			continue
		}
		s.VestingCount++
		s.VestedQuantity = s.VestedQuantity.Add(Q(v.Quantity))
		s.VestIncomeUSD = s.VestIncomeUSD.Add(v.IncomeUSD)
		s.VestIncomeINR = s.VestIncomeINR.Add(v.IncomeINR)
	}
	for _, sale := range c.SaleEvents(disposals, vestings) {
		if sale.FinancialYear != fy {
			continue
		}
		s.SaleCount++
		s.SoldQuantity = s.SoldQuantity.Add(sale.Quantity)
		s.ProceedsUSD = s.ProceedsUSD.Add(sale.ProceedsUSD)
		s.ProceedsINR = s.ProceedsINR.Add(sale.ProceedsINR)
		s.CostBasisUSD = s.CostBasisUSD.Add(sale.CostBasisUSD)
		s.CostBasisINR = s.CostBasisINR.Add(sale.CostBasisINR)
		s.GainsUSD = s.GainsUSD.Add(sale.GainUSD)
		s.GainsINR = s.GainsINR.Add(sale.GainINR)
		if sale.LongTerm {
			s.LongTermGainsUSD = s.LongTermGainsUSD.Add(sale.GainUSD)
			s.LongTermGainsINR = s.LongTermGainsINR.Add(sale.GainINR)
		} else {
			s.ShortTermGainsUSD = s.ShortTermGainsUSD.Add(sale.GainUSD)
			s.ShortTermGainsINR = s.ShortTermGainsINR.Add(sale.GainINR)
		}
	}

	s.NetINR = s.VestIncomeINR.Add(s.GainsINR)
	log.Printf("RSU summary for %s: income %s, gains %s, net %s", fy, s.VestIncomeINR, s.GainsINR, s.NetINR)
	return s, nil
}
