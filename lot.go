package equitywise

import (
	"fmt"
	"sort"
)

// VestingLot is a single vesting event: one batch of shares becoming
// owned on one date under one grant. A grant usually vests in several
// lots over time, so multiple lots share a grant identifier.
//
// TotalINR is the taxable income figure from the vesting statement. It
// is authoritative: it keeps the source document's rounding and is
// never recomputed from Quantity, FMVUSD, and ForexRate.
type VestingLot struct {
	Grant     string   `json:"grant"`
	VestDate  Date     `json:"vested"`
	Quantity  int      `json:"quantity"`
	FMVUSD    Money    `json:"fmv_usd"`    // fair market value per share
	ForexRate Quantity `json:"forex_rate"` // USD to INR at vesting
	TotalINR  Money    `json:"total_inr"`
}

// NewVestingLot validates and builds a VestingLot. Records are
// validated once here at the boundary; the engine assumes lots are
// well formed afterwards.
func NewVestingLot(grant string, vested Date, quantity int, fmvUSD, forexRate, totalINR float64) (VestingLot, error) {
	if grant == "" {
		return VestingLot{}, fmt.Errorf("vesting lot on %s: empty grant identifier", vested)
	}
	if quantity <= 0 {
		return VestingLot{}, fmt.Errorf("vesting lot %s on %s: quantity %d must be positive", grant, vested, quantity)
	}
	if fmvUSD <= 0 {
		return VestingLot{}, fmt.Errorf("vesting lot %s on %s: FMV %v must be positive", grant, vested, fmvUSD)
	}
	if forexRate <= 0 {
		return VestingLot{}, fmt.Errorf("vesting lot %s on %s: forex rate %v must be positive", grant, vested, forexRate)
	}
	return VestingLot{
		Grant:     grant,
		VestDate:  vested,
		Quantity:  quantity,
		FMVUSD:    M(fmvUSD, USD),
		ForexRate: Q(forexRate),
		TotalINR:  M(totalINR, INR),
	}, nil
}

// InitialValueINR is the value of the full lot at vesting, recomputed
// from its own FMV and rate (display figure, distinct from the
// authoritative TotalINR).
func (v VestingLot) InitialValueINR() Money {
	return v.FMVUSD.Mul(Q(v.Quantity)).Convert(v.ForexRate, INR)
}

// DisposalLot is a single sale transaction from a brokerage gain/loss
// statement, reducing a grant's held quantity.
//
// CostBasisUSD and GainLossUSD are the broker-reported figures. When
// present they are authoritative over anything recomputed from lots.
type DisposalLot struct {
	Grant            string   `json:"grant"`
	Acquired         Date     `json:"acquired"` // matches a VestingLot's date for that grant
	Sold             Date     `json:"sold"`
	Quantity         Quantity `json:"quantity"`
	ProceedsPerShare Money    `json:"proceeds_per_share"` // USD
	TotalProceeds    Money    `json:"total_proceeds"`     // USD
	CostBasisUSD     Money    `json:"cost_basis_usd"`
	GainLossUSD      Money    `json:"gain_loss_usd"`
	OrderRef         string   `json:"order_ref,omitempty"`
}

// NewDisposalLot validates and builds a DisposalLot. Brokerage exports
// carry fractional quantities, so quantity is a float; it must not be
// negative, and the sale date must not precede the acquisition date.
func NewDisposalLot(grant string, acquired, sold Date, quantity, proceedsPerShare, totalProceeds, costBasisUSD, gainLossUSD float64, orderRef string) (DisposalLot, error) {
	if grant == "" {
		return DisposalLot{}, fmt.Errorf("disposal lot sold %s: empty grant identifier", sold)
	}
	if quantity < 0 {
		return DisposalLot{}, fmt.Errorf("disposal lot %s sold %s: quantity %v must not be negative", grant, sold, quantity)
	}
	if sold.Before(acquired) {
		return DisposalLot{}, fmt.Errorf("disposal lot %s: sold %s before acquired %s", grant, sold, acquired)
	}
	return DisposalLot{
		Grant:            grant,
		Acquired:         acquired,
		Sold:             sold,
		Quantity:         Q(quantity),
		ProceedsPerShare: M(proceedsPerShare, USD),
		TotalProceeds:    M(totalProceeds, USD),
		CostBasisUSD:     M(costBasisUSD, USD),
		GainLossUSD:      M(gainLossUSD, USD),
		OrderRef:         orderRef,
	}, nil
}

// lot represents shares from a single vesting still held, used for
// cost basis calculations.
type lot struct {
	Date     Date
	Quantity Quantity
	Cost     Money // total cost of the lot (quantity * FMV)
}

type lots []lot

// sell reduces the available lots by a given quantity using the FIFO
// method: the earliest lots are consumed first.
func (l lots) sell(quantityToSell Quantity) lots {
	var remaining lots
	for _, currentLot := range l {
		if quantityToSell.IsZero() {
			remaining = append(remaining, currentLot)
			continue
		}
		if currentLot.Quantity.GreaterThan(quantityToSell) {
			// Partial sale from this lot.
			costOfSoldPortion := currentLot.Cost.Mul(quantityToSell).Div(currentLot.Quantity)
			remaining = append(remaining, lot{
				Date:     currentLot.Date,
				Quantity: currentLot.Quantity.Sub(quantityToSell),
				Cost:     currentLot.Cost.Sub(costOfSoldPortion),
			})
			quantityToSell = Quantity{}
		} else {
			// Full sale of this lot.
			quantityToSell = quantityToSell.Sub(currentLot.Quantity)
		}
	}
	return remaining
}

// quantity sums the shares remaining across lots.
func (l lots) quantity() Quantity {
	var total Quantity
	for _, lt := range l {
		total = total.Add(lt.Quantity)
	}
	return total
}

// cost sums the cost basis remaining across lots.
func (l lots) cost() Money {
	var total Money
	for _, lt := range l {
		total = total.Add(lt.Cost)
	}
	return total
}

// latest returns the most recent lot date, or the zero date.
func (l lots) latest() Date {
	var last Date
	for _, lt := range l {
		if lt.Date.After(last) {
			last = lt.Date
		}
	}
	return last
}

// grantLots builds the FIFO lot list for one grant from its vesting
// lots with vesting date on or before asOf, ascending by date.
func grantLots(grant string, vestings []VestingLot, asOf Date) lots {
	var l lots
	for _, v := range vestings {
		if v.Grant != grant || v.VestDate.After(asOf) {
			continue
		}
		q := Q(v.Quantity)
		l = append(l, lot{Date: v.VestDate, Quantity: q, Cost: v.FMVUSD.Mul(q)})
	}
	sort.Slice(l, func(i, j int) bool { return l[i].Date.Before(l[j].Date) })
	return l
}

// grantsOf returns the distinct grant identifiers present in the
// vesting lots, in first-seen order.
func grantsOf(vestings []VestingLot) []string {
	seen := make(map[string]bool)
	var grants []string
	for _, v := range vestings {
		if !seen[v.Grant] {
			seen[v.Grant] = true
			grants = append(grants, v.Grant)
		}
	}
	return grants
}
