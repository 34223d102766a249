package equitywise

import "log"

// Holding is the derived quantity and valuation of the shares one
// grant still holds as of one date. It is computed fresh on every
// query and never persisted.
type Holding struct {
	Grant           string
	AsOf            Date
	Quantity        Quantity
	CostPerShareUSD Money
	CostBasisUSD    Money
	CostBasisINR    Money
	PriceUSD        Money    // resolved stock price at AsOf
	Rate            Quantity // resolved USD/INR rate at AsOf
	MarketValueUSD  Money
	MarketValueINR  Money
	LatestVest      Date // most recent vesting still contributing shares
}

// remainingLots reconstructs the FIFO state of one grant as of a date:
// vesting lots on or before asOf, reduced by the total quantity sold
// on or before asOf. Sales consume the earliest lots first, so the
// surviving lots carry the cost basis of the shares actually held.
//
// Disposals are matched to the grant by identifier only, not by
// acquisition date. Inconsistencies (sales against a grant that never
// vested, or selling more than vested) are logged and absorbed, the
// holding never goes negative.
func remainingLots(grant string, vestings []VestingLot, disposals []DisposalLot, asOf Date) lots {
	held := grantLots(grant, vestings, asOf)

	var sold Quantity
	for _, d := range disposals {
		if d.Grant != grant || d.Sold.After(asOf) {
			continue
		}
		sold = sold.Add(d.Quantity)
	}
	if sold.IsZero() {
		return held
	}
	if held == nil {
		log.Printf("warning: grant %s has sales but no vesting lot on or before %s", grant, asOf)
		return nil
	}
	if vested := held.quantity(); sold.GreaterThan(vested) {
		log.Printf("warning: grant %s sold %s but only %s vested as of %s", grant, sold, vested, asOf)
	}
	return held.sell(sold)
}

// ResolveHolding computes one grant's holding as of a date.
//
// The second return is false when the grant holds nothing at that
// date; such grants are omitted from results rather than reported as
// zero-value entries. The error reports missing market data for the
// valuation.
func (c *Calculator) ResolveHolding(grant string, vestings []VestingLot, disposals []DisposalLot, asOf Date) (Holding, bool, error) {
	held := remainingLots(grant, vestings, disposals, asOf)
	quantity := held.quantity()
	if !quantity.IsPositive() {
		return Holding{}, false, nil
	}

	rate, err := c.RateOn(asOf, RateLookupWindow)
	if err != nil {
		return Holding{}, false, err
	}
	price, err := c.PriceOn(asOf, PriceLookupWindow)
	if err != nil {
		return Holding{}, false, err
	}

	costUSD := held.cost()
	valueUSD := price.Mul(quantity)
	return Holding{
		Grant:           grant,
		AsOf:            asOf,
		Quantity:        quantity,
		CostPerShareUSD: costUSD.Div(quantity),
		CostBasisUSD:    costUSD,
		CostBasisINR:    costUSD.Convert(rate, INR),
		PriceUSD:        price,
		Rate:            rate,
		MarketValueUSD:  valueUSD,
		MarketValueINR:  valueUSD.Convert(rate, INR),
		LatestVest:      held.latest(),
	}, true, nil
}

// Holdings computes the holdings of every grant present in the vesting
// lots as of a date. Grants holding nothing are omitted.
func (c *Calculator) Holdings(vestings []VestingLot, disposals []DisposalLot, asOf Date) ([]Holding, error) {
	var holdings []Holding
	for _, grant := range grantsOf(vestings) {
		h, ok, err := c.ResolveHolding(grant, vestings, disposals, asOf)
		if err != nil {
			return nil, err
		}
		if ok {
			holdings = append(holdings, h)
		}
	}
	return holdings, nil
}
