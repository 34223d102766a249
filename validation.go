package equitywise

import "fmt"

// Issue is a single data quality finding. Issues never stop a
// calculation; they explain why its figures may be off.
type Issue struct {
	Severity string // "error" or "warning"
	Message  string
}

func (i Issue) String() string { return i.Severity + ": " + i.Message }

// ValidateData inspects the event streams and market data for the
// inconsistencies the engine would otherwise absorb silently: sales
// against unknown grants or vest dates, overselling, and missing or
// thin market data series.
func ValidateData(vestings []VestingLot, disposals []DisposalLot, rates, prices *Series) []Issue {
	var issues []Issue
	warn := func(format string, args ...any) {
		issues = append(issues, Issue{Severity: "warning", Message: fmt.Sprintf(format, args...)})
	}
	fail := func(format string, args ...any) {
		issues = append(issues, Issue{Severity: "error", Message: fmt.Sprintf(format, args...)})
	}

	if rates == nil || rates.Len() == 0 {
		fail("exchange rate series is empty, every valuation will be reported as missing market data")
	}
	if prices == nil || prices.Len() == 0 {
		fail("stock price series is empty, every valuation will be reported as missing market data")
	}

	// Index vests by grant and by grant+date for matching checks.
	vestedByGrant := make(map[string]Quantity)
	vestedByVest := make(map[string]Quantity)
	for _, v := range vestings {
		q := Q(v.Quantity)
		vestedByGrant[v.Grant] = vestedByGrant[v.Grant].Add(q)
		key := v.Grant + "_" + v.VestDate.String()
		vestedByVest[key] = vestedByVest[key].Add(q)
	}

	soldByGrant := make(map[string]Quantity)
	soldByVest := make(map[string]Quantity)
	for _, d := range disposals {
		if _, ok := vestedByGrant[d.Grant]; !ok {
			warn("disposal sold %s references grant %s with no vesting lot", d.Sold, d.Grant)
			continue
		}
		key := d.Grant + "_" + d.Acquired.String()
		if _, ok := vestedByVest[key]; !ok {
			warn("disposal of %s sold %s acquired %s does not match any vesting date of that grant", d.Grant, d.Sold, d.Acquired)
		}
		soldByGrant[d.Grant] = soldByGrant[d.Grant].Add(d.Quantity)
		soldByVest[key] = soldByVest[key].Add(d.Quantity)
	}

	for grant, sold := range soldByGrant {
		if sold.GreaterThan(vestedByGrant[grant]) {
			warn("grant %s sold %s shares but only %s vested", grant, sold, vestedByGrant[grant])
		}
	}
	for key, sold := range soldByVest {
		if vested, ok := vestedByVest[key]; ok && sold.GreaterThan(vested) {
			warn("vest %s sold %s shares but only %s vested", key, sold, vested)
		}
	}
	return issues
}
