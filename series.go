package equitywise

import (
	"fmt"
	"log"

	"github.com/basant-kumar/EquityWise/date"
)

// Fallback-window sizes, in days, for the nearest-date search. The
// sizes differ per call site and are kept that way.
const (
	// RateLookupWindow is used for exchange rates and calendar-year
	// balance lookups.
	RateLookupWindow = 15
	// PriceLookupWindow is used for point-in-time stock price lookups.
	PriceLookupWindow = 10
	// TransactionLookupWindow is used for per-transaction RSU rate and
	// price lookups.
	TransactionLookupWindow = 7
)

// Series is a date-indexed market data series: one instance each for
// the USD/INR exchange rate and the stock close price. It is built
// once and read-only afterwards.
type Series struct {
	name string // used in fallback log messages
	hist date.History[float64]
}

// NewSeries returns an empty series. The name labels log messages,
// e.g. "exchange rate" or "stock price".
func NewSeries(name string) *Series { return &Series{name: name} }

// Append records a value for a date. Values must be strictly positive;
// a value recorded twice for the same date keeps the last one.
func (s *Series) Append(on Date, value float64) error {
	if value <= 0 {
		return fmt.Errorf("%s on %s: value %v must be positive", s.name, on, value)
	}
	s.hist.Append(on, value)
	return nil
}

// Len returns the number of dated values in the series.
func (s *Series) Len() int { return s.hist.Len() }

// Values iterates all date/value pairs in chronological order.
func (s *Series) Values() func(yield func(Date, float64) bool) { return s.hist.Values() }

// Lookup resolves a value for the target date.
//
// An exact match returns immediately. Otherwise offsets 1..window are
// scanned, the previous day checked before the next day at each
// offset, which makes the closest preceding business day the practical
// outcome for typical one-day gaps. A target outside the covered range
// clamps to the earliest or latest value, logged as a fallback rather
// than treated as an error.
//
// The second return is false when the series is empty, or when the
// target sits inside the covered range with no match in the window.
func (s *Series) Lookup(on Date, window int) (float64, bool) {
	if s.hist.Len() == 0 {
		return 0, false
	}
	if v, ok := s.hist.Get(on); ok {
		return v, true
	}
	for offset := 1; offset <= window; offset++ {
		if v, ok := s.hist.Get(on.Add(-offset)); ok {
			return v, true
		}
		if v, ok := s.hist.Get(on.Add(offset)); ok {
			return v, true
		}
	}
	earliestDay, earliest := s.hist.Earliest()
	latestDay, latest := s.hist.Latest()
	if on.Before(earliestDay) {
		log.Printf("no %s data for %s, using earliest available from %s (%v) as fallback", s.name, on, earliestDay, earliest)
		return earliest, true
	}
	if on.After(latestDay) {
		log.Printf("no %s data for %s, using latest available from %s (%v) as fallback", s.name, on, latestDay, latest)
		return latest, true
	}
	return 0, false
}
