package equitywise

import (
	"fmt"
	"log"
	"sort"
)

// continuityTolerance is the accepted relative difference between one
// year's closing balance and the next year's opening balance. Small
// gaps are expected from exchange rate timing differences.
const continuityTolerance = 0.05

// Service runs Foreign Assets calculations across every calendar year
// covered by the data.
type Service struct {
	calc      *Calculator
	vestings  []VestingLot
	disposals []DisposalLot
}

// NewService builds a service over one calculator and the full event
// streams.
func NewService(calc *Calculator, vestings []VestingLot, disposals []DisposalLot) *Service {
	return &Service{calc: calc, vestings: vestings, disposals: disposals}
}

// Years returns the calendar years covered by the data, ascending,
// from the earliest to the latest vesting or sale year. It is empty
// when there are no events.
func (s *Service) Years() []int {
	minYear, maxYear := 0, 0
	observe := func(y int) {
		if minYear == 0 || y < minYear {
			minYear = y
		}
		if y > maxYear {
			maxYear = y
		}
	}
	for _, v := range s.vestings {
		observe(v.VestDate.Year())
	}
	for _, d := range s.disposals {
		observe(d.Sold.Year())
	}
	if minYear == 0 {
		return nil
	}
	years := make([]int, 0, maxYear-minYear+1)
	for y := minYear; y <= maxYear; y++ {
		years = append(years, y)
	}
	return years
}

// SummaryFor computes the FA summary for one calendar year given as a
// string, rejecting unparseable years.
func (s *Service) SummaryFor(year string) (YearSummary, error) {
	y, err := ParseYear(year)
	if err != nil {
		return YearSummary{}, err
	}
	return s.calc.BuildSummary(y, s.vestings, s.disposals), nil
}

// Summaries computes the FA summary of every covered year, ascending.
// Adjacent years are checked for balance continuity.
func (s *Service) Summaries() []YearSummary {
	years := s.Years()
	summaries := make([]YearSummary, 0, len(years))
	for _, y := range years {
		summaries = append(summaries, s.calc.BuildSummary(y, s.vestings, s.disposals))
	}
	ValidateContinuity(summaries)
	return summaries
}

// YearsRequiringDeclaration returns the covered years whose peak
// balance reaches the declaration threshold, ascending.
func (s *Service) YearsRequiringDeclaration() []int {
	var years []int
	for _, sum := range s.Summaries() {
		if sum.DeclarationRequired {
			years = append(years, sum.Year)
		}
	}
	sort.Ints(years)
	return years
}

// ValidateContinuity checks that each year's closing balance roughly
// matches the next year's opening balance. The opening date is the
// earliest relevant vesting date rather than January 1, so small
// differences from rate and price timing are tolerated. Findings are
// logged and returned, never fatal.
func ValidateContinuity(summaries []YearSummary) []string {
	var findings []string
	for i := 1; i < len(summaries); i++ {
		prev, next := summaries[i-1], summaries[i]
		if prev.Year+1 != next.Year {
			continue
		}
		closing := prev.Closing.ValueINR.InexactFloat64()
		opening := next.Opening.ValueINR.InexactFloat64()
		if opening == 0 {
			continue
		}
		diff := (closing - opening) / opening
		if diff < 0 {
			diff = -diff
		}
		if diff > continuityTolerance {
			f := fmt.Sprintf("closing balance of %d (%s) and opening balance of %d (%s) differ by %.1f%%",
				prev.Year, prev.Closing.ValueINR, next.Year, next.Opening.ValueINR, diff*100)
			log.Printf("warning: %s", f)
			findings = append(findings, f)
		}
	}
	return findings
}
