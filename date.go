package equitywise

import (
	"time"

	"github.com/basant-kumar/EquityWise/date"
)

// Date is the day-granularity date used across the engine.
type Date = date.Date

// NewDate returns a normalized Date for the given year, month, and day.
func NewDate(year int, month time.Month, day int) Date { return date.New(year, month, day) }

// Today returns the current date.
func Today() Date { return date.Today() }

// ParseDate parses an ISO-8601 date string.
func ParseDate(str string) (Date, error) { return date.Parse(str) }
