package equitywise

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrMissingMarketData reports that no exchange rate or stock price
// could be resolved for a date, even after the fallback-window search
// and range clamping. It only occurs when a series is empty.
var ErrMissingMarketData = errors.New("missing market data")

// ErrInvalidYear reports a calendar or financial year string that
// cannot be parsed.
var ErrInvalidYear = errors.New("invalid year")

// ParseYear parses a calendar year like "2024".
func ParseYear(s string) (int, error) {
	y, err := strconv.Atoi(s)
	if err != nil || y < 1900 || y > 2200 {
		return 0, fmt.Errorf("%w: %q is not a calendar year", ErrInvalidYear, s)
	}
	return y, nil
}
