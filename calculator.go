package equitywise

import "fmt"

// Calculator is the valuation engine. It holds the two read-only
// market data series, built once at construction; every computation is
// a pure function of those series and the caller's lots.
type Calculator struct {
	rates  *Series // USD to INR
	prices *Series // stock close, USD
}

// NewCalculator builds a calculator over the given exchange-rate and
// stock-price series.
func NewCalculator(rates, prices *Series) *Calculator {
	if rates == nil {
		rates = NewSeries("exchange rate")
	}
	if prices == nil {
		prices = NewSeries("stock price")
	}
	return &Calculator{rates: rates, prices: prices}
}

// RateOn resolves the USD/INR exchange rate for a date within the
// given fallback window.
func (c *Calculator) RateOn(on Date, window int) (Quantity, error) {
	v, ok := c.rates.Lookup(on, window)
	if !ok {
		return Quantity{}, fmt.Errorf("exchange rate for %s: %w", on, ErrMissingMarketData)
	}
	return Q(v), nil
}

// PriceOn resolves the stock close price for a date within the given
// fallback window.
func (c *Calculator) PriceOn(on Date, window int) (Money, error) {
	v, ok := c.prices.Lookup(on, window)
	if !ok {
		return Money{}, fmt.Errorf("stock price for %s: %w", on, ErrMissingMarketData)
	}
	return M(v, USD), nil
}
