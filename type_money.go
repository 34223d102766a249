package equitywise

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Money represents a monetary value in a single currency.
//
// Arithmetic is exact (decimal based); rounding happens only at
// display and report boundaries.
type Money struct {
	value decimal.Decimal // as major unit value
	cur   string
}

// USD and INR are the only currencies the engine deals with.
const (
	USD = "USD"
	INR = "INR"
)

func M[T float32 | float64 | int | int32 | int64 | decimal.Decimal](value T, currency string) Money {
	return Money{value: newDecimal(value), cur: currency}
}

// currency returns the money's currency descriptor.
func (m Money) currency() money.Currency {
	// to get a never nil currency we have to call the Money constructor
	return *money.New(0, m.cur).Currency()
}

// String returns the localized string representation of the money value.
func (m Money) String() string {
	cur := m.currency()
	dec := m.value.Shift(int32(cur.Fraction))
	return cur.Formatter().Format(dec.IntPart())
}

func (m Money) Currency() string                { return m.cur }
func (m Money) Equal(n Money) bool              { return m.value.Equal(n.value) && m.cur == n.cur }
func (m Money) IsZero() bool                    { return m.value.IsZero() }
func (m Money) IsPositive() bool                { return m.value.IsPositive() }
func (m Money) IsNegative() bool                { return m.value.IsNegative() }
func (m Money) LessThan(n Money) bool           { return m.value.LessThan(n.value) }
func (m Money) GreaterThan(n Money) bool        { return m.value.GreaterThan(n.value) }
func (m Money) GreaterThanOrEqual(n Money) bool { return m.value.GreaterThanOrEqual(n.value) }
func (m Money) Neg() Money                      { return Money{value: m.value.Neg(), cur: m.cur} }
func (m Money) Mul(n Quantity) Money            { return Money{value: m.value.Mul(n.value), cur: m.cur} }

// Div divides the amount by a quantity. Division by zero panics, callers
// guard on the quantity first.
func (m Money) Div(n Quantity) Money { return Money{value: m.value.Div(n.value), cur: m.cur} }

// Convert converts the amount to another currency at the given rate
// (units of 'to' per unit of m's currency).
func (m Money) Convert(rate Quantity, to string) Money {
	return Money{value: m.value.Mul(rate.value), cur: to}
}

// binary operators.
func (m Money) Add(n Money) Money { return Money{value: m.value.Add(n.value), cur: cur(m, n)} }
func (m Money) Sub(n Money) Money { return Money{value: m.value.Sub(n.value), cur: cur(m, n)} }

// makes the "" currency totally weak.
func cur(A, B Money) string {
	if A.cur == "" {
		return B.cur
	}
	if B.cur == "" {
		return A.cur
	}
	if A.cur != B.cur {
		panic("currency mismatch " + A.cur + "!=" + B.cur)
	}
	return A.cur
}

// InexactFloat64 returns the amount as a float64 for report writers.
// Calculations stay on the exact decimal value.
func (m Money) InexactFloat64() float64 { return m.value.InexactFloat64() }

// StringFixed returns the amount rounded to the currency's fraction,
// without the currency symbol.
func (m Money) StringFixed() string {
	return m.value.StringFixed(int32(m.currency().Fraction))
}

func (m Money) MarshalJSON() ([]byte, error) {
	rounded := m.value.Round(int32(m.currency().Fraction))
	return rounded.MarshalJSON()
}
