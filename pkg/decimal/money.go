package decimal

import (
	"math"

	"github.com/shopspring/decimal"
)

// Money represents a monetary amount with proper financial precision
type Money struct {
	decimal.Decimal
}

// NewMoney creates a new Money instance from a float64.
// NaN and infinities have no decimal representation and map to zero.
func NewMoney(value float64) Money {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return Zero()
	}
	return Money{decimal.NewFromFloat(value)}
}

// NewMoneyFromDecimal creates a new Money instance from a decimal.Decimal
func NewMoneyFromDecimal(d decimal.Decimal) Money {
	return Money{d}
}

// NewMoneyFromString creates a new Money instance from a string
func NewMoneyFromString(value string) (Money, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return Money{}, err
	}
	return Money{d}, nil
}

// Round2 rounds x to cents, half away from zero.
//
// Every rounded amount produced by the EMI engine and the amortization
// generator goes through this function so both stay bit-identical.
// The value is rounded on its shortest decimal representation, so 1.005
// becomes 1.01 rather than falling victim to binary drift.
func Round2(x float64) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return x
	}
	return decimal.NewFromFloat(x).Round(2).InexactFloat64()
}

// Round rounds the money amount to cents, half away from zero
func (m Money) Round() Money {
	return Money{m.Decimal.Round(2)}
}

// RoundWhole rounds to the nearest whole currency unit, half away from zero
func (m Money) RoundWhole() Money {
	return Money{m.Decimal.Round(0)}
}

// Add adds another Money amount
func (m Money) Add(other Money) Money {
	return Money{m.Decimal.Add(other.Decimal)}
}

// Sub subtracts another Money amount
func (m Money) Sub(other Money) Money {
	return Money{m.Decimal.Sub(other.Decimal)}
}

// Mul multiplies by a decimal factor
func (m Money) Mul(factor decimal.Decimal) Money {
	return Money{m.Decimal.Mul(factor)}
}

// Div divides by a decimal factor
func (m Money) Div(factor decimal.Decimal) Money {
	return Money{m.Decimal.Div(factor)}
}

// Share returns m as a percentage of total. A zero total yields zero.
func (m Money) Share(total Money) decimal.Decimal {
	if total.IsZero() {
		return decimal.Zero
	}
	return m.Mul(decimal.NewFromInt(100)).Div(total.Decimal).Decimal
}

// IsZero checks if the amount is zero
func (m Money) IsZero() bool {
	return m.Decimal.IsZero()
}

// IsNegative checks if the amount is negative
func (m Money) IsNegative() bool {
	return m.Decimal.IsNegative()
}

// Float64 returns the nearest float64 to the amount.
func (m Money) Float64() float64 {
	return m.Decimal.InexactFloat64()
}

// Sum adds up a column of float amounts exactly.
func Sum(values ...float64) Money {
	total := Zero()
	for _, v := range values {
		total = total.Add(NewMoney(v))
	}
	return total
}

// Zero returns a zero Money amount
func Zero() Money {
	return Money{decimal.Zero}
}

// String returns the string representation with two decimals
func (m Money) String() string {
	return m.Decimal.StringFixed(2)
}
