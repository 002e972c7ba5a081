package output

import (
	"math"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatCurrency(t *testing.T) {
	cases := []struct {
		in     float64
		symbol string
		want   string
	}{
		{1234567.4, "$", "$1,234,567"},
		{1234.5, "$", "$1,235"},
		{-1234.5, "$", "$-1,235"},
		{999.49, "$", "$999"},
		{0, "$", "$0"},
		{1500, "₹", "₹1,500"},
		{64698.78, "৳", "৳64,699"},
	}
	for _, c := range cases {
		if got := FormatCurrency(decimal.NewFromFloat(c.in), c.symbol); got != c.want {
			t.Errorf("FormatCurrency(%v, %q) = %q, want %q", c.in, c.symbol, got, c.want)
		}
	}
}

func TestFormatCompactCurrency(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{999999, "$999,999"},
		{1000000, "$1.00M"},
		{1850000, "$1.85M"},
		{1234567, "$1.23M"},
		{1235000, "$1.24M"},
		{4450000000, "$4.45B"},
		{2500000000000, "$2.50T"},
		{-1850000, "$-1.85M"},
		{-999999, "$-999,999"},
		{42, "$42"},
	}
	for _, c := range cases {
		if got := FormatCompactCurrency(decimal.NewFromFloat(c.in), "$"); got != c.want {
			t.Errorf("FormatCompactCurrency(%v) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestFormatPercentage(t *testing.T) {
	assert.Equal(t, "12.35%", FormatPercentage(decimal.NewFromFloat(12.3456)))
	assert.Equal(t, "0.00%", FormatPercentage(decimal.Zero))
	assert.Equal(t, "9.50%", FormatRate(9.5))
}

func TestCurrencyFormatterLocales(t *testing.T) {
	en := NewCurrencyFormatter("$", "")
	assert.Equal(t, "$1,887.79", en.Precise(decimal.NewFromFloat(1887.79)))
	assert.Equal(t, "$-0.50", en.Precise(decimal.NewFromFloat(-0.5)))
	assert.Equal(t, "$1,888", en.Format(decimal.NewFromFloat(1887.79)))

	de := NewCurrencyFormatter("€", "de")
	assert.Equal(t, "€1.234.567", de.Format(decimal.NewFromInt(1234567)))

	bogus := NewCurrencyFormatter("$", "not a locale!!")
	assert.Equal(t, "$1,234", bogus.Format(decimal.NewFromInt(1234)))

	var zero CurrencyFormatter
	assert.Equal(t, "1,234", zero.Format(decimal.NewFromInt(1234)))
}

func TestFloatToString(t *testing.T) {
	assert.Equal(t, "1887.79", floatToString(1887.79))
	assert.Equal(t, "-0.01", floatToString(-0.01))
	assert.Equal(t, "+Inf", floatToString(math.Inf(1)))
	assert.Equal(t, "NaN", floatToString(math.NaN()))
	assert.Equal(t, "14", intToString(14))
	assert.True(t, toDecimal(math.Inf(-1)).IsZero())
}
