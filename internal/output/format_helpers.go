package output

import (
	"math"
	"strconv"

	money "github.com/emicalc/loan-calculator/pkg/decimal"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var (
	million  = decimal.NewFromInt(1_000_000)
	billion  = decimal.NewFromInt(1_000_000_000)
	trillion = decimal.NewFromInt(1_000_000_000_000)
)

// compactScales is checked top down against the absolute amount.
var compactScales = []struct {
	limit  decimal.Decimal
	suffix string
}{
	{trillion, "T"},
	{billion, "B"},
	{million, "M"},
}

// CurrencyFormatter renders amounts with a currency symbol and the digit
// grouping of Locale. The zero value formats with English grouping and no
// symbol.
type CurrencyFormatter struct {
	Symbol string
	Locale language.Tag
}

// NewCurrencyFormatter parses locale as a BCP 47 tag. An empty or malformed
// locale falls back to English grouping.
func NewCurrencyFormatter(symbol, locale string) CurrencyFormatter {
	tag := language.English
	if locale != "" {
		if t, err := language.Parse(locale); err == nil {
			tag = t
		}
	}
	return CurrencyFormatter{Symbol: symbol, Locale: tag}
}

func (cf CurrencyFormatter) printer() *message.Printer {
	if cf.Locale == language.Und {
		return message.NewPrinter(language.English)
	}
	return message.NewPrinter(cf.Locale)
}

// Format rounds to the whole currency unit, half away from zero like every
// other rounding in the module (-1234.5 shows as "$-1,235"), and groups
// thousands. The sign follows the symbol.
func (cf CurrencyFormatter) Format(amount decimal.Decimal) string {
	whole := money.NewMoneyFromDecimal(amount).RoundWhole().Decimal
	p := cf.printer()
	if whole.GreaterThanOrEqual(decimal.NewFromInt(math.MinInt64)) && whole.LessThanOrEqual(decimal.NewFromInt(math.MaxInt64)) {
		return cf.Symbol + p.Sprintf("%d", whole.IntPart())
	}
	return cf.Symbol + p.Sprintf("%.0f", whole.InexactFloat64())
}

// Precise is Format with cents kept: "$1,887.79".
func (cf CurrencyFormatter) Precise(amount decimal.Decimal) string {
	cents := money.NewMoneyFromDecimal(amount).Round()
	return cf.Symbol + cf.printer().Sprintf("%.2f", cents.Float64())
}

// Compact abbreviates millions, billions and trillions with two decimals
// ("$1.85M"). Smaller amounts go through Format.
func (cf CurrencyFormatter) Compact(amount decimal.Decimal) string {
	abs := amount.Abs()
	for _, s := range compactScales {
		if abs.GreaterThanOrEqual(s.limit) {
			return cf.Symbol + amount.Div(s.limit).StringFixed(2) + s.suffix
		}
	}
	return cf.Format(amount)
}

// FormatCurrency formats amount in whole units with English grouping.
func FormatCurrency(amount decimal.Decimal, symbol string) string {
	return CurrencyFormatter{Symbol: symbol, Locale: language.English}.Format(amount)
}

// FormatCompactCurrency is the abbreviated form of FormatCurrency.
func FormatCompactCurrency(amount decimal.Decimal, symbol string) string {
	return CurrencyFormatter{Symbol: symbol, Locale: language.English}.Compact(amount)
}

// FormatPercentage formats a decimal as a percentage with 2 decimals.
func FormatPercentage(amount decimal.Decimal) string { return amount.StringFixed(2) + "%" }

// FormatRate formats an annual percentage rate such as 9.5 as "9.50%".
func FormatRate(ratePercent float64) string {
	return FormatPercentage(decimal.NewFromFloat(ratePercent))
}

func intToString(i int) string { return strconv.Itoa(i) }

// floatToString renders f with two decimals. Non-finite values, which a TVM
// formula can overflow to, are spelled out instead of panicking in decimal.
func floatToString(f float64) string {
	if !isFinite(f) {
		return strconv.FormatFloat(f, 'f', 2, 64)
	}
	return decimal.NewFromFloat(f).StringFixed(2)
}

// toDecimal converts a float result for currency formatting; non-finite
// values become zero and should be checked with isFinite first.
func toDecimal(f float64) decimal.Decimal {
	if !isFinite(f) {
		return decimal.Zero
	}
	return decimal.NewFromFloat(f)
}

func isFinite(f float64) bool { return !math.IsNaN(f) && !math.IsInf(f, 0) }
