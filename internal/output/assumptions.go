package output

import (
	"fmt"

	"github.com/emicalc/loan-calculator/internal/domain"
)

// DefaultAssumptions lists the calculation conventions rendered in detailed outputs.
var DefaultAssumptions = []string{
	"Interest accrues monthly at the annual rate divided by 12",
	"Installments are rounded to cents; the final period absorbs the rounding drift",
	"Displayed amounts are rounded to whole currency units unless shown with cents",
	"TVM rates are fractions per period (0.05 = 5%)",
}

// GenerateAssumptions adds the currency note for results to DefaultAssumptions.
func GenerateAssumptions(results *domain.LoanComparison) []string {
	currency := results.Currency
	if currency.Code == "" {
		currency = domain.DefaultCurrency()
	}
	out := append([]string(nil), DefaultAssumptions...)
	return append(out, fmt.Sprintf("Amounts shown in %s (%s); no exchange conversion is applied", currency.Name, currency.Symbol))
}

// currencyFormatter builds the formatter for a comparison's currency and locale.
func currencyFormatter(results *domain.LoanComparison) CurrencyFormatter {
	symbol := results.Currency.Symbol
	if results.Currency.Code == "" {
		symbol = domain.DefaultCurrency().Symbol
	}
	return NewCurrencyFormatter(symbol, results.Locale)
}
