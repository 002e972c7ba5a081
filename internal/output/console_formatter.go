package output

import (
	"bytes"
	"fmt"
	"sort"

	"github.com/emicalc/loan-calculator/internal/domain"
)

// ConsoleFormatter provides a concise console style summary via the formatter interface.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console-lite" }

func (c ConsoleFormatter) Format(results *domain.LoanComparison) ([]byte, error) {
	var buf bytes.Buffer
	cf := currencyFormatter(results)

	fmt.Fprintln(&buf, "LOAN COMPARISON SUMMARY")
	fmt.Fprintln(&buf, "================================")
	loans := append([]domain.LoanSummary(nil), results.Loans...)
	sort.SliceStable(loans, func(i, j int) bool { return loans[i].Name < loans[j].Name })
	for _, loan := range loans {
		fmt.Fprintf(&buf, "%s: EMI=%s Interest=%s Total=%s Tenure=%s\n",
			loan.Name,
			cf.Compact(toDecimal(loan.EMI.MonthlyEMI)),
			cf.Compact(toDecimal(loan.EMI.TotalInterest)),
			cf.Compact(toDecimal(loan.EMI.TotalPayment)),
			loan.TenureLabel,
		)
	}
	for _, res := range results.TVM {
		fmt.Fprintf(&buf, "%s: %s\n", tvmLabel(res.Request), tvmAmount(cf, res.Value))
	}
	rec := AnalyzeLoans(results)
	if rec.LoanName != "" {
		fmt.Fprintln(&buf)
		fmt.Fprintf(&buf, "Recommended: %s (saves %s / %s)\n", rec.LoanName, cf.Compact(rec.InterestSaved), FormatPercentage(rec.SavedPercentage))
	}
	return buf.Bytes(), nil
}

// tvmLabel names a TVM request by its Name, falling back to its kind.
func tvmLabel(req domain.TVMRequest) string {
	if req.Name != "" {
		return req.Name
	}
	return string(req.Kind)
}

// tvmAmount formats a TVM value with cents; overflowed values are printed raw.
func tvmAmount(cf CurrencyFormatter, v float64) string {
	if !isFinite(v) {
		return floatToString(v)
	}
	return cf.Precise(toDecimal(v))
}
