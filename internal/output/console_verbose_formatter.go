package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/emicalc/loan-calculator/internal/domain"
)

// ConsoleVerboseFormatter renders the detailed console report.
type ConsoleVerboseFormatter struct{}

func (c ConsoleVerboseFormatter) Name() string { return "console" }

func (c ConsoleVerboseFormatter) Format(results *domain.LoanComparison) ([]byte, error) {
	var buf bytes.Buffer
	cf := currencyFormatter(results)

	fmt.Fprintln(&buf, "=================================================================================")
	fmt.Fprintln(&buf, "DETAILED LOAN REPAYMENT ANALYSIS")
	fmt.Fprintln(&buf, "=================================================================================")
	fmt.Fprintln(&buf)
	fmt.Fprintln(&buf, "KEY ASSUMPTIONS:")
	for _, a := range GenerateAssumptions(results) {
		fmt.Fprintf(&buf, "• %s\n", a)
	}
	fmt.Fprintln(&buf)

	for i, loan := range results.Loans {
		writeLoanDetail(&buf, cf, i+1, loan)
	}

	if len(results.TVM) > 0 {
		fmt.Fprintln(&buf, "TIME VALUE OF MONEY")
		fmt.Fprintln(&buf, strings.Repeat("=", 50))
		for _, res := range results.TVM {
			writeTVMDetail(&buf, cf, res)
		}
		fmt.Fprintln(&buf)
	}

	writeComparison(&buf, cf, results)
	return buf.Bytes(), nil
}

func writeLoanDetail(buf *bytes.Buffer, cf CurrencyFormatter, n int, loan domain.LoanSummary) {
	title := loan.Name
	if loan.Type != "" {
		title = fmt.Sprintf("%s (%s loan)", loan.Name, loan.Type)
	}
	fmt.Fprintf(buf, "LOAN %d: %s\n", n, title)
	fmt.Fprintln(buf, strings.Repeat("=", 50))
	fmt.Fprintf(buf, "  Loan Amount:        %s\n", cf.Precise(toDecimal(loan.EMI.Principal)))
	fmt.Fprintf(buf, "  Interest Rate:      %s per year\n", FormatRate(loan.EMI.AnnualRatePercent))
	fmt.Fprintf(buf, "  Tenure:             %s (%d months)\n", loan.TenureLabel, loan.EMI.TenureMonths)
	fmt.Fprintln(buf, "----------------------------------------")
	fmt.Fprintf(buf, "  Monthly EMI:        %s\n", cf.Precise(toDecimal(loan.EMI.MonthlyEMI)))
	fmt.Fprintf(buf, "  Total Interest:     %s\n", cf.Precise(toDecimal(loan.EMI.TotalInterest)))
	fmt.Fprintf(buf, "  Total Payment:      %s\n", cf.Precise(toDecimal(loan.EMI.TotalPayment)))
	fmt.Fprintf(buf, "  Principal Share:    %s\n", FormatPercentage(loan.PrincipalShare))
	fmt.Fprintf(buf, "  Interest Share:     %s\n", FormatPercentage(loan.InterestShare))
	fmt.Fprintln(buf)
	fmt.Fprintln(buf, "SCHEDULE TOTALS:")
	fmt.Fprintf(buf, "  Principal Repaid:   %s\n", cf.Precise(loan.Totals.Principal))
	fmt.Fprintf(buf, "  Interest Paid:      %s\n", cf.Precise(loan.Totals.Interest))
	fmt.Fprintf(buf, "  Payments Made:      %s\n", cf.Precise(loan.Totals.Payment))
	fmt.Fprintln(buf)
}

func writeTVMDetail(buf *bytes.Buffer, cf CurrencyFormatter, res domain.TVMResult) {
	req := res.Request
	switch req.Kind {
	case domain.TVMPerpetuity:
		fmt.Fprintf(buf, "%s: %s of %s at %s\n", tvmLabel(req), req.Kind, cf.Precise(toDecimal(req.Amount)), FormatRate(req.Rate*100))
	case domain.TVMCompoundGrowth:
		fmt.Fprintf(buf, "%s: %s of %s at %s for %s years, %d compoundings a year\n",
			tvmLabel(req), req.Kind, cf.Precise(toDecimal(req.Amount)), FormatRate(req.Rate*100), floatToString(req.Years), req.CompoundingsPerYear)
	default:
		fmt.Fprintf(buf, "%s: %s of %s at %s over %s periods\n",
			tvmLabel(req), req.Kind, cf.Precise(toDecimal(req.Amount)), FormatRate(req.Rate*100), floatToString(req.Periods))
	}
	fmt.Fprintf(buf, "  Value:              %s\n", tvmAmount(cf, res.Value))
	if req.Kind == domain.TVMCompoundGrowth {
		fmt.Fprintf(buf, "  Interest Earned:    %s\n", tvmAmount(cf, res.InterestEarned))
	}
}

func writeComparison(buf *bytes.Buffer, cf CurrencyFormatter, results *domain.LoanComparison) {
	if len(results.Loans) < 2 {
		return
	}
	fmt.Fprintln(buf, "LOAN COMPARISON")
	fmt.Fprintln(buf, strings.Repeat("=", 50))
	fmt.Fprintf(buf, "%-24s %14s %16s %16s\n", "Loan", "Monthly EMI", "Total Interest", "Total Payment")
	for _, loan := range results.Loans {
		fmt.Fprintf(buf, "%-24s %14s %16s %16s\n",
			truncateName(loan.Name, 24),
			cf.Format(toDecimal(loan.EMI.MonthlyEMI)),
			cf.Format(toDecimal(loan.EMI.TotalInterest)),
			cf.Format(toDecimal(loan.EMI.TotalPayment)),
		)
	}
	fmt.Fprintln(buf)
	fmt.Fprintf(buf, "Lowest total interest: %s\n", results.Analysis.LowestTotalInterest)
	fmt.Fprintf(buf, "Lowest monthly EMI:    %s\n", results.Analysis.LowestMonthlyEMI)
	fmt.Fprintf(buf, "Interest spread:       %s\n", cf.Precise(results.Analysis.InterestSpread))
	for _, note := range results.Analysis.Notes {
		fmt.Fprintf(buf, "• %s\n", note)
	}
	rec := AnalyzeLoans(results)
	fmt.Fprintln(buf)
	fmt.Fprintf(buf, "RECOMMENDATION: %s saves %s (%s) in interest\n", rec.LoanName, cf.Precise(rec.InterestSaved), FormatPercentage(rec.SavedPercentage))
}

func truncateName(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
