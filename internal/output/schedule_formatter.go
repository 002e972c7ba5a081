package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/emicalc/loan-calculator/internal/domain"
)

// ScheduleFormatter prints the full amortization table of every loan.
type ScheduleFormatter struct{}

func (s ScheduleFormatter) Name() string { return "schedule" }

func (s ScheduleFormatter) Format(results *domain.LoanComparison) ([]byte, error) {
	var buf bytes.Buffer
	cf := currencyFormatter(results)

	for i, loan := range results.Loans {
		if i > 0 {
			fmt.Fprintln(&buf)
		}
		fmt.Fprintf(&buf, "AMORTIZATION SCHEDULE: %s\n", loan.Name)
		fmt.Fprintf(&buf, "%s at %s for %s, EMI %s\n",
			cf.Precise(toDecimal(loan.EMI.Principal)),
			FormatRate(loan.EMI.AnnualRatePercent),
			loan.TenureLabel,
			cf.Precise(toDecimal(loan.EMI.MonthlyEMI)),
		)
		fmt.Fprintln(&buf, strings.Repeat("-", 78))
		fmt.Fprintf(&buf, "%6s %16s %16s %16s %18s\n", "Month", "Payment", "Principal", "Interest", "Balance")
		fmt.Fprintln(&buf, strings.Repeat("-", 78))
		for _, row := range loan.Schedule {
			fmt.Fprintf(&buf, "%6d %16s %16s %16s %18s\n",
				row.Period,
				cf.Precise(toDecimal(row.Payment)),
				cf.Precise(toDecimal(row.PrincipalPaid)),
				cf.Precise(toDecimal(row.InterestPaid)),
				cf.Precise(toDecimal(row.Balance)),
			)
		}
		fmt.Fprintln(&buf, strings.Repeat("-", 78))
		fmt.Fprintf(&buf, "%6s %16s %16s %16s\n", "Total",
			cf.Precise(loan.Totals.Payment),
			cf.Precise(loan.Totals.Principal),
			cf.Precise(loan.Totals.Interest),
		)
	}
	return buf.Bytes(), nil
}
