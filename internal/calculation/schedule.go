package calculation

import (
	"math"

	"github.com/emicalc/loan-calculator/internal/domain"
	"github.com/emicalc/loan-calculator/pkg/decimal"
)

// GenerateSchedule expands an EMIResult into its month-by-month amortization
// schedule. Each period charges interest on the running balance and applies
// the rest of the rounded installment to principal. The final period forces
// the balance to zero, absorbing whatever drift rounding the installment to
// cents has accumulated.
//
// The schedule is a pure function of result: calling it twice yields
// identical rows.
func GenerateSchedule(result domain.EMIResult) ([]domain.AmortizationRow, error) {
	rows, _, err := amortize(result)
	return rows, err
}

// ResidualBalance is the balance the schedule would end on without the
// final-period correction. It measures the drift GenerateSchedule discards.
func ResidualBalance(result domain.EMIResult) (float64, error) {
	_, residual, err := amortize(result)
	return residual, err
}

func amortize(result domain.EMIResult) ([]domain.AmortizationRow, float64, error) {
	terms := result.Terms()
	if err := validateTerms("principal", terms.Principal, terms.AnnualRatePercent, terms.TenureMonths); err != nil {
		return nil, 0, err
	}
	if err := requireNonNegative("monthly EMI", result.MonthlyEMI); err != nil {
		return nil, 0, err
	}

	r := monthlyRate(terms.AnnualRatePercent)
	// An installment below the first month's interest grows the balance.
	if firstInterest := terms.Principal * r; result.MonthlyEMI < firstInterest {
		return nil, 0, invalidf("installment %.2f does not cover the first month's interest %.4f; the balance would grow", result.MonthlyEMI, firstInterest)
	}
	schedule := make([]domain.AmortizationRow, 0, result.TenureMonths)
	balance := result.Principal
	var residual float64

	for month := 1; month <= result.TenureMonths; month++ {
		interestPaid := balance * r
		principalPaid := result.MonthlyEMI - interestPaid
		balance -= principalPaid

		if month == result.TenureMonths {
			residual = balance
			balance = 0
		}

		schedule = append(schedule, domain.AmortizationRow{
			Period:        month,
			Payment:       decimal.Round2(result.MonthlyEMI),
			PrincipalPaid: decimal.Round2(principalPaid),
			InterestPaid:  decimal.Round2(interestPaid),
			Balance:       math.Max(0, decimal.Round2(balance)),
		})
	}

	return schedule, residual, nil
}

// SummarizeSchedule sums the schedule columns exactly.
func SummarizeSchedule(rows []domain.AmortizationRow) domain.ScheduleTotals {
	payments := make([]float64, len(rows))
	principal := make([]float64, len(rows))
	interest := make([]float64, len(rows))
	for i, row := range rows {
		payments[i] = row.Payment
		principal[i] = row.PrincipalPaid
		interest[i] = row.InterestPaid
	}
	return domain.ScheduleTotals{
		Payment:   decimal.Sum(payments...).Decimal,
		Principal: decimal.Sum(principal...).Decimal,
		Interest:  decimal.Sum(interest...).Decimal,
	}
}
