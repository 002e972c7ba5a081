package calculation

import (
	"fmt"

	"github.com/emicalc/loan-calculator/internal/domain"
	"github.com/emicalc/loan-calculator/pkg/decimal"
)

// CompareLoans ranks loans by total interest and by installment. Ties keep
// the loan listed first.
func CompareLoans(loans []domain.LoanSummary) domain.ComparisonAnalysis {
	var analysis domain.ComparisonAnalysis
	if len(loans) == 0 {
		return analysis
	}

	cheapest, priciest, lowestEMI := loans[0], loans[0], loans[0]
	for _, loan := range loans[1:] {
		if loan.EMI.TotalInterest < cheapest.EMI.TotalInterest {
			cheapest = loan
		}
		if loan.EMI.TotalInterest > priciest.EMI.TotalInterest {
			priciest = loan
		}
		if loan.EMI.MonthlyEMI < lowestEMI.EMI.MonthlyEMI {
			lowestEMI = loan
		}
	}

	analysis.LowestTotalInterest = cheapest.Name
	analysis.LowestMonthlyEMI = lowestEMI.Name
	analysis.InterestSpread = decimal.NewMoney(priciest.EMI.TotalInterest).Sub(decimal.NewMoney(cheapest.EMI.TotalInterest)).Decimal

	for _, loan := range loans {
		if loan.EMI.AnnualRatePercent == 0 {
			analysis.Notes = append(analysis.Notes, fmt.Sprintf("%s is interest-free; every installment repays principal", loan.Name))
		}
	}
	if cheapest.Name != lowestEMI.Name {
		analysis.Notes = append(analysis.Notes, fmt.Sprintf("%s has the smallest installment but %s costs the least interest overall", lowestEMI.Name, cheapest.Name))
	}
	return analysis
}
