package calculation

import (
	"testing"

	"github.com/emicalc/loan-calculator/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestCompareLoans(t *testing.T) {
	assert.Equal(t, domain.ComparisonAnalysis{}, CompareLoans(nil))

	analysis := CompareLoans([]domain.LoanSummary{
		{Name: "Free", EMI: domain.EMIResult{MonthlyEMI: 100, TotalInterest: 0}},
		{Name: "Car", EMI: domain.EMIResult{MonthlyEMI: 1887.79, TotalInterest: 1429.06, AnnualRatePercent: 9}},
	})
	assert.Equal(t, "Free", analysis.LowestTotalInterest)
	assert.Equal(t, "Free", analysis.LowestMonthlyEMI)
	assert.Equal(t, "1429.06", analysis.InterestSpread.StringFixed(2))
	assert.Equal(t, []string{"Free is interest-free; every installment repays principal"}, analysis.Notes)
}
