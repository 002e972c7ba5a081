package output

import (
	"github.com/emicalc/loan-calculator/internal/calculation"
	"github.com/emicalc/loan-calculator/internal/domain"
	"github.com/shopspring/decimal"
)

// Recommendation encapsulates the cheapest loan of a comparison.
type Recommendation struct {
	LoanName        string
	MonthlyEMI      decimal.Decimal
	TotalInterest   decimal.Decimal
	InterestSaved   decimal.Decimal // against the most expensive loan
	SavedPercentage decimal.Decimal
}

// AnalyzeLoans turns the comparison's ranking into a recommendation: the
// loan with the lowest total interest and what it saves against the most
// expensive one. Comparisons built without an analysis are ranked here.
func AnalyzeLoans(results *domain.LoanComparison) Recommendation {
	if len(results.Loans) == 0 {
		return Recommendation{}
	}
	analysis := results.Analysis
	if analysis.LowestTotalInterest == "" {
		analysis = calculation.CompareLoans(results.Loans)
	}

	var best *domain.LoanSummary
	for i := range results.Loans {
		if results.Loans[i].Name == analysis.LowestTotalInterest {
			best = &results.Loans[i]
			break
		}
	}
	if best == nil {
		return Recommendation{}
	}

	bestInterest := decimal.NewFromFloat(best.EMI.TotalInterest)
	worstInterest := bestInterest.Add(analysis.InterestSpread)
	pct := decimal.Zero
	if !worstInterest.IsZero() {
		pct = analysis.InterestSpread.Div(worstInterest).Mul(decimal.NewFromInt(100))
	}
	return Recommendation{
		LoanName:        best.Name,
		MonthlyEMI:      decimal.NewFromFloat(best.EMI.MonthlyEMI),
		TotalInterest:   bestInterest,
		InterestSaved:   analysis.InterestSpread,
		SavedPercentage: pct,
	}
}
