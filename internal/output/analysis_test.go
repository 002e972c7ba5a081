package output

import (
	"testing"

	"github.com/emicalc/loan-calculator/internal/calculation"
	"github.com/emicalc/loan-calculator/internal/domain"
	"github.com/shopspring/decimal"
)

func loanWith(name string, emi, interest float64) domain.LoanSummary {
	return domain.LoanSummary{Name: name, EMI: domain.EMIResult{MonthlyEMI: emi, TotalInterest: interest}}
}

func TestAnalyzeLoans_SelectsLowestTotalInterest(t *testing.T) {
	comparison := &domain.LoanComparison{
		Loans: []domain.LoanSummary{
			loanWith("Long", 518.96, 6137.6),
			loanWith("Short", 1887.79, 1429.06),
			loanWith("Short again", 1887.79, 1429.06),
		},
	}

	rec := AnalyzeLoans(comparison)
	if rec.LoanName != "Short" {
		t.Fatalf("recommended %q, want Short", rec.LoanName)
	}
	if !rec.InterestSaved.Equal(decimal.RequireFromString("4708.54")) {
		t.Fatalf("interest saved = %s", rec.InterestSaved)
	}
	if got := rec.SavedPercentage.StringFixed(2); got != "76.72" {
		t.Fatalf("saved percentage = %s", got)
	}
	if !rec.MonthlyEMI.Equal(decimal.RequireFromString("1887.79")) {
		t.Fatalf("monthly EMI = %s", rec.MonthlyEMI)
	}
}

func TestAnalyzeLoans_EdgeCases(t *testing.T) {
	if rec := AnalyzeLoans(&domain.LoanComparison{}); rec.LoanName != "" {
		t.Fatalf("empty comparison should not recommend anything")
	}

	rec := AnalyzeLoans(&domain.LoanComparison{Loans: []domain.LoanSummary{loanWith("Free", 100, 0), loanWith("Also free", 50, 0)}})
	if rec.LoanName != "Free" {
		t.Fatalf("tie should keep the first loan, got %q", rec.LoanName)
	}
	if !rec.SavedPercentage.IsZero() {
		t.Fatalf("nothing to save between interest-free loans")
	}
}

func TestAnalyzeLoans_UsesComparisonAnalysis(t *testing.T) {
	comparison := &domain.LoanComparison{
		Loans: []domain.LoanSummary{
			loanWith("Long", 518.96, 6137.6),
			loanWith("Short", 1887.79, 1429.06),
		},
	}
	comparison.Analysis = calculation.CompareLoans(comparison.Loans)

	rec := AnalyzeLoans(comparison)
	if rec.LoanName != comparison.Analysis.LowestTotalInterest {
		t.Fatalf("recommended %q, analysis ranked %q first", rec.LoanName, comparison.Analysis.LowestTotalInterest)
	}
	if !rec.InterestSaved.Equal(comparison.Analysis.InterestSpread) {
		t.Fatalf("interest saved = %s, spread = %s", rec.InterestSaved, comparison.Analysis.InterestSpread)
	}
	if got := rec.SavedPercentage.StringFixed(2); got != "76.72" {
		t.Fatalf("saved percentage = %s", got)
	}

	comparison.Analysis.LowestTotalInterest = "Renamed"
	if rec := AnalyzeLoans(comparison); rec.LoanName != "" {
		t.Fatalf("analysis naming a missing loan should not recommend anything, got %q", rec.LoanName)
	}
}
