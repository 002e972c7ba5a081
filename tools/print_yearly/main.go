package main

import (
	"context"
	"fmt"

	"github.com/emicalc/loan-calculator/internal/calculation"
	"github.com/emicalc/loan-calculator/internal/domain"
	"github.com/shopspring/decimal"
)

func main() {
	ce := calculation.NewCalculationEngine()

	loans := []domain.LoanScenario{
		{Name: "mortgage", Type: domain.LoanTypeHome, Principal: 100000, AnnualRatePercent: 5, Tenure: 30, TenureUnit: "years"},
		{Name: "car", Type: domain.LoanTypeCar, Principal: 25000, AnnualRatePercent: 9, Tenure: 14},
		{Name: "interest-free", Type: domain.LoanTypePersonal, Principal: 1200, Tenure: 1, TenureUnit: "years"},
	}

	for _, scenario := range loans {
		summary, err := ce.RunLoan(context.Background(), scenario)
		if err != nil {
			fmt.Printf("%s: %v\n", scenario.Name, err)
			continue
		}
		fmt.Printf("%s (%s, EMI %.2f):\n", scenario.Name, summary.TenureLabel, summary.EMI.MonthlyEMI)

		year := 1
		principal, interest := decimal.Zero, decimal.Zero
		for _, row := range summary.Schedule {
			principal = principal.Add(decimal.NewFromFloat(row.PrincipalPaid))
			interest = interest.Add(decimal.NewFromFloat(row.InterestPaid))
			if row.Period%12 == 0 || row.Period == len(summary.Schedule) {
				fmt.Printf("  year %2d: principal=%s interest=%s balance=%.2f\n", year, principal.StringFixed(2), interest.StringFixed(2), row.Balance)
				year++
				principal, interest = decimal.Zero, decimal.Zero
			}
		}
	}
}
