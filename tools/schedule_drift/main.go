package main

import (
	"fmt"
	"os"

	calc "github.com/emicalc/loan-calculator/internal/calculation"
	"github.com/emicalc/loan-calculator/internal/config"
	"github.com/shopspring/decimal"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("usage: schedule_drift <config-file>")
		return
	}
	p := config.NewInputParser()
	cfg, err := p.LoadFromFile(os.Args[1])
	if err != nil {
		panic(err)
	}
	engine := calc.NewCalculationEngine()
	res, err := engine.RunScenarios(cfg)
	if err != nil {
		panic(err)
	}
	if len(res.Loans) == 0 {
		fmt.Println("no loans")
		return
	}

	fmt.Println("Loan,Months,EMI,Drift,SumPrincipal,PrincipalGap,SumInterest,InterestGap")
	for _, loan := range res.Loans {
		drift, err := calc.ResidualBalance(loan.EMI)
		if err != nil {
			fmt.Printf("%s: %v\n", loan.Name, err)
			continue
		}
		principal := decimal.NewFromFloat(loan.EMI.Principal)
		interest := decimal.NewFromFloat(loan.EMI.TotalInterest)
		fmt.Printf("%s,%d,%.2f,%.6f,%s,%s,%s,%s\n",
			loan.Name,
			loan.EMI.TenureMonths,
			loan.EMI.MonthlyEMI,
			drift,
			loan.Totals.Principal.StringFixed(2),
			loan.Totals.Principal.Sub(principal).StringFixed(2),
			loan.Totals.Interest.StringFixed(2),
			loan.Totals.Interest.Sub(interest).StringFixed(2),
		)
	}

	// Walk the first loan's balance so a drifting month is easy to spot
	first := res.Loans[0]
	for _, row := range first.Schedule {
		if row.Period%12 == 0 || row.Period == len(first.Schedule) {
			fmt.Printf("%s month %d: balance=%.2f\n", first.Name, row.Period, row.Balance)
		}
	}
}
