package calculation

import (
	"math"

	"github.com/emicalc/loan-calculator/internal/domain"
	"github.com/emicalc/loan-calculator/pkg/decimal"
)

// monthlyRate converts an annual percentage into the per-month fraction.
// ComputeEMI and GenerateSchedule must derive r identically.
func monthlyRate(annualRatePercent float64) float64 {
	return annualRatePercent / 12 / 100
}

func validateTerms(amountName string, amount, annualRatePercent float64, tenureMonths int) error {
	if err := requireNonNegative(amountName, amount); err != nil {
		return err
	}
	if err := requireNonNegative("annual rate", annualRatePercent); err != nil {
		return err
	}
	if tenureMonths <= 0 {
		return invalidf("tenure must be at least one month, got %d", tenureMonths)
	}
	return nil
}

// ComputeEMI derives the fixed monthly installment of an amortizing loan.
//
//	EMI = P * r * (1+r)^n / ((1+r)^n - 1),  r = annualRatePercent / 12 / 100
//
// The quotient is evaluated as P*r / (1 - (1+r)^-n) through Log1p/Expm1, which
// neither overflows for long tenures nor cancels to zero for tiny rates. A rate
// that is zero per month takes its own branch, EMI = P / n. All amounts in the
// result are rounded to cents and TotalPayment is built from the rounded EMI so
// the displayed total always matches the displayed installment. Terms whose
// amounts cannot be represented fail with ErrInvalidArgument.
func ComputeEMI(principal, annualRatePercent float64, tenureMonths int) (domain.EMIResult, error) {
	if err := validateTerms("principal", principal, annualRatePercent, tenureMonths); err != nil {
		return domain.EMIResult{}, err
	}

	n := float64(tenureMonths)
	var emi float64
	if r := monthlyRate(annualRatePercent); r == 0 {
		emi = principal / n
	} else {
		emi = principal * r / discountComplement(r, n)
	}

	monthlyEMI := decimal.Round2(emi)
	totalPayment := decimal.Round2(monthlyEMI * n)
	totalInterest := decimal.Round2(totalPayment - principal)
	if !isFinite(totalPayment) || !isFinite(totalInterest) {
		return domain.EMIResult{}, invalidf("installment for principal %v at %v%% over %d months is not representable", principal, annualRatePercent, tenureMonths)
	}

	return domain.EMIResult{
		MonthlyEMI:        monthlyEMI,
		Principal:         principal,
		TotalInterest:     totalInterest,
		TotalPayment:      totalPayment,
		AnnualRatePercent: annualRatePercent,
		TenureMonths:      tenureMonths,
	}, nil
}

// ComputeEMIForTerms is ComputeEMI over a LoanTerms value
func ComputeEMIForTerms(terms domain.LoanTerms) (domain.EMIResult, error) {
	return ComputeEMI(terms.Principal, terms.AnnualRatePercent, terms.TenureMonths)
}

// discountComplement is 1 - (1+r)^-n, in (0, 1] for r > 0 and n >= 1.
func discountComplement(r, n float64) float64 {
	return -math.Expm1(-n * math.Log1p(r))
}

// PrincipalFromEMI inverts the EMI formula: the loan amount a given monthly
// installment repays over tenureMonths at annualRatePercent.
//
//	P = EMI * ((1+r)^n - 1) / (r * (1+r)^n) = EMI * (1 - (1+r)^-n) / r
//
// The result is not rounded.
func PrincipalFromEMI(emi, annualRatePercent float64, tenureMonths int) (float64, error) {
	if err := validateTerms("installment", emi, annualRatePercent, tenureMonths); err != nil {
		return 0, err
	}

	n := float64(tenureMonths)
	var principal float64
	if r := monthlyRate(annualRatePercent); r == 0 {
		principal = emi * n
	} else {
		principal = emi * discountComplement(r, n) / r
	}
	if !isFinite(principal) {
		return 0, invalidf("principal for installment %v at %v%% over %d months is not representable", emi, annualRatePercent, tenureMonths)
	}
	return principal, nil
}
