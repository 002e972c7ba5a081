package domain

import (
	"github.com/shopspring/decimal"
)

// LoanTerms are the inputs to a single EMI calculation.
// AnnualRatePercent is a percentage: 9 means 9% a year.
type LoanTerms struct {
	Principal         float64 `yaml:"principal" json:"principal" toml:"principal"`
	AnnualRatePercent float64 `yaml:"annual_rate_percent" json:"annual_rate_percent" toml:"annual_rate_percent"`
	TenureMonths      int     `yaml:"tenure_months" json:"tenure_months" toml:"tenure_months"`
}

// EMIResult is the outcome of an EMI calculation. Amounts are rounded to cents
// and TotalPayment is derived from the rounded MonthlyEMI, so
// TotalPayment == MonthlyEMI*TenureMonths and TotalInterest == TotalPayment-Principal
// up to rounding.
type EMIResult struct {
	MonthlyEMI        float64 `json:"monthly_emi"`
	Principal         float64 `json:"principal"`
	TotalInterest     float64 `json:"total_interest"`
	TotalPayment      float64 `json:"total_payment"`
	AnnualRatePercent float64 `json:"annual_rate_percent"`
	TenureMonths      int     `json:"tenure_months"`
}

// Terms echoes the inputs the result was computed from.
func (r EMIResult) Terms() LoanTerms {
	return LoanTerms{
		Principal:         r.Principal,
		AnnualRatePercent: r.AnnualRatePercent,
		TenureMonths:      r.TenureMonths,
	}
}

// AmortizationRow is one period of a repayment schedule
type AmortizationRow struct {
	Period        int     `json:"period"`
	Payment       float64 `json:"payment"`
	PrincipalPaid float64 `json:"principal_paid"`
	InterestPaid  float64 `json:"interest_paid"`
	Balance       float64 `json:"balance"`
}

// ScheduleTotals are exact column sums over a schedule
type ScheduleTotals struct {
	Payment   decimal.Decimal `json:"payment"`
	Principal decimal.Decimal `json:"principal"`
	Interest  decimal.Decimal `json:"interest"`
}

// LoanType labels what a loan is for. It does not change the arithmetic.
type LoanType string

const (
	LoanTypeHome     LoanType = "home"
	LoanTypePersonal LoanType = "personal"
	LoanTypeCar      LoanType = "car"
)

// Valid reports whether t is empty or one of the known loan types
func (t LoanType) Valid() bool {
	switch t {
	case "", LoanTypeHome, LoanTypePersonal, LoanTypeCar:
		return true
	}
	return false
}

// LoanScenario is a named loan as entered in a scenario file.
// Tenure is expressed in TenureUnit ("months" or "years").
type LoanScenario struct {
	Name              string   `yaml:"name" json:"name" toml:"name"`
	Type              LoanType `yaml:"type,omitempty" json:"type,omitempty" toml:"type"`
	Principal         float64  `yaml:"principal" json:"principal" toml:"principal"`
	AnnualRatePercent float64  `yaml:"annual_rate_percent" json:"annual_rate_percent" toml:"annual_rate_percent"`
	Tenure            float64  `yaml:"tenure" json:"tenure" toml:"tenure"`
	TenureUnit        string   `yaml:"tenure_unit,omitempty" json:"tenure_unit,omitempty" toml:"tenure_unit"`
}

// LoanSummary holds everything computed for one loan scenario
type LoanSummary struct {
	Name           string            `json:"name"`
	Type           LoanType          `json:"type,omitempty"`
	TenureLabel    string            `json:"tenure_label"`
	EMI            EMIResult         `json:"emi"`
	Schedule       []AmortizationRow `json:"schedule"`
	Totals         ScheduleTotals    `json:"totals"`
	PrincipalShare decimal.Decimal   `json:"principal_share"`
	InterestShare  decimal.Decimal   `json:"interest_share"`
}
