package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Configuration is the content of a scenario file
type Configuration struct {
	Currency string         `yaml:"currency,omitempty" json:"currency,omitempty" toml:"currency"`
	Locale   string         `yaml:"locale,omitempty" json:"locale,omitempty" toml:"locale"`
	Loans    []LoanScenario `yaml:"loans" json:"loans" toml:"loans"`
	TVM      []TVMRequest   `yaml:"tvm,omitempty" json:"tvm,omitempty" toml:"tvm"`
}

// LoanComparison is the result of running every scenario in a Configuration
type LoanComparison struct {
	GeneratedAt time.Time          `json:"generated_at"`
	Currency    Currency           `json:"currency"`
	Locale      string             `json:"locale,omitempty"`
	Loans       []LoanSummary      `json:"loans"`
	TVM         []TVMResult        `json:"tvm,omitempty"`
	Analysis    ComparisonAnalysis `json:"analysis"`
}

// ComparisonAnalysis ranks the loans of a comparison
type ComparisonAnalysis struct {
	LowestTotalInterest string          `json:"lowest_total_interest"`
	LowestMonthlyEMI    string          `json:"lowest_monthly_emi"`
	InterestSpread      decimal.Decimal `json:"interest_spread"`
	Notes               []string        `json:"notes,omitempty"`
}
