package domain

// TVMKind selects one of the time-value-of-money formulas
type TVMKind string

const (
	TVMPresentValue        TVMKind = "present_value"
	TVMFutureValue         TVMKind = "future_value"
	TVMAnnuityPresentValue TVMKind = "annuity_pv"
	TVMAnnuityFutureValue  TVMKind = "annuity_fv"
	TVMPerpetuity          TVMKind = "perpetuity"
	TVMCompoundGrowth      TVMKind = "compound_growth"
)

// TVMKinds lists every supported formula in display order.
var TVMKinds = []TVMKind{
	TVMPresentValue,
	TVMFutureValue,
	TVMAnnuityPresentValue,
	TVMAnnuityFutureValue,
	TVMPerpetuity,
	TVMCompoundGrowth,
}

// TVMRequest describes one TVM evaluation.
//
// Rate is a fraction per period (0.05 means 5%), unlike the EMI engine which
// takes an annual percentage. Amount is the known sum the formula starts
// from: the future value for present_value, the present value for
// future_value, the periodic payment for the annuity and perpetuity forms and
// the principal for compound_growth. Periods is ignored by perpetuity, Years
// and CompoundingsPerYear are only read by compound_growth.
type TVMRequest struct {
	Name                string  `yaml:"name,omitempty" json:"name,omitempty" toml:"name"`
	Kind                TVMKind `yaml:"kind" json:"kind" toml:"kind"`
	Amount              float64 `yaml:"amount" json:"amount" toml:"amount"`
	Rate                float64 `yaml:"rate" json:"rate" toml:"rate"`
	Periods             float64 `yaml:"periods,omitempty" json:"periods,omitempty" toml:"periods"`
	Years               float64 `yaml:"years,omitempty" json:"years,omitempty" toml:"years"`
	CompoundingsPerYear int     `yaml:"compoundings_per_year,omitempty" json:"compoundings_per_year,omitempty" toml:"compoundings_per_year"`
}

// TVMResult carries the unrounded value of a TVM evaluation.
// InterestEarned is only set for compound_growth.
type TVMResult struct {
	Request        TVMRequest `json:"request"`
	Value          float64    `json:"value"`
	InterestEarned float64    `json:"interest_earned,omitempty"`
}

// CompoundGrowthResult is the outcome of compounding a principal
type CompoundGrowthResult struct {
	FutureValue    float64 `json:"future_value"`
	InterestEarned float64 `json:"interest_earned"`
}
