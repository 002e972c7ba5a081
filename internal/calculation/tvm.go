package calculation

import (
	"fmt"
	"math"

	"github.com/emicalc/loan-calculator/internal/domain"
)

// The TVM formulas take rate as a fraction per period: 0.05 is 5%.
// They return unrounded values; rounding for display happens in output.

func validateRate(rate float64) error {
	if err := requireFinite("rate", rate); err != nil {
		return err
	}
	if rate <= -1 {
		return invalidf("rate must be greater than -100%%, got %v", rate)
	}
	return nil
}

func validateTVM(amount, rate, periods float64) error {
	if err := requireFinite("amount", amount); err != nil {
		return err
	}
	if err := validateRate(rate); err != nil {
		return err
	}
	return requireNonNegative("periods", periods)
}

// PresentValue discounts a future sum: PV = FV / (1+r)^n
func PresentValue(futureValue, rate, periods float64) (float64, error) {
	if err := validateTVM(futureValue, rate, periods); err != nil {
		return 0, err
	}
	return futureValue / math.Pow(1+rate, periods), nil
}

// FutureValue compounds a present sum: FV = PV * (1+r)^n
func FutureValue(presentValue, rate, periods float64) (float64, error) {
	if err := validateTVM(presentValue, rate, periods); err != nil {
		return 0, err
	}
	return presentValue * math.Pow(1+rate, periods), nil
}

// AnnuityPresentValue values a run of equal payments today:
// PV = PMT * (1 - (1+r)^-n) / r. A zero rate is rejected.
func AnnuityPresentValue(payment, rate, periods float64) (float64, error) {
	if err := validateTVM(payment, rate, periods); err != nil {
		return 0, err
	}
	if rate == 0 {
		return 0, invalidf("annuity present value needs a non-zero rate")
	}
	return payment * (1 - math.Pow(1+rate, -periods)) / rate, nil
}

// AnnuityFutureValue accumulates a run of equal payments:
// FV = PMT * ((1+r)^n - 1) / r. A zero rate is rejected.
func AnnuityFutureValue(payment, rate, periods float64) (float64, error) {
	if err := validateTVM(payment, rate, periods); err != nil {
		return 0, err
	}
	if rate == 0 {
		return 0, invalidf("annuity future value needs a non-zero rate")
	}
	return payment * (math.Pow(1+rate, periods) - 1) / rate, nil
}

// Perpetuity values an endless run of equal payments: PV = PMT / r.
// Only positive rates have a finite value.
func Perpetuity(payment, rate float64) (float64, error) {
	if err := requireFinite("payment", payment); err != nil {
		return 0, err
	}
	if err := requireFinite("rate", rate); err != nil {
		return 0, err
	}
	if rate <= 0 {
		return 0, invalidf("perpetuity needs a positive rate, got %v", rate)
	}
	return payment / rate, nil
}

// CompoundGrowth compounds principal at an annual rate split into
// compoundingsPerYear periods for years: FV = P * (1 + r/f)^(f*t).
// rate is a fraction (0.05 for 5%), not a percentage.
func CompoundGrowth(principal, rate, years float64, compoundingsPerYear int) (domain.CompoundGrowthResult, error) {
	if err := requireFinite("principal", principal); err != nil {
		return domain.CompoundGrowthResult{}, err
	}
	if err := requireNonNegative("years", years); err != nil {
		return domain.CompoundGrowthResult{}, err
	}
	if compoundingsPerYear <= 0 {
		return domain.CompoundGrowthResult{}, invalidf("compoundings per year must be positive, got %d", compoundingsPerYear)
	}
	if err := requireFinite("rate", rate); err != nil {
		return domain.CompoundGrowthResult{}, err
	}

	f := float64(compoundingsPerYear)
	periodRate := rate / f
	if periodRate <= -1 {
		return domain.CompoundGrowthResult{}, invalidf("rate per compounding period must be greater than -100%%, got %v", periodRate)
	}

	fv := principal * math.Pow(1+periodRate, f*years)
	return domain.CompoundGrowthResult{
		FutureValue:    fv,
		InterestEarned: fv - principal,
	}, nil
}

// EvaluateTVM runs the formula selected by req.Kind.
func EvaluateTVM(req domain.TVMRequest) (domain.TVMResult, error) {
	var (
		value float64
		err   error
	)
	res := domain.TVMResult{Request: req}

	switch req.Kind {
	case domain.TVMPresentValue:
		value, err = PresentValue(req.Amount, req.Rate, req.Periods)
	case domain.TVMFutureValue:
		value, err = FutureValue(req.Amount, req.Rate, req.Periods)
	case domain.TVMAnnuityPresentValue:
		value, err = AnnuityPresentValue(req.Amount, req.Rate, req.Periods)
	case domain.TVMAnnuityFutureValue:
		value, err = AnnuityFutureValue(req.Amount, req.Rate, req.Periods)
	case domain.TVMPerpetuity:
		value, err = Perpetuity(req.Amount, req.Rate)
	case domain.TVMCompoundGrowth:
		var growth domain.CompoundGrowthResult
		growth, err = CompoundGrowth(req.Amount, req.Rate, req.Years, req.CompoundingsPerYear)
		value = growth.FutureValue
		res.InterestEarned = growth.InterestEarned
	default:
		return domain.TVMResult{}, invalidf("unknown TVM kind %q", req.Kind)
	}
	if err != nil {
		return domain.TVMResult{}, fmt.Errorf("%s: %w", req.Kind, err)
	}

	res.Value = value
	return res, nil
}
