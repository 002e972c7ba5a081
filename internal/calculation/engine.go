package calculation

import (
	"context"
	"fmt"
	"time"

	"github.com/emicalc/loan-calculator/internal/domain"
	"github.com/emicalc/loan-calculator/pkg/decimal"
	"github.com/emicalc/loan-calculator/pkg/tenure"
)

// Logger receives the engine's progress messages. Scenario runs log one Info
// line per loan; drift diagnostics go to Debug.
type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

// NopLogger discards everything.
type NopLogger struct{}

func (NopLogger) Debugf(string, ...any) {}
func (NopLogger) Infof(string, ...any)  {}
func (NopLogger) Warnf(string, ...any)  {}
func (NopLogger) Errorf(string, ...any) {}

func loggerOrNop(l Logger) Logger {
	if l == nil {
		return NopLogger{}
	}
	return l
}

// nowFunc stamps LoanComparison.GeneratedAt.
var nowFunc = time.Now

// SetNowFunc replaces the clock used for GeneratedAt. Tests only.
func SetNowFunc(f func() time.Time) { nowFunc = f }

// CalculationEngine runs loan scenarios and TVM batches.
// It holds no per-calculation state and may be shared between goroutines.
type CalculationEngine struct {
	Debug  bool // log per-loan schedule drift
	Logger Logger
}

// NewCalculationEngine creates a new calculation engine
func NewCalculationEngine() *CalculationEngine {
	return &CalculationEngine{Logger: NopLogger{}}
}

// SetLogger sets the logger for the calculation engine. If nil is provided, a no-op logger is used.
func (ce *CalculationEngine) SetLogger(l Logger) {
	ce.Logger = loggerOrNop(l)
}

// RunLoan computes the EMI, the schedule and its totals for one scenario
func (ce *CalculationEngine) RunLoan(ctx context.Context, scenario domain.LoanScenario) (*domain.LoanSummary, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	log := loggerOrNop(ce.Logger)

	unit, err := tenure.ParseUnit(scenario.TenureUnit)
	if err != nil {
		return nil, invalidf("%v", err)
	}
	months, err := tenure.ToMonths(scenario.Tenure, unit)
	if err != nil {
		return nil, invalidf("%v", err)
	}

	emi, err := ComputeEMIForTerms(domain.LoanTerms{
		Principal:         scenario.Principal,
		AnnualRatePercent: scenario.AnnualRatePercent,
		TenureMonths:      months,
	})
	if err != nil {
		return nil, err
	}
	schedule, err := GenerateSchedule(emi)
	if err != nil {
		return nil, err
	}

	if ce.Debug {
		if residual, err := ResidualBalance(emi); err == nil {
			log.Debugf("loan %q: %d periods, EMI %.2f, final-period drift %.6f", scenario.Name, months, emi.MonthlyEMI, residual)
		}
	}

	totalPayment := decimal.NewMoney(emi.TotalPayment)
	if interest := decimal.NewMoney(emi.TotalInterest); interest.IsNegative() {
		log.Warnf("loan %q: installment rounded down to %.2f leaves total interest at %s", scenario.Name, emi.MonthlyEMI, interest)
	}
	summary := &domain.LoanSummary{
		Name:           scenario.Name,
		Type:           scenario.Type,
		TenureLabel:    tenure.Describe(months),
		EMI:            emi,
		Schedule:       schedule,
		Totals:         SummarizeSchedule(schedule),
		PrincipalShare: decimal.NewMoney(emi.Principal).Share(totalPayment),
		InterestShare:  decimal.NewMoney(emi.TotalInterest).Share(totalPayment),
	}
	return summary, nil
}

// RunTVM evaluates a batch of TVM requests in order
func (ce *CalculationEngine) RunTVM(ctx context.Context, requests []domain.TVMRequest) ([]domain.TVMResult, error) {
	results := make([]domain.TVMResult, 0, len(requests))
	for i, req := range requests {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		res, err := EvaluateTVM(req)
		if err != nil {
			return nil, fmt.Errorf("tvm[%d] %q: %w", i, req.Name, err)
		}
		results = append(results, res)
	}
	return results, nil
}

// RunScenarios runs all loans and TVM requests and returns a comparison
func (ce *CalculationEngine) RunScenarios(config *domain.Configuration) (*domain.LoanComparison, error) {
	return ce.RunScenariosContext(context.Background(), config)
}

// RunScenariosContext is RunScenarios with cancellation between scenarios
func (ce *CalculationEngine) RunScenariosContext(ctx context.Context, config *domain.Configuration) (*domain.LoanComparison, error) {
	log := loggerOrNop(ce.Logger)

	currency, err := domain.LookupCurrency(config.Currency)
	if err != nil {
		return nil, invalidf("%v", err)
	}

	loans := make([]domain.LoanSummary, len(config.Loans))
	for i, scenario := range config.Loans {
		summary, err := ce.RunLoan(ctx, scenario)
		if err != nil {
			return nil, fmt.Errorf("loan %q: %w", scenario.Name, err)
		}
		loans[i] = *summary
		log.Infof("loan %q: EMI %.2f over %d months", scenario.Name, summary.EMI.MonthlyEMI, summary.EMI.TenureMonths)
	}

	tvm, err := ce.RunTVM(ctx, config.TVM)
	if err != nil {
		return nil, err
	}

	comparison := &domain.LoanComparison{
		GeneratedAt: nowFunc().UTC(),
		Currency:    currency,
		Locale:      config.Locale,
		Loans:       loans,
		TVM:         tvm,
		Analysis:    CompareLoans(loans),
	}
	return comparison, nil
}
