package config

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/emicalc/loan-calculator/internal/domain"
	"github.com/emicalc/loan-calculator/pkg/decimal"
	"github.com/emicalc/loan-calculator/pkg/tenure"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// InputParser handles parsing of input configuration files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads configuration from a YAML, JSON or TOML file.
// The format is chosen by extension; anything but .toml is read as YAML,
// which also accepts JSON.
func (ip *InputParser) LoadFromFile(filename string) (*domain.Configuration, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var config domain.Configuration
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".toml":
		if err := toml.Unmarshal(data, &config); err != nil {
			return nil, fmt.Errorf("failed to parse TOML: %w", err)
		}
	default:
		if err := yaml.Unmarshal(data, &config); err != nil {
			return nil, fmt.Errorf("failed to parse YAML: %w", err)
		}
	}

	// Validate the configuration
	if err := ip.ValidateConfiguration(&config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &config, nil
}

// ValidateConfiguration validates the loaded configuration
func (ip *InputParser) ValidateConfiguration(config *domain.Configuration) error {
	if _, err := domain.LookupCurrency(config.Currency); err != nil {
		return err
	}
	if config.Locale != "" {
		if _, err := language.Parse(config.Locale); err != nil {
			return fmt.Errorf("invalid locale %q: %w", config.Locale, err)
		}
	}

	if len(config.Loans) == 0 && len(config.TVM) == 0 {
		return fmt.Errorf("no loans or TVM requests provided")
	}

	names := make(map[string]bool, len(config.Loans))
	for i, loan := range config.Loans {
		if err := ip.validateLoan(&loan); err != nil {
			return fmt.Errorf("loan %d validation failed: %w", i, err)
		}
		if names[loan.Name] {
			return fmt.Errorf("loan %d validation failed: duplicate name %q", i, loan.Name)
		}
		names[loan.Name] = true
	}

	for i, req := range config.TVM {
		if err := ip.validateTVMRequest(&req); err != nil {
			return fmt.Errorf("tvm request %d validation failed: %w", i, err)
		}
	}

	return nil
}

// validateLoan validates a single loan scenario
func (ip *InputParser) validateLoan(loan *domain.LoanScenario) error {
	if strings.TrimSpace(loan.Name) == "" {
		return fmt.Errorf("loan name cannot be empty")
	}
	if !loan.Type.Valid() {
		return fmt.Errorf("unknown loan type %q (want home, personal or car)", loan.Type)
	}
	if !isFinite(loan.Principal) || loan.Principal < 0 {
		return fmt.Errorf("principal must be a non-negative number")
	}
	if !isFinite(loan.AnnualRatePercent) || loan.AnnualRatePercent < 0 {
		return fmt.Errorf("annual rate percent must be a non-negative number")
	}
	unit, err := tenure.ParseUnit(loan.TenureUnit)
	if err != nil {
		return err
	}
	if _, err := tenure.ToMonths(loan.Tenure, unit); err != nil {
		return err
	}
	return nil
}

// validateTVMRequest checks the fields a formula reads. Rate limits that
// depend on the formula are left to the calculation engine.
func (ip *InputParser) validateTVMRequest(req *domain.TVMRequest) error {
	known := false
	for _, k := range domain.TVMKinds {
		if req.Kind == k {
			known = true
			break
		}
	}
	if !known {
		return fmt.Errorf("unknown kind %q", req.Kind)
	}
	if !isFinite(req.Amount) || !isFinite(req.Rate) {
		return fmt.Errorf("amount and rate must be finite numbers")
	}
	if req.Rate <= -1 {
		return fmt.Errorf("rate must be greater than -1 (rates are fractions, 0.05 = 5%%)")
	}
	switch req.Kind {
	case domain.TVMCompoundGrowth:
		if req.CompoundingsPerYear <= 0 {
			return fmt.Errorf("compoundings_per_year must be positive")
		}
		if !isFinite(req.Years) || req.Years < 0 {
			return fmt.Errorf("years must be a non-negative number")
		}
	case domain.TVMPerpetuity:
	default:
		if !isFinite(req.Periods) || req.Periods < 0 {
			return fmt.Errorf("periods must be a non-negative number")
		}
	}
	return nil
}

func isFinite(f float64) bool { return !math.IsNaN(f) && !math.IsInf(f, 0) }

// ParseAmount reads a number typed by a person. Grouping commas, underscores
// and surrounding blanks are ignored; anything unparsable reads as zero.
func ParseAmount(s string) float64 {
	cleaned := strings.NewReplacer(",", "", "_", "", " ", "").Replace(strings.TrimSpace(s))
	if cleaned == "" {
		return 0
	}
	m, err := decimal.NewMoneyFromString(cleaned)
	if err != nil {
		return 0
	}
	return m.Float64()
}

// CreateExampleConfiguration creates an example configuration
func (ip *InputParser) CreateExampleConfiguration() *domain.Configuration {
	return &domain.Configuration{
		Currency: "USD",
		Loans: []domain.LoanScenario{
			{
				Name:              "Home Loan",
				Type:              domain.LoanTypeHome,
				Principal:         5000000,
				AnnualRatePercent: 9.5,
				Tenure:            10,
				TenureUnit:        string(tenure.Years),
			},
			{
				Name:              "Car Loan",
				Type:              domain.LoanTypeCar,
				Principal:         25000,
				AnnualRatePercent: 9,
				Tenure:            14,
				TenureUnit:        string(tenure.Months),
			},
			{
				Name:              "Personal Loan",
				Type:              domain.LoanTypePersonal,
				Principal:         10000,
				AnnualRatePercent: 12,
				Tenure:            2,
				TenureUnit:        string(tenure.Years),
			},
		},
		TVM: []domain.TVMRequest{
			{Name: "Savings goal today", Kind: domain.TVMPresentValue, Amount: 10000, Rate: 0.05, Periods: 10},
			{Name: "Deposit in ten years", Kind: domain.TVMFutureValue, Amount: 10000, Rate: 0.05, Periods: 10},
			{Name: "Pension stream", Kind: domain.TVMAnnuityPresentValue, Amount: 1000, Rate: 0.05, Periods: 10},
			{Name: "Yearly savings plan", Kind: domain.TVMAnnuityFutureValue, Amount: 1000, Rate: 0.05, Periods: 10},
			{Name: "Endowment", Kind: domain.TVMPerpetuity, Amount: 1000, Rate: 0.05},
			{Name: "Monthly compounding", Kind: domain.TVMCompoundGrowth, Amount: 10000, Rate: 0.05, Years: 10, CompoundingsPerYear: 12},
		},
	}
}
