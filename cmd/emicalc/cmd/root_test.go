package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/emicalc/loan-calculator/internal/config"
	"github.com/emicalc/loan-calculator/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	root := NewRootCmd()
	var stdout, stderr bytes.Buffer
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)
	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func TestEMICommand(t *testing.T) {
	out, _, err := execute(t, "emi", "--principal", "25,000", "--rate", "9", "--tenure", "14")
	require.NoError(t, err)

	assert.Contains(t, out, "Loan Amount:     $25,000.00")
	assert.Contains(t, out, "Interest Rate:   9.00% per year")
	assert.Contains(t, out, "Tenure:          1 yr 2 mo (14 months)")
	assert.Contains(t, out, "Monthly EMI:     $1,887.79")
	assert.Contains(t, out, "Total Interest:  $1,429.06")
	assert.Contains(t, out, "Total Payment:   $26,429.06")
	assert.Contains(t, out, "94.59% principal, 5.41% interest")
	assert.NotContains(t, out, "AMORTIZATION SCHEDULE")
}

func TestEMICommandSchedule(t *testing.T) {
	out, _, err := execute(t, "emi", "-p", "25000", "-r", "9", "-t", "14", "--schedule")
	require.NoError(t, err)
	assert.Contains(t, out, "AMORTIZATION SCHEDULE: Loan")
	assert.Contains(t, out, "23,299.71")
}

func TestEMICommandYearsAndCurrency(t *testing.T) {
	out, _, err := execute(t, "emi", "-p", "5000000", "-r", "9.5", "-t", "10", "-u", "years", "--currency", "inr")
	require.NoError(t, err)
	assert.Contains(t, out, "Monthly EMI:     ₹64,698.78")
	assert.Contains(t, out, "(120 months)")
}

func TestEMICommandJSON(t *testing.T) {
	out, _, err := execute(t, "emi", "-p", "100000", "-r", "5", "-t", "30", "-u", "years", "-f", "json", "--schedule")
	require.NoError(t, err)

	var payload struct {
		Result   domain.EMIResult         `json:"result"`
		Currency domain.Currency          `json:"currency"`
		Schedule []domain.AmortizationRow `json:"schedule"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &payload))
	assert.Equal(t, 536.82, payload.Result.MonthlyEMI)
	assert.Equal(t, 360, payload.Result.TenureMonths)
	assert.Equal(t, "USD", payload.Currency.Code)
	require.Len(t, payload.Schedule, 360)
	assert.Equal(t, 0.0, payload.Schedule[359].Balance)
}

func TestEMICommandErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"missing principal", []string{"emi", "-t", "12"}, `required flag(s) "principal"`},
		{"negative principal", []string{"emi", "--principal=-5", "-t", "12"}, "emi calculation failed"},
		{"bad unit", []string{"emi", "-p", "1000", "-t", "12", "-u", "weeks"}, "emi calculation failed"},
		{"bad currency", []string{"emi", "-p", "1000", "-t", "12", "--currency", "XBT"}, "unknown currency"},
		{"bad format", []string{"emi", "-p", "1000", "-t", "12", "-f", "xml"}, "unknown format"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := execute(t, tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestPrincipalCommand(t *testing.T) {
	out, _, err := execute(t, "principal", "--emi", "1887.79", "--rate", "9", "--tenure", "14")
	require.NoError(t, err)
	assert.Equal(t, "Principal: $25,000.05\n", out)

	_, _, err = execute(t, "principal", "--emi", "100", "--rate=-1", "--tenure", "14")
	require.Error(t, err)
}

func TestTVMCommands(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"present value", []string{"tvm", "pv", "-a", "10000", "-r", "5", "-n", "10"}, "present_value: $6,139.13\n"},
		{"annuity", []string{"tvm", "annuity-pv", "-a", "1000", "-r", "5", "-n", "10"}, "annuity_pv: $7,721.73\n"},
		{"perpetuity", []string{"tvm", "perpetuity", "-a", "1000", "-r", "5"}, "perpetuity: $20,000.00\n"},
		{"compound", []string{"tvm", "compound", "-a", "10000", "-r", "5", "--years", "10"}, "compound_growth: $16,470.09\ninterest_earned: $6,470.09\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _, err := execute(t, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestTVMCommandRejectsZeroRateAnnuity(t *testing.T) {
	_, _, err := execute(t, "tvm", "annuity-fv", "-a", "100", "-r", "0", "-n", "5")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "annuity_fv failed")
}

func TestTVMCommandJSON(t *testing.T) {
	out, _, err := execute(t, "tvm", "fv", "-a", "10000", "-r", "5", "-n", "10", "--json")
	require.NoError(t, err)

	var res domain.TVMResult
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, domain.TVMFutureValue, res.Request.Kind)
	assert.InDelta(t, 16288.946, res.Value, 0.001)
	assert.Zero(t, res.Request.CompoundingsPerYear)
}

func TestExampleConfigAndCompare(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "nested", "loans.yaml")

	out, _, err := execute(t, "example-config", cfgPath)
	require.NoError(t, err)
	assert.Contains(t, out, "Example configuration written to")

	loaded, err := config.NewInputParser().LoadFromFile(cfgPath)
	require.NoError(t, err)
	assert.Len(t, loaded.Loans, 3)

	out, _, err = execute(t, "compare", "--config", cfgPath, "--format", "lite")
	require.NoError(t, err)
	assert.Contains(t, out, "LOAN COMPARISON SUMMARY")
	assert.Contains(t, out, "Car Loan: EMI=$1,888")
	assert.Contains(t, out, "Recommended: Personal Loan")

	reportPath := filepath.Join(dir, "summary.csv")
	out, _, err = execute(t, "compare", "-c", cfgPath, "-f", "csv", "-o", reportPath)
	require.NoError(t, err)
	assert.Contains(t, out, reportPath)
	data, err := os.ReadFile(reportPath)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "Loan,Type,Principal"))

	out, _, err = execute(t, "compare", "-c", cfgPath, "-f", "all", "--dir", dir)
	require.NoError(t, err)
	assert.Equal(t, 3, strings.Count(out, "Report written to"))
}

func TestExampleConfigToStdout(t *testing.T) {
	out, _, err := execute(t, "example-config")
	require.NoError(t, err)
	assert.Contains(t, out, "name: Home Loan")
	assert.Contains(t, out, "kind: compound_growth")
}

func TestCompareErrors(t *testing.T) {
	_, _, err := execute(t, "compare", "--config", filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load configuration")

	cfgPath := filepath.Join(t.TempDir(), "loans.yaml")
	_, _, err = execute(t, "example-config", cfgPath)
	require.NoError(t, err)
	_, _, err = execute(t, "compare", "-c", cfgPath, "-f", "pdf", "--dir", t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported report format")
}

func TestDebugLoggingGoesToStderr(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "loans.yaml")
	_, _, err := execute(t, "example-config", cfgPath)
	require.NoError(t, err)

	_, stderr, err := execute(t, "--log-level", "debug", "--log-format", "json", "compare", "-c", cfgPath, "-f", "lite", "--debug")
	require.NoError(t, err)
	assert.Contains(t, stderr, `"component":"calculation"`)
	assert.Contains(t, stderr, "final-period drift")
	assert.Contains(t, stderr, `"msg":"scenarios computed"`)
}

func TestVersionCommand(t *testing.T) {
	out, _, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, Version)
}
