package output_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/emicalc/loan-calculator/internal/calculation"
	"github.com/emicalc/loan-calculator/internal/domain"
	"github.com/emicalc/loan-calculator/internal/output"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func sampleComparison(t *testing.T) *domain.LoanComparison {
	t.Helper()
	cmp, err := calculation.NewCalculationEngine().RunScenarios(&domain.Configuration{
		Currency: "GBP",
		Loans: []domain.LoanScenario{
			{Name: "Mortgage", Type: domain.LoanTypeHome, Principal: 100000, AnnualRatePercent: 5, Tenure: 30, TenureUnit: "years"},
		},
	})
	require.NoError(t, err)
	return cmp
}

func TestSaveConfiguration(t *testing.T) {
	cfg := &domain.Configuration{
		Currency: "EUR",
		Loans: []domain.LoanScenario{
			{Name: "Car", Type: domain.LoanTypeCar, Principal: 25000, AnnualRatePercent: 9, Tenure: 14, TenureUnit: "months"},
		},
	}
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, output.SaveConfiguration(cfg, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var back domain.Configuration
	require.NoError(t, yaml.Unmarshal(data, &back))
	assert.Equal(t, *cfg, back)
}

func TestGenerateReportIn(t *testing.T) {
	cmp := sampleComparison(t)

	formats := map[string]string{
		"json":         ".json",
		"csv":          ".csv",
		"detailed-csv": ".csv",
		"html":         ".html",
		"console":      ".txt",
		"amortization": ".txt",
	}
	for format, ext := range formats {
		t.Run(format, func(t *testing.T) {
			dir := t.TempDir()
			paths, err := output.GenerateReportIn(cmp, format, dir)
			require.NoError(t, err)
			require.Len(t, paths, 1)
			assert.Equal(t, dir, filepath.Dir(paths[0]))
			assert.True(t, strings.HasPrefix(filepath.Base(paths[0]), "loan_report_"))
			assert.Equal(t, ext, filepath.Ext(paths[0]))

			info, err := os.Stat(paths[0])
			require.NoError(t, err)
			assert.Positive(t, info.Size())
		})
	}
}

func TestGenerateReportInAll(t *testing.T) {
	paths, err := output.GenerateReportIn(sampleComparison(t), "all", t.TempDir())
	require.NoError(t, err)
	require.Len(t, paths, 3)
	assert.Equal(t, ".txt", filepath.Ext(paths[0]))
	assert.Equal(t, ".csv", filepath.Ext(paths[1]))
	assert.Equal(t, ".html", filepath.Ext(paths[2]))
}

func TestGenerateReportInUnknownFormat(t *testing.T) {
	_, err := output.GenerateReportIn(sampleComparison(t), "pdf", t.TempDir())
	assert.True(t, errors.Is(err, output.ErrUnsupportedFormat))
}

func TestWriteFormattedTo(t *testing.T) {
	path := filepath.Join(t.TempDir(), "schedule.csv")
	require.NoError(t, output.WriteFormattedTo(output.CSVDetailedExporter{}, sampleComparison(t), path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	assert.Len(t, lines, 361)
	assert.Equal(t, "Mortgage,360,536.82,534.59,2.23,0.00", lines[360])
}

func TestWriteFormattedToPropagatesFormatterErrors(t *testing.T) {
	failing := output.FormatterFunc{ID: "broken", F: func(*domain.LoanComparison) ([]byte, error) {
		return nil, errors.New("boom")
	}}
	err := output.WriteFormattedTo(failing, &domain.LoanComparison{}, filepath.Join(t.TempDir(), "x"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "format broken: boom")
}
