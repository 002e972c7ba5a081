package output

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"html/template"

	"github.com/emicalc/loan-calculator/internal/domain"
	"github.com/shopspring/decimal"
)

// HTMLFormatter produces a standalone HTML report.
type HTMLFormatter struct{}

func (h HTMLFormatter) Name() string { return "html" }

//go:embed templates/report.html.tmpl
var htmlTemplateSource string

var htmlTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	// replaced per render with the comparison's currency formatter
	"curr":    func(decimal.Decimal) string { return "" },
	"compact": func(decimal.Decimal) string { return "" },
	"cents":   func(decimal.Decimal) string { return "" },
	"amount":  func(float64) string { return "" },
	"pct":     FormatPercentage,
	"rate":    FormatRate,
	"dec":     toDecimal,
	"json": func(v interface{}) template.JS {
		b, _ := json.Marshal(v)
		return template.JS(b)
	},
}).Parse(htmlTemplateSource))

func (h HTMLFormatter) Format(results *domain.LoanComparison) ([]byte, error) {
	var buf bytes.Buffer
	cf := currencyFormatter(results)

	tmpl, err := htmlTemplate.Clone()
	if err != nil {
		return nil, err
	}
	tmpl.Funcs(template.FuncMap{
		"curr":    cf.Format,
		"compact": cf.Compact,
		"cents":   cf.Precise,
		"amount":  func(v float64) string { return tvmAmount(cf, v) },
	})

	chart := make([]chartPoint, 0, len(results.Loans))
	for _, loan := range results.Loans {
		chart = append(chart, chartPoint{Name: loan.Name, Principal: loan.EMI.Principal, Interest: loan.EMI.TotalInterest})
	}

	data := struct {
		*domain.LoanComparison
		Recommendation Recommendation
		Assumptions    []string
		Chart          []chartPoint
	}{results, AnalyzeLoans(results), GenerateAssumptions(results), chart}
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// chartPoint feeds the principal vs interest breakdown chart.
type chartPoint struct {
	Name      string  `json:"name"`
	Principal float64 `json:"principal"`
	Interest  float64 `json:"interest"`
}
