package output

import (
	"bytes"
	"encoding/csv"
	"sort"

	"github.com/emicalc/loan-calculator/internal/domain"
)

// CSVSummarizer implements the simple summary CSV output (one row per loan).
type CSVSummarizer struct{}

func (c CSVSummarizer) Name() string { return "csv" }

func (c CSVSummarizer) Format(results *domain.LoanComparison) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Loan", "Type", "Principal", "AnnualRatePercent", "TenureMonths", "MonthlyEMI", "TotalInterest", "TotalPayment", "PrincipalShare", "InterestShare", "Currency"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	loans := append([]domain.LoanSummary(nil), results.Loans...)
	sort.SliceStable(loans, func(i, j int) bool { return loans[i].Name < loans[j].Name })
	for _, loan := range loans {
		row := []string{
			loan.Name,
			string(loan.Type),
			floatToString(loan.EMI.Principal),
			floatToString(loan.EMI.AnnualRatePercent),
			intToString(loan.EMI.TenureMonths),
			floatToString(loan.EMI.MonthlyEMI),
			floatToString(loan.EMI.TotalInterest),
			floatToString(loan.EMI.TotalPayment),
			loan.PrincipalShare.StringFixed(2),
			loan.InterestShare.StringFixed(2),
			results.Currency.Code,
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
