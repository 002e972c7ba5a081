package output

import (
	"bytes"
	"encoding/csv"

	"github.com/emicalc/loan-calculator/internal/domain"
)

// CSVDetailedExporter writes one row per loan and period.
// Loans keep the order of the comparison.
type CSVDetailedExporter struct{}

func (c CSVDetailedExporter) Name() string { return "detailed-csv" }

func (c CSVDetailedExporter) Format(results *domain.LoanComparison) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Loan", "Month", "Payment", "Principal", "Interest", "Balance"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, loan := range results.Loans {
		for _, row := range loan.Schedule {
			record := []string{
				loan.Name,
				intToString(row.Period),
				floatToString(row.Payment),
				floatToString(row.PrincipalPaid),
				floatToString(row.InterestPaid),
				floatToString(row.Balance),
			}
			if err := w.Write(record); err != nil {
				return nil, err
			}
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
