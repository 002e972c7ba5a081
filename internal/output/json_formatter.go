package output

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/emicalc/loan-calculator/internal/domain"
)

// JSONFormatter serializes the loan comparison as indented JSON. Currency
// symbols and loan names are written unescaped.
type JSONFormatter struct{}

func (j JSONFormatter) Name() string { return "json" }

func (j JSONFormatter) Format(results *domain.LoanComparison) ([]byte, error) {
	for _, res := range results.TVM {
		if !isFinite(res.Value) || !isFinite(res.InterestEarned) {
			return nil, fmt.Errorf("tvm %q overflowed to %v and has no JSON form", tvmLabel(res.Request), res.Value)
		}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(results); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
