package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/emicalc/loan-calculator/internal/calculation"
	"github.com/emicalc/loan-calculator/internal/domain"
	"github.com/emicalc/loan-calculator/internal/output"
	"github.com/emicalc/loan-calculator/pkg/tenure"
	"github.com/shopspring/decimal"
)

const maxBodyBytes = 1 << 20

// EMIRequest is the body of POST /v1/emi. Either TenureMonths or Tenure with
// TenureUnit must be given.
type EMIRequest struct {
	Principal         float64 `json:"principal"`
	AnnualRatePercent float64 `json:"annual_rate_percent"`
	TenureMonths      int     `json:"tenure_months,omitempty"`
	Tenure            float64 `json:"tenure,omitempty"`
	TenureUnit        string  `json:"tenure_unit,omitempty"`
	Currency          string  `json:"currency,omitempty"`
	Locale            string  `json:"locale,omitempty"`
	IncludeSchedule   bool    `json:"include_schedule,omitempty"`
}

// EMIResponse is the reply to POST /v1/emi.
type EMIResponse struct {
	Result    domain.EMIResult         `json:"result"`
	Tenure    string                   `json:"tenure"`
	Currency  domain.Currency          `json:"currency"`
	Formatted FormattedEMI             `json:"formatted"`
	Schedule  []domain.AmortizationRow `json:"schedule,omitempty"`
}

// FormattedEMI carries display strings for the headline amounts.
type FormattedEMI struct {
	MonthlyEMI    string `json:"monthly_emi"`
	TotalInterest string `json:"total_interest"`
	TotalPayment  string `json:"total_payment"`
	Principal     string `json:"principal"`
}

// PrincipalRequest is the body of POST /v1/principal.
type PrincipalRequest struct {
	MonthlyEMI        float64 `json:"monthly_emi"`
	AnnualRatePercent float64 `json:"annual_rate_percent"`
	TenureMonths      int     `json:"tenure_months"`
}

// PrincipalResponse is the reply to POST /v1/principal.
type PrincipalResponse struct {
	Principal float64 `json:"principal"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// Handler serves the calculator API.
type Handler struct {
	logger *slog.Logger
}

// NewHandler creates a handler. A nil logger discards output.
func NewHandler(logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Handler{logger: logger}
}

// Healthz reports liveness.
func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// CalculateEMI computes the installment for a loan and optionally its schedule.
func (h *Handler) CalculateEMI(w http.ResponseWriter, r *http.Request) {
	var req EMIRequest
	if !decodePost(w, r, &req) {
		return
	}

	months := req.TenureMonths
	if months == 0 && req.Tenure != 0 {
		unit, err := tenure.ParseUnit(req.TenureUnit)
		if err == nil {
			months, err = tenure.ToMonths(req.Tenure, unit)
		}
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
	}

	currency, err := domain.LookupCurrency(req.Currency)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := calculation.ComputeEMI(req.Principal, req.AnnualRatePercent, months)
	if err != nil {
		h.writeCalcError(w, err)
		return
	}

	cf := output.NewCurrencyFormatter(currency.Symbol, req.Locale)
	resp := EMIResponse{
		Result:   result,
		Tenure:   tenure.Describe(months),
		Currency: currency,
		Formatted: FormattedEMI{
			MonthlyEMI:    cf.Precise(decimal.NewFromFloat(result.MonthlyEMI)),
			TotalInterest: cf.Format(decimal.NewFromFloat(result.TotalInterest)),
			TotalPayment:  cf.Format(decimal.NewFromFloat(result.TotalPayment)),
			Principal:     cf.Compact(decimal.NewFromFloat(result.Principal)),
		},
	}
	if req.IncludeSchedule {
		schedule, err := calculation.GenerateSchedule(result)
		if err != nil {
			h.writeCalcError(w, err)
			return
		}
		resp.Schedule = schedule
	}
	writeJSON(w, http.StatusOK, resp)
}

// CalculatePrincipal inverts the EMI formula.
func (h *Handler) CalculatePrincipal(w http.ResponseWriter, r *http.Request) {
	var req PrincipalRequest
	if !decodePost(w, r, &req) {
		return
	}
	principal, err := calculation.PrincipalFromEMI(req.MonthlyEMI, req.AnnualRatePercent, req.TenureMonths)
	if err != nil {
		h.writeCalcError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, PrincipalResponse{Principal: principal})
}

// EvaluateTVM runs one time-value-of-money formula.
func (h *Handler) EvaluateTVM(w http.ResponseWriter, r *http.Request) {
	var req domain.TVMRequest
	if !decodePost(w, r, &req) {
		return
	}
	result, err := calculation.EvaluateTVM(req)
	if err != nil {
		h.writeCalcError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (h *Handler) writeCalcError(w http.ResponseWriter, err error) {
	if errors.Is(err, calculation.ErrInvalidArgument) {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	h.logger.Error("calculation failed", "error", err)
	writeError(w, http.StatusInternalServerError, "internal error")
}

// decodePost enforces POST and decodes a bounded JSON body into v.
func decodePost(w http.ResponseWriter, r *http.Request, v any) bool {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return false
	}
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid request body: %v", err))
		return false
	}
	return true
}

// writeJSON encodes before writing the header so an unencodable value, such
// as an overflowed TVM result, still yields a well-formed error reply.
func writeJSON(w http.ResponseWriter, status int, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		status = http.StatusUnprocessableEntity
		body, _ = json.Marshal(errorResponse{Error: fmt.Sprintf("result cannot be represented: %v", err)})
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(append(body, '\n'))
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}
