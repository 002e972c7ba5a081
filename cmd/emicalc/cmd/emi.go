package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/emicalc/loan-calculator/internal/config"
	"github.com/emicalc/loan-calculator/internal/domain"
	"github.com/emicalc/loan-calculator/internal/output"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

type emiOptions struct {
	principal string
	rate      float64
	tenure    float64
	unit      string
	currency  string
	locale    string
	format    string
	schedule  bool
}

func newEMICmd(a *app) *cobra.Command {
	opts := &emiOptions{}
	c := &cobra.Command{
		Use:   "emi",
		Short: "Compute the monthly installment of a loan",
		Long: `Compute the equated monthly installment (EMI), total interest and total
payment of a loan. The principal accepts grouping commas ("5,000,000").

Examples:
  emicalc emi --principal 25000 --rate 9 --tenure 14
  emicalc emi --principal 5,000,000 --rate 9.5 --tenure 10 --unit years --currency INR --schedule`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEMI(cmd, a, opts)
		},
	}
	f := c.Flags()
	f.StringVarP(&opts.principal, "principal", "p", "", "loan amount")
	f.Float64VarP(&opts.rate, "rate", "r", 0, "annual interest rate in percent (9.5 = 9.5%)")
	f.Float64VarP(&opts.tenure, "tenure", "t", 0, "loan tenure")
	f.StringVarP(&opts.unit, "unit", "u", "months", "tenure unit (months, years)")
	f.StringVar(&opts.currency, "currency", "USD", "display currency code")
	f.StringVar(&opts.locale, "locale", "", "digit grouping locale, e.g. en-IN")
	f.StringVarP(&opts.format, "format", "f", "text", "output format (text, json)")
	f.BoolVar(&opts.schedule, "schedule", false, "print the amortization schedule")
	_ = c.MarkFlagRequired("principal")
	_ = c.MarkFlagRequired("tenure")
	return c
}

func runEMI(cmd *cobra.Command, a *app, opts *emiOptions) error {
	currency, err := domain.LookupCurrency(opts.currency)
	if err != nil {
		return err
	}
	scenario := domain.LoanScenario{
		Name:              "Loan",
		Principal:         config.ParseAmount(opts.principal),
		AnnualRatePercent: opts.rate,
		Tenure:            opts.tenure,
		TenureUnit:        opts.unit,
	}
	summary, err := a.engine().RunLoan(cmd.Context(), scenario)
	if err != nil {
		return fmt.Errorf("emi calculation failed: %w", err)
	}

	out := cmd.OutOrStdout()
	switch strings.ToLower(opts.format) {
	case "json":
		payload := struct {
			Result   domain.EMIResult         `json:"result"`
			Currency domain.Currency          `json:"currency"`
			Schedule []domain.AmortizationRow `json:"schedule,omitempty"`
		}{Result: summary.EMI, Currency: currency}
		if opts.schedule {
			payload.Schedule = summary.Schedule
		}
		return writeJSON(out, payload)
	case "text":
	default:
		return fmt.Errorf("unknown format %q (want text or json)", opts.format)
	}

	cf := output.NewCurrencyFormatter(currency.Symbol, opts.locale)
	emi := summary.EMI
	fmt.Fprintf(out, "Loan Amount:     %s\n", cf.Precise(decimal.NewFromFloat(emi.Principal)))
	fmt.Fprintf(out, "Interest Rate:   %s per year\n", output.FormatRate(emi.AnnualRatePercent))
	fmt.Fprintf(out, "Tenure:          %s (%d months)\n", summary.TenureLabel, emi.TenureMonths)
	fmt.Fprintf(out, "Monthly EMI:     %s\n", cf.Precise(decimal.NewFromFloat(emi.MonthlyEMI)))
	fmt.Fprintf(out, "Total Interest:  %s\n", cf.Precise(decimal.NewFromFloat(emi.TotalInterest)))
	fmt.Fprintf(out, "Total Payment:   %s\n", cf.Precise(decimal.NewFromFloat(emi.TotalPayment)))
	fmt.Fprintf(out, "Breakdown:       %s principal, %s interest\n", output.FormatPercentage(summary.PrincipalShare), output.FormatPercentage(summary.InterestShare))

	if opts.schedule {
		fmt.Fprintln(out)
		comparison := &domain.LoanComparison{Currency: currency, Locale: opts.locale, Loans: []domain.LoanSummary{*summary}}
		table, err := output.ScheduleFormatter{}.Format(comparison)
		if err != nil {
			return err
		}
		_, err = out.Write(table)
		return err
	}
	return nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
