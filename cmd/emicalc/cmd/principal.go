package cmd

import (
	"fmt"

	"github.com/emicalc/loan-calculator/internal/calculation"
	"github.com/emicalc/loan-calculator/internal/config"
	"github.com/emicalc/loan-calculator/internal/domain"
	"github.com/emicalc/loan-calculator/internal/output"
	"github.com/emicalc/loan-calculator/pkg/tenure"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

func newPrincipalCmd(a *app) *cobra.Command {
	var (
		emi      string
		rate     float64
		tenureV  float64
		unit     string
		currency string
	)
	c := &cobra.Command{
		Use:   "principal",
		Short: "Find the loan amount a monthly installment repays",
		Long: `Invert the EMI formula: given an installment, an annual rate and a tenure,
print the principal it pays off.

Example:
  emicalc principal --emi 1887.79 --rate 9 --tenure 14`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cur, err := domain.LookupCurrency(currency)
			if err != nil {
				return err
			}
			u, err := tenure.ParseUnit(unit)
			if err != nil {
				return err
			}
			months, err := tenure.ToMonths(tenureV, u)
			if err != nil {
				return err
			}
			principal, err := calculation.PrincipalFromEMI(config.ParseAmount(emi), rate, months)
			if err != nil {
				return fmt.Errorf("principal calculation failed: %w", err)
			}
			a.logger.Debug("inverted EMI", "emi", emi, "months", months, "principal", principal)
			cf := output.NewCurrencyFormatter(cur.Symbol, "")
			fmt.Fprintf(cmd.OutOrStdout(), "Principal: %s\n", cf.Precise(decimal.NewFromFloat(principal)))
			return nil
		},
	}
	f := c.Flags()
	f.StringVar(&emi, "emi", "", "monthly installment")
	f.Float64VarP(&rate, "rate", "r", 0, "annual interest rate in percent")
	f.Float64VarP(&tenureV, "tenure", "t", 0, "loan tenure")
	f.StringVarP(&unit, "unit", "u", "months", "tenure unit (months, years)")
	f.StringVar(&currency, "currency", "USD", "display currency code")
	_ = c.MarkFlagRequired("emi")
	_ = c.MarkFlagRequired("tenure")
	return c
}
