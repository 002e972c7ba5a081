package cmd

import (
	"fmt"
	"math"
	"strconv"

	"github.com/emicalc/loan-calculator/internal/calculation"
	"github.com/emicalc/loan-calculator/internal/config"
	"github.com/emicalc/loan-calculator/internal/domain"
	"github.com/emicalc/loan-calculator/internal/output"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

type tvmOptions struct {
	amount     string
	rate       float64
	periods    float64
	years      float64
	frequency  int
	currency   string
	locale     string
	jsonOutput bool
}

func newTVMCmd(a *app) *cobra.Command {
	opts := &tvmOptions{}
	c := &cobra.Command{
		Use:   "tvm",
		Short: "Time-value-of-money formulas",
		Long: `Evaluate present value, future value, annuities, perpetuities and
compound growth. --rate is a percentage per period (5 = 5%).`,
	}
	c.PersistentFlags().StringVarP(&opts.amount, "amount", "a", "", "known amount: future value, present value, payment or principal")
	c.PersistentFlags().Float64VarP(&opts.rate, "rate", "r", 0, "interest rate per period in percent")
	c.PersistentFlags().StringVar(&opts.currency, "currency", "USD", "display currency code")
	c.PersistentFlags().StringVar(&opts.locale, "locale", "", "digit grouping locale, e.g. de")
	c.PersistentFlags().BoolVar(&opts.jsonOutput, "json", false, "print the result as JSON")

	sub := []struct {
		use, short string
		kind       domain.TVMKind
	}{
		{"pv", "Present value of a future sum", domain.TVMPresentValue},
		{"fv", "Future value of a present sum", domain.TVMFutureValue},
		{"annuity-pv", "Present value of an ordinary annuity", domain.TVMAnnuityPresentValue},
		{"annuity-fv", "Future value of an ordinary annuity", domain.TVMAnnuityFutureValue},
		{"perpetuity", "Present value of a level perpetuity", domain.TVMPerpetuity},
		{"compound", "Grow a principal with periodic compounding", domain.TVMCompoundGrowth},
	}
	for _, s := range sub {
		kind := s.kind
		sc := &cobra.Command{
			Use:   s.use,
			Short: s.short,
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return runTVM(cmd, a, opts, kind)
			},
		}
		switch kind {
		case domain.TVMPerpetuity:
		case domain.TVMCompoundGrowth:
			sc.Flags().Float64Var(&opts.years, "years", 0, "years of growth")
			sc.Flags().IntVar(&opts.frequency, "frequency", 12, "compoundings per year")
		default:
			sc.Flags().Float64VarP(&opts.periods, "periods", "n", 0, "number of periods")
		}
		c.AddCommand(sc)
	}
	return c
}

func runTVM(cmd *cobra.Command, a *app, opts *tvmOptions, kind domain.TVMKind) error {
	currency, err := domain.LookupCurrency(opts.currency)
	if err != nil {
		return err
	}
	req := domain.TVMRequest{
		Kind:   kind,
		Amount: config.ParseAmount(opts.amount),
		Rate:   opts.rate / 100,
	}
	switch kind {
	case domain.TVMCompoundGrowth:
		req.Years = opts.years
		req.CompoundingsPerYear = opts.frequency
	case domain.TVMPerpetuity:
	default:
		req.Periods = opts.periods
	}
	res, err := calculation.EvaluateTVM(req)
	if err != nil {
		return fmt.Errorf("%s failed: %w", kind, err)
	}
	a.logger.Debug("evaluated tvm", "kind", kind, "value", res.Value)

	out := cmd.OutOrStdout()
	if opts.jsonOutput {
		return writeJSON(out, res)
	}
	cf := output.NewCurrencyFormatter(currency.Symbol, opts.locale)
	fmt.Fprintf(out, "%s: %s\n", kind, amountOrRaw(cf, res.Value))
	if kind == domain.TVMCompoundGrowth {
		fmt.Fprintf(out, "interest_earned: %s\n", amountOrRaw(cf, res.InterestEarned))
	}
	return nil
}

// amountOrRaw prints v with cents, or spelled out when a formula overflowed.
func amountOrRaw(cf output.CurrencyFormatter, v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return strconv.FormatFloat(v, 'f', 2, 64)
	}
	return cf.Precise(decimal.NewFromFloat(v))
}
