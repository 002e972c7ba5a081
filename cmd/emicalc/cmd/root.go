package cmd

import (
	"fmt"
	"log/slog"

	"github.com/emicalc/loan-calculator/internal/calculation"
	"github.com/emicalc/loan-calculator/internal/logging"
	"github.com/spf13/cobra"
)

// app carries state shared by every subcommand of one invocation.
type app struct {
	logLevel  string
	logFormat string
	logger    *slog.Logger
}

// engine returns a calculation engine logging through the app logger.
func (a *app) engine() *calculation.CalculationEngine {
	e := calculation.NewCalculationEngine()
	if a.logger != nil {
		e.SetLogger(logging.NewCalcLogger(a.logger))
	}
	return e
}

// NewRootCmd builds the emicalc command tree.
func NewRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "emicalc",
		Short: "Loan EMI, amortization and time-value-of-money calculator",
		Long: `emicalc computes the fixed monthly installment (EMI) of an amortizing
loan, its month-by-month repayment schedule and the classic
time-value-of-money formulas.

Commands:
  emi             - installment, totals and optional schedule for one loan
  principal       - loan amount a given installment repays
  tvm             - present/future value, annuities, perpetuity, compounding
  compare         - run a scenario file and render a report
  example-config  - write a sample scenario file
  serve           - run the JSON API`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			a.logger = logging.Init(logging.Config{
				Level:  a.logLevel,
				Format: a.logFormat,
				Output: cmd.ErrOrStderr(),
			})
		},
	}

	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "warn", "log level (debug, info, warn, error)")
	root.PersistentFlags().StringVar(&a.logFormat, "log-format", "text", "log format (text, json)")

	root.AddCommand(
		newEMICmd(a),
		newPrincipalCmd(a),
		newTVMCmd(a),
		newCompareCmd(a),
		newExampleConfigCmd(a),
		newServeCmd(a),
		newVersionCmd(),
	)
	return root
}

// Execute runs the root command against os.Args.
func Execute() error {
	root := NewRootCmd()
	if err := root.Execute(); err != nil {
		printError(root, err)
		return err
	}
	return nil
}

func printError(cmd *cobra.Command, err error) {
	fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
}
