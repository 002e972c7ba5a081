package cmd

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/emicalc/loan-calculator/internal/server"
	"github.com/spf13/cobra"
)

func newServeCmd(a *app) *cobra.Command {
	var (
		addr       string
		rateLimit  int
		rateWindow time.Duration
	)
	c := &cobra.Command{
		Use:   "serve",
		Short: "Run the calculator JSON API",
		Long: `Serve the EMI, principal and TVM calculations over HTTP:

  GET  /healthz
  POST /v1/emi
  POST /v1/principal
  POST /v1/tvm

The server stops gracefully on SIGINT or SIGTERM.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			srv := server.New(server.Config{
				Addr:       addr,
				RateLimit:  rateLimit,
				RateWindow: rateWindow,
				Logger:     a.logger,
			})
			a.logger.Info("starting API server", "addr", addr, "rate_limit", rateLimit)
			return srv.ListenAndServe(ctx)
		},
	}
	f := c.Flags()
	f.StringVar(&addr, "addr", ":8080", "listen address")
	f.IntVar(&rateLimit, "rate-limit", 60, "requests per client per window; 0 disables limiting")
	f.DurationVar(&rateWindow, "rate-window", time.Minute, "rate limit window")
	return c
}
