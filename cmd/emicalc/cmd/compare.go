package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/emicalc/loan-calculator/internal/config"
	"github.com/emicalc/loan-calculator/internal/output"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newCompareCmd(a *app) *cobra.Command {
	var (
		configFile string
		format     string
		outputPath string
		outputDir  string
		debug      bool
	)
	c := &cobra.Command{
		Use:   "compare",
		Short: "Run every loan and TVM request of a scenario file",
		Long: `Load a YAML, JSON or TOML scenario file, compute each loan's installment and
schedule, evaluate its TVM requests and render a report.

Console formats print to stdout unless --output is given. File formats
(csv, detailed-csv, html, json) are written to --output, or to a
timestamped file in --dir. "all" writes the console, detailed CSV and
HTML reports to --dir.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			parser := config.NewInputParser()
			cfg, err := parser.LoadFromFile(configFile)
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}

			engine := a.engine()
			engine.Debug = debug
			results, err := engine.RunScenariosContext(cmd.Context(), cfg)
			if err != nil {
				return fmt.Errorf("calculation failed: %w", err)
			}
			a.logger.Info("scenarios computed", "loans", len(results.Loans), "tvm", len(results.TVM))

			name := output.NormalizeFormatName(format)
			out := cmd.OutOrStdout()
			switch {
			case name == "all":
				paths, err := output.GenerateReportIn(results, name, outputDir)
				for _, p := range paths {
					fmt.Fprintf(out, "Report written to %s\n", p)
				}
				return err
			case outputPath != "":
				f := output.GetFormatterByName(name)
				if f == nil {
					_, err := output.GenerateReportIn(results, format, outputDir)
					return err
				}
				if err := output.WriteFormattedTo(f, results, outputPath); err != nil {
					return err
				}
				fmt.Fprintf(out, "Report written to %s\n", outputPath)
				return nil
			case isConsoleFormat(name):
				b, err := output.GetFormatterByName(name).Format(results)
				if err != nil {
					return err
				}
				_, err = out.Write(b)
				return err
			default:
				paths, err := output.GenerateReportIn(results, format, outputDir)
				if err != nil {
					return err
				}
				for _, p := range paths {
					fmt.Fprintf(out, "Report written to %s\n", p)
				}
				return nil
			}
		},
	}
	f := c.Flags()
	f.StringVarP(&configFile, "config", "c", "", "scenario file (.yaml, .json or .toml)")
	f.StringVarP(&format, "format", "f", "console", "report format")
	f.StringVarP(&outputPath, "output", "o", "", "write the report to this path")
	f.StringVar(&outputDir, "dir", ".", "directory for timestamped reports")
	f.BoolVar(&debug, "debug", false, "log each loan's final-period drift")
	_ = c.MarkFlagRequired("config")
	return c
}

func isConsoleFormat(name string) bool {
	switch name {
	case "console", "console-lite", "schedule":
		return true
	}
	return false
}

func newExampleConfigCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "example-config [path]",
		Short: "Write a sample scenario file",
		Long: `Write a sample scenario file covering every loan type and TVM formula.
Without a path the YAML is printed to stdout.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			example := config.NewInputParser().CreateExampleConfiguration()
			if len(args) == 0 {
				b, err := yaml.Marshal(example)
				if err != nil {
					return err
				}
				_, err = cmd.OutOrStdout().Write(b)
				return err
			}
			path := args[0]
			if dir := filepath.Dir(path); dir != "." {
				if err := os.MkdirAll(dir, 0755); err != nil {
					return err
				}
			}
			if err := output.SaveConfiguration(example, path); err != nil {
				return fmt.Errorf("failed to write example configuration: %w", err)
			}
			a.logger.Debug("example configuration written", "path", path)
			fmt.Fprintf(cmd.OutOrStdout(), "Example configuration written to %s\n", path)
			return nil
		},
	}
}
