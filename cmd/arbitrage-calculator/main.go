package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/finarb/arbitrage-calculator/internal/calculation"
	"github.com/finarb/arbitrage-calculator/internal/config"
	"github.com/finarb/arbitrage-calculator/internal/output"
)

const (
	minHorizonYears = 1
	maxHorizonYears = 30
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "arbitrage-calculator",
		Short:         "Project loan amortization against SIP growth and recommend surplus allocation",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newCalculateCmd(), newExampleCmd())
	return root
}

func newCalculateCmd() *cobra.Command {
	var (
		inputFile string
		format    string
		years     int
		debug     bool
	)

	cmd := &cobra.Command{
		Use:   "calculate",
		Short: "Run the projection engine against a portfolio file",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logrus.New()
			logger.SetOutput(cmd.ErrOrStderr())
			if debug {
				logger.SetLevel(logrus.DebugLevel)
			}

			parser := config.NewInputParser()
			cfg, err := parser.LoadFromFile(inputFile)
			if err != nil {
				return fmt.Errorf("load input: %w", err)
			}

			horizon := cfg.Assumptions.ProjectionYears
			if years > 0 {
				horizon = years
			}
			if horizon < minHorizonYears {
				horizon = minHorizonYears
			}
			if horizon > maxHorizonYears {
				horizon = maxHorizonYears
			}

			formatter := output.GetFormatterByName(format)
			if formatter == nil {
				return fmt.Errorf("unknown output format %q", format)
			}

			engine := calculation.NewArbitrageEngineWithAssumptions(cfg.Assumptions)
			engine.SetLogger(logger)

			result, err := engine.Project(cmd.Context(), &cfg.Portfolio, horizon)
			if err != nil {
				return fmt.Errorf("projection failed: %w", err)
			}

			data, err := formatter.Format(result)
			if err != nil {
				return fmt.Errorf("format result: %w", err)
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}

	cmd.Flags().StringVarP(&inputFile, "input", "i", "portfolio.yaml", "portfolio YAML file")
	cmd.Flags().StringVarP(&format, "format", "f", "console", "output format: console, json, csv")
	cmd.Flags().IntVarP(&years, "years", "y", 0, "projection horizon in years (overrides the input file)")
	cmd.Flags().BoolVar(&debug, "debug", false, "enable debug logging")
	return cmd
}

func newExampleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "example",
		Short: "Print an example portfolio file",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.NewInputParser().CreateExampleConfiguration()
			data, err := yaml.Marshal(cfg)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
}
