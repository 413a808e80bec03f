package cmd

import (
	"fmt"
	"io"

	"github.com/rpgo/refi-calculator/internal/calculation"
	money "github.com/rpgo/refi-calculator/pkg/decimal"
	"github.com/spf13/cobra"
)

// globalOptions holds the persistent flags shared by every subcommand.
type globalOptions struct {
	debug     bool
	inflation float64
}

var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	opts := &globalOptions{}
	root := &cobra.Command{
		Use:   "refi",
		Short: "Compare mortgage refinancing options",
		Long: `refi compares mortgage refinancing options by simulating each one
against investing the monthly surplus in an external security, and reports the
present value of the resulting wealth.

To include the mortgage you already have, add an option with its current
payment, the number of payments remaining, and no cost.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().BoolVar(&opts.debug, "debug", false, "log intermediate calculation values to stderr")
	root.PersistentFlags().Float64Var(&opts.inflation, "inflation", calculation.DefaultInflationRate, "assumed annual inflation rate used for present value")

	root.AddCommand(
		newCompareCmd(opts),
		newSimulateCmd(opts),
		newPaymentCmd(),
		newTermCmd(),
		newExampleCmd(),
	)
	return root
}

// Execute runs the root command.
func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		printError(rootCmd.ErrOrStderr(), err)
		return err
	}
	return nil
}

func printError(w io.Writer, err error) {
	fmt.Fprintf(w, "Error: %v\n", err)
}

// configure applies the persistent flags to an engine. An explicit
// --inflation overrides the engine's configured rate.
func (g *globalOptions) configure(cmd *cobra.Command, engine *calculation.RefinanceEngine) *calculation.RefinanceEngine {
	if cmd.Flags().Changed("inflation") {
		engine.InflationRate = g.inflation
	}
	engine.Debug = g.debug
	engine.SetLogger(newConsoleLogger(cmd.ErrOrStderr(), g.debug))
	return engine
}

// parseAmount reads a currency flag such as "250,000" or "$1,432.25".
func parseAmount(flag, value string) (float64, error) {
	m, err := money.NewMoneyFromString(value)
	if err != nil {
		return 0, fmt.Errorf("invalid --%s %q: %w", flag, value, err)
	}
	return m.Float64(), nil
}
