package cmd

import (
	"fmt"

	"github.com/rpgo/refi-calculator/internal/calculation"
	"github.com/rpgo/refi-calculator/internal/config"
	"github.com/rpgo/refi-calculator/internal/output"
	"github.com/spf13/cobra"
)

func newCompareCmd(global *globalOptions) *cobra.Command {
	var (
		configFile string
		format     string
		silent     bool
		save       bool
	)

	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Compare the refinance options in a configuration file",
		Long: `Compare simulates every option with the same monthly budget (the largest
payment among the options) over the same horizon (the longest term), and
selects the option whose investment is worth the most in today's dollars.`,
		Example: `  refi compare --config refi.yaml
  refi compare --config refi.yaml --format csv
  refi compare --config refi.yaml --silent`,
		RunE: func(cmd *cobra.Command, args []string) error {
			parser := config.NewInputParser()
			cfg, err := parser.LoadFromFile(configFile)
			if err != nil {
				return err
			}
			options, err := parser.ResolveOptions(cfg)
			if err != nil {
				return err
			}

			engine := global.configure(cmd, calculation.NewRefinanceEngineWithConfig(cfg))
			results, err := engine.Compare(cmd.Context(), parser.ResolveGrowthRate(cfg), options)
			if err != nil {
				return fmt.Errorf("comparison failed: %w", err)
			}

			out := cmd.OutOrStdout()
			if silent {
				if best, ok := results.Best(); ok {
					fmt.Fprintln(out, best.Label(results.BestIndex))
				} else {
					fmt.Fprintln(out, "inconclusive")
				}
			} else if err := output.RenderReport(out, results, format); err != nil {
				return err
			}

			if save {
				files, err := output.GenerateReport(results, format)
				if err != nil {
					return err
				}
				for _, f := range files {
					fmt.Fprintf(cmd.ErrOrStderr(), "wrote %s\n", f)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&configFile, "config", "c", "", "refinance configuration file (YAML)")
	cmd.Flags().StringVarP(&format, "format", "f", "console", "report format: console, console-lite, csv, json, yaml")
	cmd.Flags().BoolVarP(&silent, "silent", "s", false, "print only the selected option")
	cmd.Flags().BoolVar(&save, "save", false, "also write the report to a timestamped file (format \"all\" writes every format)")
	_ = cmd.MarkFlagRequired("config")

	return cmd
}
