package cmd

import (
	"fmt"

	"github.com/rpgo/refi-calculator/internal/calculation"
	"github.com/rpgo/refi-calculator/internal/config"
	"github.com/rpgo/refi-calculator/internal/domain"
	"github.com/rpgo/refi-calculator/internal/output"
	"github.com/spf13/cobra"
)

func newSimulateCmd(global *globalOptions) *cobra.Command {
	var (
		payment  string
		cost     string
		cash     string
		term     int
		rate     float64
		schedule string
		horizon  int
		silent   bool
	)

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Simulate a single refinance option",
		Long: `Simulate pays the option's mortgage from a monthly cash budget for the
given horizon, invests what is left each month, and reports the present value
of the investment at the end.`,
		Example: `  refi simulate --payment 1432.25 --term 360 --cost 5000 --rate 0.05
  refi simulate --payment 1785.23 --term 180 --cash 2000 --horizon 360 --rate 0.06`,
		RunE: func(cmd *cobra.Command, args []string) error {
			paymentValue, err := parseAmount("payment", payment)
			if err != nil {
				return err
			}
			costValue, err := parseAmount("cost", cost)
			if err != nil {
				return err
			}
			cashValue := paymentValue
			if cmd.Flags().Changed("cash") {
				if cashValue, err = parseAmount("cash", cash); err != nil {
					return err
				}
			}
			if !cmd.Flags().Changed("horizon") {
				horizon = term
			}

			growth := domain.ConstantRate(rate)
			if schedule != "" {
				rates, err := config.LoadRateSchedule(schedule)
				if err != nil {
					return err
				}
				growth = config.ScheduleGrowth(rates)
			}

			option := domain.NewRefinanceOption(paymentValue, term, costValue)
			engine := global.configure(cmd, calculation.NewRefinanceEngine())
			result, err := engine.Simulate(cmd.Context(), option, cashValue, growth, horizon)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if silent {
				fmt.Fprintln(out, output.FormatAmount(result.PresentValue))
				return nil
			}
			output.WriteSimulationNarrative(out, *result)
			return nil
		},
	}

	cmd.Flags().StringVar(&payment, "payment", "", "monthly mortgage payment")
	cmd.Flags().IntVar(&term, "term", 0, "number of monthly payments")
	cmd.Flags().StringVar(&cost, "cost", "0", "one-time up-front cost")
	cmd.Flags().StringVar(&cash, "cash", "", "monthly cash available (default: the payment)")
	cmd.Flags().Float64Var(&rate, "rate", 0, "annual investment growth rate")
	cmd.Flags().StringVar(&schedule, "schedule", "", "CSV file of per-month growth rates (overrides --rate)")
	cmd.Flags().IntVar(&horizon, "horizon", 0, "months to simulate (default: the term)")
	cmd.Flags().BoolVarP(&silent, "silent", "s", false, "print only the present value")
	_ = cmd.MarkFlagRequired("payment")
	_ = cmd.MarkFlagRequired("term")

	return cmd
}
