package cmd

import (
	"fmt"
	"math"

	"github.com/rpgo/refi-calculator/internal/calculation"
	"github.com/rpgo/refi-calculator/internal/output"
	"github.com/spf13/cobra"
)

func newPaymentCmd() *cobra.Command {
	var (
		amount string
		fees   string
		rate   float64
		years  float64
	)

	cmd := &cobra.Command{
		Use:   "payment",
		Short: "Monthly payment needed to pay off a loan in a number of years",
		Example: `  refi payment --amount 300,000 --rate 0.04 --years 30
  refi payment --amount 250000 --rate 0.035 --years 15 --fees 400`,
		RunE: func(cmd *cobra.Command, args []string) error {
			principal, err := parseAmount("amount", amount)
			if err != nil {
				return err
			}
			feeValue, err := parseAmount("fees", fees)
			if err != nil {
				return err
			}

			payment, err := calculation.MonthlyPayment(principal, rate, years, feeValue)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Monthly payment: %s\n", output.FormatAmount(payment))
			fmt.Fprintf(cmd.OutOrStdout(), "Payments: %d\n", int(math.Round(years*12)))
			return nil
		},
	}

	cmd.Flags().StringVar(&amount, "amount", "", "amount financed")
	cmd.Flags().Float64Var(&rate, "rate", 0, "annual interest rate, e.g. 0.04")
	cmd.Flags().Float64Var(&years, "years", 0, "years to pay off the loan")
	cmd.Flags().StringVar(&fees, "fees", "0", "monthly fees that do not reduce the balance (taxes, insurance)")
	_ = cmd.MarkFlagRequired("amount")
	_ = cmd.MarkFlagRequired("rate")
	_ = cmd.MarkFlagRequired("years")

	return cmd
}

func newTermCmd() *cobra.Command {
	var (
		amount  string
		payment string
		fees    string
		rate    float64
		after   int
	)

	cmd := &cobra.Command{
		Use:   "term",
		Short: "Number of payments needed to pay off a loan at a given payment",
		Example: `  refi term --amount 200000 --rate 0.05 --payment 1500
  refi term --amount 200000 --rate 0.05 --payment 1500 --after 60`,
		RunE: func(cmd *cobra.Command, args []string) error {
			principal, err := parseAmount("amount", amount)
			if err != nil {
				return err
			}
			paymentValue, err := parseAmount("payment", payment)
			if err != nil {
				return err
			}
			feeValue, err := parseAmount("fees", fees)
			if err != nil {
				return err
			}

			months, err := calculation.NumPayments(principal, rate, paymentValue, feeValue)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Payments: %.2f (%d whole months)\n", months, int(math.Ceil(months)))

			if after > 0 {
				balance, err := calculation.RemainingBalance(principal, rate, paymentValue-feeValue, float64(after))
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "Balance after %d months: %s\n", after, output.FormatAmount(math.Max(balance, 0)))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&amount, "amount", "", "amount financed")
	cmd.Flags().Float64Var(&rate, "rate", 0, "annual interest rate, e.g. 0.05")
	cmd.Flags().StringVar(&payment, "payment", "", "monthly payment")
	cmd.Flags().StringVar(&fees, "fees", "0", "part of the payment that goes to fees (taxes, insurance)")
	cmd.Flags().IntVar(&after, "after", 0, "also report the remaining balance after this many months")
	_ = cmd.MarkFlagRequired("amount")
	_ = cmd.MarkFlagRequired("rate")
	_ = cmd.MarkFlagRequired("payment")

	return cmd
}
