package output

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/rpgo/refi-calculator/internal/domain"
)

// ConsoleNarrativeFormatter explains each scenario in plain language: what is
// paid toward the mortgage, what goes into the investment, and what it is
// worth at the end.
type ConsoleNarrativeFormatter struct{}

func (c ConsoleNarrativeFormatter) Name() string { return "console" }

func (c ConsoleNarrativeFormatter) Format(results *domain.ComparisonResult) ([]byte, error) {
	var buf bytes.Buffer

	fmt.Fprintln(&buf)
	fmt.Fprintf(&buf, "Suppose you have %s available each month for the next %d months,\n",
		FormatAmount(results.MonthlyCash), results.HorizonMonths)
	fmt.Fprintf(&buf, "and access to a security yielding %s\n", growthPhrase(results.GrowthRate))

	for i, result := range results.Results {
		fmt.Fprintln(&buf)
		fmt.Fprintf(&buf, "SCENARIO %d", i+1)
		if result.Option.Name != "" {
			fmt.Fprintf(&buf, ": %s", result.Option.Name)
		}
		fmt.Fprintln(&buf)
		fmt.Fprintln(&buf, strings.Repeat("-", 10))
		fmt.Fprintln(&buf)
		WriteSimulationNarrative(&buf, result)
	}

	fmt.Fprintln(&buf)
	rec := AnalyzeComparison(results)
	if rec.Conclusive {
		fmt.Fprintln(&buf, "RECOMMENDATION")
		fmt.Fprintln(&buf, "==============")
		fmt.Fprintf(&buf, "Best option: %s (%s in today's dollars)\n", rec.OptionName, FormatAmount(rec.PresentValue))
		if rec.HasRunnerUp {
			fmt.Fprintf(&buf, "Ahead of %s by %s\n", rec.RunnerUpName, FormatAmount(rec.AdvantageOverRunnerUp))
		}
	} else {
		fmt.Fprintln(&buf, "No option ends with a positive present value; the comparison is inconclusive.")
	}

	return buf.Bytes(), nil
}

// WriteSimulationNarrative writes the schedule and outcome of one simulated option.
func WriteSimulationNarrative(w io.Writer, result domain.SimulationResult) {
	fmt.Fprintf(w, "Make an initial payment of %s\n", FormatAmount(result.Option.Cost))
	fmt.Fprintf(w, "First %d months:\n", result.PaymentMonths())
	fmt.Fprintf(w, "    Spend %s on a mortgage payment.\n", FormatAmount(result.Option.Payment))
	fmt.Fprintf(w, "    Put %s in the security.\n", FormatAmount(result.Surplus()))
	if result.PaidOffMonths() > 0 {
		fmt.Fprintf(w, "Last %d months:\n", result.PaidOffMonths())
		fmt.Fprintf(w, "    Spend %s on a mortgage payment.\n", FormatAmount(0))
		fmt.Fprintf(w, "    Put %s in the security.\n", FormatAmount(result.MonthlyCash))
	}
	fmt.Fprintf(w, "After %d months, you have %s in the security.\n", result.HorizonMonths, FormatAmount(result.TerminalWealth))
	fmt.Fprintf(w, "In today's dollars, that's %s.\n", FormatAmount(result.PresentValue))
}

func growthPhrase(growth string) string {
	if growth == "" {
		return "the annual return you provided"
	}
	return growth
}
