package output

import (
	"fmt"

	"github.com/rpgo/refi-calculator/internal/domain"
)

// GenerateAssumptions lists the modeling assumptions behind a comparison.
func GenerateAssumptions(results *domain.ComparisonResult) []string {
	return []string{
		fmt.Sprintf("Monthly cash available: %s (the largest payment among the options)", FormatAmount(results.MonthlyCash)),
		fmt.Sprintf("Horizon: %d months (the longest term among the options)", results.HorizonMonths),
		fmt.Sprintf("Investment growth: %s, compounded monthly", growthPhrase(results.GrowthRate)),
		fmt.Sprintf("Inflation: %s annually, compounded continuously", FormatRate(results.InflationRate)),
		"Home value is the same under every option and is not counted",
	}
}
