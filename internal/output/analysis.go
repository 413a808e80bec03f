package output

import (
	"github.com/rpgo/refi-calculator/internal/domain"
)

// Recommendation summarizes the selected option and its margin over the alternatives.
type Recommendation struct {
	Conclusive            bool
	OptionName            string
	PresentValue          float64
	HasRunnerUp           bool
	RunnerUpName          string
	AdvantageOverRunnerUp float64
}

// AnalyzeComparison describes the comparison's selection. The runner-up is the
// best present value among the remaining options.
func AnalyzeComparison(results *domain.ComparisonResult) Recommendation {
	best, ok := results.Best()
	if !ok {
		return Recommendation{}
	}
	bestResult := results.Results[results.BestIndex]
	rec := Recommendation{
		Conclusive:   true,
		OptionName:   best.Label(results.BestIndex),
		PresentValue: bestResult.PresentValue,
	}

	runnerUp := -1
	for i, r := range results.Results {
		if i == results.BestIndex {
			continue
		}
		if runnerUp < 0 || r.PresentValue > results.Results[runnerUp].PresentValue {
			runnerUp = i
		}
	}
	if runnerUp >= 0 {
		rec.HasRunnerUp = true
		rec.RunnerUpName = results.Results[runnerUp].Option.Label(runnerUp)
		rec.AdvantageOverRunnerUp = bestResult.PresentValue - results.Results[runnerUp].PresentValue
	}
	return rec
}
