package calculation

import (
	"context"
	"fmt"
	"sync"

	"github.com/rpgo/refi-calculator/internal/domain"
)

// CompareOptions simulates every option with the same monthly budget (the
// largest payment among them) over the same horizon (the longest term) and
// returns the option with the greatest present value. It returns nil when no
// option ends with a positive present value.
func CompareOptions(growth domain.GrowthRate, options []domain.RefinanceOption, inflation float64) (*domain.RefinanceOption, error) {
	engine := NewRefinanceEngine()
	engine.InflationRate = inflation
	engine.MaxWorkers = 1

	comparison, err := engine.Compare(context.Background(), growth, options)
	if err != nil {
		return nil, err
	}
	best, ok := comparison.Best()
	if !ok {
		return nil, nil
	}
	return &best, nil
}

// SharedBudget returns the monthly cash budget and horizon used to compare options.
func SharedBudget(options []domain.RefinanceOption) (monthlyCash float64, horizon int, err error) {
	if len(options) == 0 {
		return 0, 0, ErrNoOptions
	}
	monthlyCash, horizon = options[0].Payment, options[0].Term
	for _, option := range options[1:] {
		if option.Payment > monthlyCash {
			monthlyCash = option.Payment
		}
		if option.Term > horizon {
			horizon = option.Term
		}
	}
	return monthlyCash, horizon, nil
}

// Compare runs every option under the shared budget and horizon. Simulations
// run concurrently up to MaxWorkers; selection always follows input order.
func (re *RefinanceEngine) Compare(ctx context.Context, growth domain.GrowthRate, options []domain.RefinanceOption) (*domain.ComparisonResult, error) {
	monthlyCash, horizon, err := SharedBudget(options)
	if err != nil {
		return nil, err
	}
	if re.Debug {
		re.logger().Debugf("comparing %d options: monthly cash %.2f over %d months", len(options), monthlyCash, horizon)
	}

	results, err := re.simulateAll(ctx, options, monthlyCash, growth, horizon)
	if err != nil {
		return nil, err
	}

	comparison := &domain.ComparisonResult{
		MonthlyCash:   monthlyCash,
		HorizonMonths: horizon,
		GrowthRate:    growth.String(),
		InflationRate: re.InflationRate,
		Results:       results,
		BestIndex:     selectBest(results),
	}
	if comparison.BestIndex < 0 {
		re.logger().Warnf("no option produced a positive present value; comparison is inconclusive")
	} else {
		best := results[comparison.BestIndex]
		re.logger().Infof("best option: %s (present value %.2f)", best.Option.Label(comparison.BestIndex), best.PresentValue)
	}
	return comparison, nil
}

// selectBest keeps the first strictly greater present value, starting from a
// baseline of zero.
func selectBest(results []domain.SimulationResult) int {
	best := -1
	maxValue := 0.0
	for i, result := range results {
		if result.PresentValue > maxValue {
			maxValue = result.PresentValue
			best = i
		}
	}
	return best
}

func (re *RefinanceEngine) simulateAll(ctx context.Context, options []domain.RefinanceOption, monthlyCash float64, growth domain.GrowthRate, horizon int) ([]domain.SimulationResult, error) {
	results := make([]domain.SimulationResult, len(options))
	errs := make([]error, len(options))

	workers := re.MaxWorkers
	if workers < 1 {
		workers = 1
	}

	var wg sync.WaitGroup
	semaphore := make(chan struct{}, workers)

	for i, option := range options {
		if err := ctx.Err(); err != nil {
			errs[i] = err
			break
		}
		wg.Add(1)
		go func(index int, option domain.RefinanceOption) {
			defer wg.Done()
			semaphore <- struct{}{}
			defer func() { <-semaphore }()

			result, err := re.Simulate(ctx, option, monthlyCash, growth, horizon)
			if err != nil {
				errs[index] = err
				return
			}
			results[index] = *result
		}(i, option)
	}

	wg.Wait()

	for i, err := range errs {
		if err != nil {
			return nil, fmt.Errorf("scenario %d: %w", i+1, err)
		}
	}
	return results, nil
}
