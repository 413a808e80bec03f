package calculation

import (
	"context"

	"github.com/rpgo/refi-calculator/internal/domain"
)

// DefaultMaxWorkers bounds how many options are simulated concurrently.
const DefaultMaxWorkers = 4

// RefinanceEngine runs simulations and comparisons under a shared set of
// assumptions.
type RefinanceEngine struct {
	InflationRate float64 // annual, continuously compounded when discounting
	MaxWorkers    int     // <= 1 runs comparisons sequentially
	Debug         bool    // log intermediate values through Logger
	Logger        Logger
}

// NewRefinanceEngine creates an engine with the default inflation assumption.
func NewRefinanceEngine() *RefinanceEngine {
	return &RefinanceEngine{
		InflationRate: DefaultInflationRate,
		MaxWorkers:    DefaultMaxWorkers,
		Logger:        NopLogger{},
	}
}

// NewRefinanceEngineWithConfig creates an engine using the inflation rate and
// worker count from the input configuration, falling back to defaults.
func NewRefinanceEngineWithConfig(config *domain.Configuration) *RefinanceEngine {
	engine := NewRefinanceEngine()
	if config == nil {
		return engine
	}
	if config.InflationRate != nil {
		engine.InflationRate = config.InflationRate.InexactFloat64()
	}
	if config.MaxWorkers > 0 {
		engine.MaxWorkers = config.MaxWorkers
	}
	return engine
}

// SetLogger sets the logger for the engine. If nil is provided, a no-op logger is used.
func (re *RefinanceEngine) SetLogger(l Logger) {
	if l == nil {
		re.Logger = NopLogger{}
		return
	}
	re.Logger = l
}

func (re *RefinanceEngine) logger() Logger {
	if re.Logger == nil {
		return NopLogger{}
	}
	return re.Logger
}

// Simulate runs a single option against the given budget and horizon.
func (re *RefinanceEngine) Simulate(ctx context.Context, option domain.RefinanceOption, monthlyCash float64, growth domain.GrowthRate, horizon int) (*domain.SimulationResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	result, err := SimulateDetailed(option, monthlyCash, growth, horizon, re.InflationRate)
	if err != nil {
		re.logger().Errorf("simulation failed for payment %.2f: %v", option.Payment, err)
		return nil, err
	}
	if re.Debug {
		re.logger().Debugf("simulated payment=%.2f term=%d cost=%.2f cash=%.2f horizon=%d: terminal=%.2f pv=%.2f",
			option.Payment, option.Term, option.Cost, monthlyCash, horizon, result.TerminalWealth, result.PresentValue)
	}
	return result, nil
}
