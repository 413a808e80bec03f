package calculation

import (
	"context"
	"testing"

	"github.com/rpgo/refi-calculator/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompareOptions_DominantOptionWins(t *testing.T) {
	cheap := domain.RefinanceOption{Name: "A", Payment: 1200, Term: 180, Cost: 1000}
	expensive := domain.RefinanceOption{Name: "B", Payment: 1500, Term: 360, Cost: 4000}

	for _, order := range [][]domain.RefinanceOption{{cheap, expensive}, {expensive, cheap}} {
		best, err := CompareOptions(domain.ConstantRate(0.05), order, DefaultInflationRate)
		require.NoError(t, err)
		require.NotNil(t, best)
		assert.Equal(t, "A", best.Name)
	}
}

func TestCompareOptions_SingleOption(t *testing.T) {
	option := domain.NewRefinanceOption(1500, 120, 0)

	// The budget equals the payment, so wealth only comes from the cost.
	best, err := CompareOptions(domain.ConstantRate(0.05), []domain.RefinanceOption{option}, DefaultInflationRate)
	require.NoError(t, err)
	assert.Nil(t, best, "zero present value never beats the zero baseline")

	option.Cost = 250
	best, err = CompareOptions(domain.ConstantRate(0.05), []domain.RefinanceOption{option}, DefaultInflationRate)
	require.NoError(t, err)
	assert.Nil(t, best)
}

func TestCompareOptions_SingleOptionPositive(t *testing.T) {
	// A lone option spends its whole budget, so only a lender credit
	// (negative cost) leaves it with positive wealth.
	option := domain.NewRefinanceOption(1500, 120, -2000)

	best, err := CompareOptions(domain.ConstantRate(0.05), []domain.RefinanceOption{option}, DefaultInflationRate)
	require.NoError(t, err)
	require.NotNil(t, best)
	assert.Equal(t, option, *best)
}

func TestCompareOptions_AllNegativeIsInconclusive(t *testing.T) {
	options := []domain.RefinanceOption{
		domain.NewRefinanceOption(1000, 12, 5000),
		domain.NewRefinanceOption(1000, 12, 3000),
	}

	best, err := CompareOptions(domain.ConstantRate(0.05), options, DefaultInflationRate)
	require.NoError(t, err)
	assert.Nil(t, best)
}

func TestCompareOptions_TiesKeepFirst(t *testing.T) {
	first := domain.RefinanceOption{Name: "first", Payment: 1000, Term: 60}
	second := domain.RefinanceOption{Name: "second", Payment: 1000, Term: 60}
	longer := domain.RefinanceOption{Name: "longer", Payment: 1000, Term: 120}

	best, err := CompareOptions(domain.ConstantRate(0.04), []domain.RefinanceOption{longer, first, second}, DefaultInflationRate)
	require.NoError(t, err)
	require.NotNil(t, best)
	assert.Equal(t, "first", best.Name)
}

func TestCompareOptions_Empty(t *testing.T) {
	_, err := CompareOptions(domain.ConstantRate(0.05), nil, DefaultInflationRate)
	assert.ErrorIs(t, err, ErrNoOptions)
}

func TestCompareOptions_ScheduleTooShort(t *testing.T) {
	options := []domain.RefinanceOption{
		domain.NewRefinanceOption(1000, 24, 0),
		domain.NewRefinanceOption(900, 36, 0),
	}

	_, err := CompareOptions(domain.RateSchedule(make([]float64, 30)), options, DefaultInflationRate)
	assert.ErrorIs(t, err, ErrRateScheduleTooShort)
}

func TestSharedBudget(t *testing.T) {
	options := []domain.RefinanceOption{
		domain.NewRefinanceOption(1432.25, 300, 0),
		domain.NewRefinanceOption(1785.23, 180, 4000),
		domain.NewRefinanceOption(1200, 360, 6000),
	}

	cash, horizon, err := SharedBudget(options)
	require.NoError(t, err)
	assert.Equal(t, 1785.23, cash)
	assert.Equal(t, 360, horizon)

	_, _, err = SharedBudget(nil)
	assert.ErrorIs(t, err, ErrNoOptions)
}

func TestEngineCompare_ParallelMatchesSequential(t *testing.T) {
	options := []domain.RefinanceOption{
		{Name: "current", Payment: 1432.25, Term: 300},
		{Name: "15-year", Payment: 1785.23, Term: 180, Cost: 4000},
		{Name: "30-year", Payment: 1150.00, Term: 360, Cost: 6000},
		{Name: "20-year", Payment: 1540.10, Term: 240, Cost: 3000},
	}
	growth := domain.ConstantRate(0.06)

	sequential := NewRefinanceEngine()
	sequential.MaxWorkers = 1
	parallel := NewRefinanceEngine()
	parallel.MaxWorkers = 8

	want, err := sequential.Compare(context.Background(), growth, options)
	require.NoError(t, err)
	got, err := parallel.Compare(context.Background(), growth, options)
	require.NoError(t, err)

	assert.Equal(t, want, got)
	assert.Equal(t, 1785.23, got.MonthlyCash)
	assert.Equal(t, 360, got.HorizonMonths)
	require.Len(t, got.Results, len(options))
	for i, result := range got.Results {
		assert.Equal(t, options[i], result.Option)
	}
}

func TestEngineCompare_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewRefinanceEngine().Compare(ctx, domain.ConstantRate(0.05), []domain.RefinanceOption{
		domain.NewRefinanceOption(1000, 12, 0),
	})
	assert.ErrorIs(t, err, context.Canceled)
}
