package calculation

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/rpgo/refi-calculator/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingLogger struct {
	mu     sync.Mutex
	debug  []string
	info   []string
	warn   []string
	errors []string
}

func (l *recordingLogger) Debugf(format string, args ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.debug = append(l.debug, fmt.Sprintf(format, args...))
}

func (l *recordingLogger) Infof(format string, args ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.info = append(l.info, fmt.Sprintf(format, args...))
}

func (l *recordingLogger) Warnf(format string, args ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.warn = append(l.warn, fmt.Sprintf(format, args...))
}

func (l *recordingLogger) Errorf(format string, args ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.errors = append(l.errors, fmt.Sprintf(format, args...))
}

func TestNewRefinanceEngine_Defaults(t *testing.T) {
	engine := NewRefinanceEngine()
	assert.Equal(t, DefaultInflationRate, engine.InflationRate)
	assert.Equal(t, DefaultMaxWorkers, engine.MaxWorkers)
	assert.IsType(t, NopLogger{}, engine.Logger)
}

func TestNewRefinanceEngineWithConfig(t *testing.T) {
	inflation := decimal.NewFromFloat(0.025)
	engine := NewRefinanceEngineWithConfig(&domain.Configuration{InflationRate: &inflation, MaxWorkers: 2})
	assert.Equal(t, 0.025, engine.InflationRate)
	assert.Equal(t, 2, engine.MaxWorkers)

	engine = NewRefinanceEngineWithConfig(&domain.Configuration{})
	assert.Equal(t, DefaultInflationRate, engine.InflationRate)
	assert.Equal(t, DefaultMaxWorkers, engine.MaxWorkers)

	engine = NewRefinanceEngineWithConfig(nil)
	assert.Equal(t, DefaultInflationRate, engine.InflationRate)
}

func TestSetLogger_NilFallsBackToNop(t *testing.T) {
	engine := NewRefinanceEngine()
	engine.SetLogger(&recordingLogger{})
	engine.SetLogger(nil)
	assert.IsType(t, NopLogger{}, engine.Logger)
}

func TestEngineSimulate_UsesInflationRate(t *testing.T) {
	option := domain.NewRefinanceOption(0, 0, 0)
	growth := domain.ConstantRate(0.05)

	engine := NewRefinanceEngine()
	engine.InflationRate = 0
	undiscounted, err := engine.Simulate(context.Background(), option, 1000, growth, 24)
	require.NoError(t, err)
	assert.Equal(t, undiscounted.TerminalWealth, undiscounted.PresentValue)

	engine.InflationRate = DefaultInflationRate
	discounted, err := engine.Simulate(context.Background(), option, 1000, growth, 24)
	require.NoError(t, err)
	assert.Less(t, discounted.PresentValue, discounted.TerminalWealth)
	assert.Equal(t, undiscounted.TerminalWealth, discounted.TerminalWealth)
}

func TestEngine_DebugLogging(t *testing.T) {
	logger := &recordingLogger{}
	engine := NewRefinanceEngine()
	engine.Debug = true
	engine.SetLogger(logger)

	_, err := engine.Compare(context.Background(), domain.ConstantRate(0.05), []domain.RefinanceOption{
		domain.NewRefinanceOption(1000, 12, 5000),
	})
	require.NoError(t, err)

	assert.NotEmpty(t, logger.debug)
	assert.Contains(t, logger.debug[0], "comparing 1 options")
	require.Len(t, logger.warn, 1)
	assert.Contains(t, logger.warn[0], "inconclusive")
}

func TestEngine_LogsBestOption(t *testing.T) {
	logger := &recordingLogger{}
	engine := NewRefinanceEngine()
	engine.SetLogger(logger)

	_, err := engine.Compare(context.Background(), domain.ConstantRate(0.05), []domain.RefinanceOption{
		{Name: "Current", Payment: 1000, Term: 12},
		{Name: "Pay off", Payment: 0, Term: 0, Cost: 5000},
	})
	require.NoError(t, err)

	require.Len(t, logger.info, 1)
	assert.Contains(t, logger.info[0], "best option: Pay off")
	assert.Empty(t, logger.warn)
}

func TestEngine_LogsSimulationErrors(t *testing.T) {
	logger := &recordingLogger{}
	engine := NewRefinanceEngine()
	engine.SetLogger(logger)

	_, err := engine.Simulate(context.Background(), domain.NewRefinanceOption(1000, 12, 0), 500, domain.ConstantRate(0.05), 12)
	assert.ErrorIs(t, err, ErrInsufficientFunds)
	assert.Len(t, logger.errors, 1)
}
