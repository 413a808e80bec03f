package calculation

import (
	"fmt"
	"math"

	"github.com/rpgo/refi-calculator/internal/domain"
)

// DefaultInflationRate is the assumed annual inflation used to discount
// terminal wealth when no other rate is configured.
const DefaultInflationRate = 0.03

// Simulate pays off the mortgage described by option while investing whatever
// is left of monthlyCash, for horizon months, and returns the present value of
// the investment at the end. The home itself is not counted since its value does
// not depend on the option chosen.
func Simulate(option domain.RefinanceOption, monthlyCash float64, growth domain.GrowthRate, horizon int, inflation float64) (float64, error) {
	result, err := SimulateDetailed(option, monthlyCash, growth, horizon, inflation)
	if err != nil {
		return 0, err
	}
	return result.PresentValue, nil
}

// SimulateDetailed is Simulate but also returns the intermediate values needed
// to explain the outcome.
func SimulateDetailed(option domain.RefinanceOption, monthlyCash float64, growth domain.GrowthRate, horizon int, inflation float64) (*domain.SimulationResult, error) {
	if horizon < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidHorizon, horizon)
	}
	rates, err := resolveRates(growth, horizon)
	if err != nil {
		return nil, err
	}
	// negated so a NaN budget or payment is rejected too
	if !(monthlyCash >= option.Payment) {
		return nil, fmt.Errorf("%w: have %.2f, need %.2f", ErrInsufficientFunds, monthlyCash, option.Payment)
	}

	terminalWealth := 0.0
	for month := 0; month < horizon; month++ {
		netCash := monthlyCash - option.PaymentInMonth(month)
		terminalWealth += compoundThrough(netCash, rates[month:horizon])
	}

	return &domain.SimulationResult{
		Option:         option,
		MonthlyCash:    monthlyCash,
		HorizonMonths:  horizon,
		GrowthKind:     growth.Kind(),
		InflationRate:  inflation,
		TerminalWealth: terminalWealth,
		PresentValue:   PresentValue(terminalWealth, inflation, horizon),
	}, nil
}

// PresentValue discounts an amount received after the given number of months
// back to today's dollars, compounding inflation continuously.
func PresentValue(amount, inflation float64, months int) float64 {
	return amount * math.Exp(-inflation*float64(months)/12)
}
