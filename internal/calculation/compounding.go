package calculation

import (
	"fmt"

	"github.com/rpgo/refi-calculator/internal/domain"
)

// ApplyMonthlyInterest returns the value of principal after one month of
// growth at the given annual rate.
func ApplyMonthlyInterest(principal, annualRate float64) float64 {
	return principal * (1 + annualRate/12)
}

// compoundThrough grows amount by each monthly rate in turn.
func compoundThrough(amount float64, rates []float64) float64 {
	for _, rate := range rates {
		amount = ApplyMonthlyInterest(amount, rate)
	}
	return amount
}

// resolveRates expands a growth rate into exactly horizon per-month annual rates.
func resolveRates(growth domain.GrowthRate, horizon int) ([]float64, error) {
	if growth.Kind() == domain.GrowthSchedule {
		if growth.Len() < horizon {
			return nil, fmt.Errorf("%w: %d rates cannot simulate %d months", ErrRateScheduleTooShort, growth.Len(), horizon)
		}
		return growth.Schedule()[:horizon], nil
	}

	rates := make([]float64, horizon)
	for i := range rates {
		rates[i] = growth.Constant()
	}
	return rates, nil
}
