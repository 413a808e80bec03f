package calculation

import (
	"fmt"
	"math"
)

// The amortization formulas treat the outstanding balance y(t), with t in
// years, as continuously accruing interest at annual rate r while being paid
// down at 12m per year:
//
//	y' = r*y - 12m,  y(0) = P
//	y(t) = P*e^{rt} - (12m/r)(e^{rt} - 1)
//
// Setting y(T) = 0 yields the level payment for a payoff time T, or the payoff
// time for a given payment.

// MonthlyPayment returns the monthly payment that retires amountFinanced at
// the annual interestRate over the given number of years, plus a flat monthly
// fee (taxes, insurance) that does not reduce the balance.
func MonthlyPayment(amountFinanced, interestRate, years, fees float64) (float64, error) {
	if interestRate <= 0 {
		return 0, fmt.Errorf("%w: interest rate must be positive, got %g", ErrDomain, interestRate)
	}
	if years <= 0 {
		return 0, fmt.Errorf("%w: years must be positive, got %g", ErrDomain, years)
	}

	r, P, T := interestRate, amountFinanced, years
	growth := math.Exp(r * T)
	m := (r / 12) * P * growth / (growth - 1)
	if math.IsNaN(m) || math.IsInf(m, 0) {
		return 0, fmt.Errorf("%w: monthly payment is not finite for rate %g over %g years", ErrDomain, r, T)
	}
	return m + fees, nil
}

// NumPayments returns the (fractional) number of monthly payments needed to
// retire amountFinanced at interestRate when paying monthlyPayment, of which
// fees go to costs that do not reduce the balance.
func NumPayments(amountFinanced, interestRate, monthlyPayment, fees float64) (float64, error) {
	if interestRate <= 0 {
		return 0, fmt.Errorf("%w: interest rate must be positive, got %g", ErrDomain, interestRate)
	}

	r, P := interestRate, amountFinanced
	m := monthlyPayment - fees
	numerator := 12 * m
	denominator := 12*m - r*P
	if m <= 0 || denominator <= 0 {
		return 0, fmt.Errorf("%w: payment of %.2f (net of fees) never pays off %.2f at %g", ErrDomain, m, P, r)
	}

	T := (1 / r) * math.Log(numerator/denominator)
	if math.IsNaN(T) || math.IsInf(T, 0) {
		return 0, fmt.Errorf("%w: payoff time is not finite", ErrDomain)
	}
	return 12 * T, nil
}

// RemainingBalance returns the amount still owed after the given number of
// monthly payments, evaluated on the same continuous model. The result goes
// negative once the loan would already have been retired.
func RemainingBalance(amountFinanced, interestRate, monthlyPayment float64, months float64) (float64, error) {
	if interestRate <= 0 {
		return 0, fmt.Errorf("%w: interest rate must be positive, got %g", ErrDomain, interestRate)
	}

	r, P, m := interestRate, amountFinanced, monthlyPayment
	growth := math.Exp(r * months / 12)
	y := P*growth - (12*m/r)*(growth-1)
	if math.IsNaN(y) || math.IsInf(y, 0) {
		return 0, fmt.Errorf("%w: balance is not finite after %g months", ErrDomain, months)
	}
	return y, nil
}
