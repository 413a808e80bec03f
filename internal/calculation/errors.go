package calculation

import "errors"

var (
	// ErrDomain is returned when a closed-form amortization expression is undefined
	// for its inputs (non-positive rate or horizon, or a payment too small to
	// ever retire the loan).
	ErrDomain = errors.New("amortization formula undefined for inputs")

	// ErrInsufficientFunds is returned when the monthly cash budget cannot cover
	// an option's mortgage payment.
	ErrInsufficientFunds = errors.New("not enough monthly cash to make the mortgage payments")

	// ErrRateScheduleTooShort is returned when a per-month growth schedule does
	// not cover the simulation horizon.
	ErrRateScheduleTooShort = errors.New("investment growth schedule shorter than horizon")

	// ErrNoOptions is returned when a comparison is requested without options.
	ErrNoOptions = errors.New("no refinance options to compare")

	// ErrInvalidHorizon is returned when a simulation is asked to run for a
	// negative number of months.
	ErrInvalidHorizon = errors.New("horizon must not be negative")
)
