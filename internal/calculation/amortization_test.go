package calculation

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMonthlyPayment_ThirtyYearFixed(t *testing.T) {
	got, err := MonthlyPayment(300000, 0.04, 30, 0)
	require.NoError(t, err)

	// Continuous compounding lands within a couple of dollars of the
	// amortization table value of 1432.25.
	assert.InDelta(t, 1432.25, got, 2.0)

	want := (0.04 / 12) * 300000 * math.Exp(1.2) / (math.Exp(1.2) - 1)
	assert.InDelta(t, want, got, 1e-9)
	assert.InDelta(t, 1431.0127606933, got, 1e-6)
}

func TestMonthlyPayment_AddsFees(t *testing.T) {
	base, err := MonthlyPayment(250000, 0.035, 15, 0)
	require.NoError(t, err)
	withFees, err := MonthlyPayment(250000, 0.035, 15, 425.50)
	require.NoError(t, err)

	assert.InDelta(t, 1785.2276736, base, 1e-6)
	assert.InDelta(t, base+425.50, withFees, 1e-9)
}

func TestMonthlyPayment_DomainErrors(t *testing.T) {
	tests := []struct {
		name  string
		rate  float64
		years float64
	}{
		{"zero rate", 0, 30},
		{"negative rate", -0.01, 30},
		{"zero years", 0.04, 0},
		{"negative years", 0.04, -5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := MonthlyPayment(300000, tt.rate, tt.years, 0)
			assert.ErrorIs(t, err, ErrDomain)
			assert.Zero(t, got)
		})
	}
}

func TestNumPayments_RoundTrip(t *testing.T) {
	cases := []struct {
		principal float64
		rate      float64
		years     float64
	}{
		{300000, 0.04, 30},
		{150000, 0.0275, 15},
		{80000, 0.07, 10},
		{1200000, 0.0625, 20},
		{5000, 0.12, 0.5},
	}

	for _, c := range cases {
		payment, err := MonthlyPayment(c.principal, c.rate, c.years, 0)
		require.NoError(t, err)

		months, err := NumPayments(c.principal, c.rate, payment, 0)
		require.NoError(t, err)
		assert.InEpsilon(t, c.years*12, months, 1e-6, "principal=%v rate=%v years=%v", c.principal, c.rate, c.years)
	}
}

func TestNumPayments_FeesAreExcluded(t *testing.T) {
	payment, err := MonthlyPayment(200000, 0.05, 25, 300)
	require.NoError(t, err)

	months, err := NumPayments(200000, 0.05, payment, 300)
	require.NoError(t, err)
	assert.InEpsilon(t, 300.0, months, 1e-6)
}

func TestNumPayments_FractionalMonths(t *testing.T) {
	months, err := NumPayments(200000, 0.05, 1500, 0)
	require.NoError(t, err)
	assert.InDelta(t, 194.6232518919, months, 1e-6)
	assert.Equal(t, 195.0, math.Ceil(months))
}

func TestNumPayments_PaymentTooSmall(t *testing.T) {
	tests := []struct {
		name    string
		payment float64
		fees    float64
	}{
		{"interest only", 1000, 0},   // 12*1000 == 0.04*300000
		{"below interest", 900, 0},   // never amortizes
		{"eaten by fees", 1500, 600}, // net 900
		{"zero payment", 0, 0},
		{"fees exceed payment", 0, 100},  // both log terms negative
		{"payment below fees", 50, 5000}, // net -4950
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NumPayments(300000, 0.04, tt.payment, tt.fees)
			assert.ErrorIs(t, err, ErrDomain)
		})
	}
}

func TestNumPayments_NonPositiveRate(t *testing.T) {
	_, err := NumPayments(300000, 0, 1500, 0)
	assert.ErrorIs(t, err, ErrDomain)
}

func TestRemainingBalance(t *testing.T) {
	payment, err := MonthlyPayment(300000, 0.04, 30, 0)
	require.NoError(t, err)

	start, err := RemainingBalance(300000, 0.04, payment, 0)
	require.NoError(t, err)
	assert.InDelta(t, 300000.0, start, 1e-6)

	end, err := RemainingBalance(300000, 0.04, payment, 360)
	require.NoError(t, err)
	assert.InDelta(t, 0.0, end, 1e-6)

	mid, err := RemainingBalance(300000, 0.04, payment, 180)
	require.NoError(t, err)
	assert.Greater(t, mid, 0.0)
	assert.Less(t, mid, 300000.0)

	_, err = RemainingBalance(300000, 0, payment, 12)
	assert.ErrorIs(t, err, ErrDomain)
}

func TestApplyMonthlyInterest(t *testing.T) {
	for _, x := range []float64{-5000, 0, 1, 1432.25, 1e9} {
		assert.Equal(t, x, ApplyMonthlyInterest(x, 0))
	}
	assert.InDelta(t, 1005.0, ApplyMonthlyInterest(1000, 0.06), 1e-9)
	assert.InDelta(t, 990.0, ApplyMonthlyInterest(1000, -0.12), 1e-9)
}
