package domain

import "fmt"

// RefinanceOption describes one refinancing choice to evaluate.
//
// To compare against the mortgage you already have, build an option with the
// current payment, the number of payments remaining, and zero cost.
type RefinanceOption struct {
	Name    string  `json:"name,omitempty" yaml:"name,omitempty"`
	Payment float64 `json:"payment" yaml:"payment"` // monthly payment
	Term    int     `json:"term" yaml:"term"`       // number of monthly payments
	Cost    float64 `json:"cost" yaml:"cost"`       // one-time out-of-pocket cost at month 0
}

// NewRefinanceOption creates an unnamed option.
func NewRefinanceOption(payment float64, term int, cost float64) RefinanceOption {
	return RefinanceOption{Payment: payment, Term: term, Cost: cost}
}

// PaymentInMonth returns the mortgage outflow for month j of a simulation,
// including the one-time cost in month 0.
func (o RefinanceOption) PaymentInMonth(month int) float64 {
	payment := 0.0
	if month < o.Term {
		payment = o.Payment
	}
	if month == 0 {
		payment += o.Cost
	}
	return payment
}

// Label returns the option name, or a positional fallback.
func (o RefinanceOption) Label(index int) string {
	if o.Name != "" {
		return o.Name
	}
	return fmt.Sprintf("Option %d", index+1)
}

// GrowthRateKind distinguishes the two forms of investment growth input.
type GrowthRateKind string

const (
	GrowthConstant GrowthRateKind = "constant"
	GrowthSchedule GrowthRateKind = "schedule"
)

// GrowthRate is the annual growth rate of the external investment: either a
// single rate used for every month, or a per-month schedule where the j-th
// entry is the annual rate in effect during month j.
type GrowthRate struct {
	kind     GrowthRateKind
	constant float64
	schedule []float64
}

// ConstantRate returns a growth rate applied uniformly to every month.
func ConstantRate(rate float64) GrowthRate {
	return GrowthRate{kind: GrowthConstant, constant: rate}
}

// RateSchedule returns a per-month growth rate. The slice is copied.
func RateSchedule(rates []float64) GrowthRate {
	return GrowthRate{kind: GrowthSchedule, schedule: append([]float64(nil), rates...)}
}

// Kind reports which form the rate takes. The zero value is a constant 0% rate.
func (g GrowthRate) Kind() GrowthRateKind {
	if g.kind == "" {
		return GrowthConstant
	}
	return g.kind
}

// Constant returns the uniform rate (meaningful for GrowthConstant only).
func (g GrowthRate) Constant() float64 { return g.constant }

// Schedule returns a copy of the per-month rates (nil for GrowthConstant).
func (g GrowthRate) Schedule() []float64 {
	if g.schedule == nil {
		return nil
	}
	return append([]float64(nil), g.schedule...)
}

// Len returns the schedule length, or -1 for a constant rate.
func (g GrowthRate) Len() int {
	if g.Kind() == GrowthConstant {
		return -1
	}
	return len(g.schedule)
}

func (g GrowthRate) String() string {
	if g.Kind() == GrowthConstant {
		return fmt.Sprintf("%.2f%% annually", g.constant*100)
	}
	return fmt.Sprintf("%d-month schedule", g.Len())
}
