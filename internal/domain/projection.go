package domain

// SimulationResult captures one option's simulated outcome together with the
// inputs a report needs to explain it.
type SimulationResult struct {
	Option         RefinanceOption `json:"option" yaml:"option"`
	MonthlyCash    float64         `json:"monthly_cash" yaml:"monthly_cash"`
	HorizonMonths  int             `json:"horizon_months" yaml:"horizon_months"`
	GrowthKind     GrowthRateKind  `json:"growth_kind" yaml:"growth_kind"`
	InflationRate  float64         `json:"inflation_rate" yaml:"inflation_rate"`
	TerminalWealth float64         `json:"terminal_wealth" yaml:"terminal_wealth"`
	PresentValue   float64         `json:"present_value" yaml:"present_value"`
}

// Surplus is the amount invested each month while the loan is being paid.
func (r SimulationResult) Surplus() float64 {
	return r.MonthlyCash - r.Option.Payment
}

// PaymentMonths is the number of months inside the horizon with a mortgage payment.
func (r SimulationResult) PaymentMonths() int {
	if r.Option.Term > r.HorizonMonths {
		return r.HorizonMonths
	}
	return r.Option.Term
}

// PaidOffMonths is the number of months inside the horizon after the loan is paid off.
func (r SimulationResult) PaidOffMonths() int {
	return r.HorizonMonths - r.PaymentMonths()
}

// ComparisonResult holds every option simulated under a shared budget and horizon.
type ComparisonResult struct {
	MonthlyCash   float64            `json:"monthly_cash" yaml:"monthly_cash"`
	HorizonMonths int                `json:"horizon_months" yaml:"horizon_months"`
	GrowthRate    string             `json:"growth_rate" yaml:"growth_rate"`
	InflationRate float64            `json:"inflation_rate" yaml:"inflation_rate"`
	Results       []SimulationResult `json:"results" yaml:"results"`
	BestIndex     int                `json:"best_index" yaml:"best_index"` // -1 when no option has a positive present value
}

// Best returns the selected option, or false when the comparison is inconclusive.
func (c *ComparisonResult) Best() (RefinanceOption, bool) {
	if c == nil || c.BestIndex < 0 || c.BestIndex >= len(c.Results) {
		return RefinanceOption{}, false
	}
	return c.Results[c.BestIndex].Option, true
}
