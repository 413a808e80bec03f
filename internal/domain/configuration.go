package domain

import "github.com/shopspring/decimal"

// Configuration is the top-level input file for a refinance comparison.
type Configuration struct {
	InflationRate    *decimal.Decimal `yaml:"inflation_rate,omitempty" json:"inflation_rate,omitempty"`
	MaxWorkers       int              `yaml:"max_workers,omitempty" json:"max_workers,omitempty"`
	InvestmentGrowth InvestmentGrowth `yaml:"investment_growth" json:"investment_growth"`
	Options          []OptionSpec     `yaml:"options" json:"options"`
}

// InvestmentGrowth holds exactly one of a constant annual rate, a per-month
// schedule, or a CSV file the schedule is read from.
type InvestmentGrowth struct {
	Rate         *decimal.Decimal  `yaml:"rate,omitempty" json:"rate,omitempty"`
	Schedule     []decimal.Decimal `yaml:"schedule,omitempty" json:"schedule,omitempty"`
	ScheduleFile string            `yaml:"schedule_file,omitempty" json:"schedule_file,omitempty"`
}

// OptionSpec describes a refinancing option as it appears in the input file.
// Either Payment and Term are given directly, or they are derived from the
// loan terms (AmountFinanced, InterestRate and one of Years or Payment).
type OptionSpec struct {
	Name string `yaml:"name,omitempty" json:"name,omitempty"`

	Payment *decimal.Decimal `yaml:"payment,omitempty" json:"payment,omitempty"`
	Term    *int             `yaml:"term,omitempty" json:"term,omitempty"`
	Cost    decimal.Decimal  `yaml:"cost,omitempty" json:"cost,omitempty"`

	AmountFinanced *decimal.Decimal `yaml:"amount_financed,omitempty" json:"amount_financed,omitempty"`
	InterestRate   *decimal.Decimal `yaml:"interest_rate,omitempty" json:"interest_rate,omitempty"`
	Years          *decimal.Decimal `yaml:"years,omitempty" json:"years,omitempty"`
	Fees           decimal.Decimal  `yaml:"fees,omitempty" json:"fees,omitempty"` // monthly taxes, insurance, etc.
}

// HasLoanTerms reports whether the spec carries enough to derive payment or term.
func (s OptionSpec) HasLoanTerms() bool {
	return s.AmountFinanced != nil && s.InterestRate != nil
}
