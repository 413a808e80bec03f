package config

import (
	"fmt"
	"math"
	"os"
	"path/filepath"

	"github.com/rpgo/refi-calculator/internal/calculation"
	"github.com/rpgo/refi-calculator/internal/domain"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// InputParser handles parsing of input configuration files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads configuration from a YAML or JSON file
func (ip *InputParser) LoadFromFile(filename string) (*domain.Configuration, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return ip.load(data, filepath.Dir(filename))
}

// LoadFromBytes parses and validates configuration content. A relative
// schedule_file is resolved against the working directory.
func (ip *InputParser) LoadFromBytes(data []byte) (*domain.Configuration, error) {
	return ip.load(data, "")
}

func (ip *InputParser) load(data []byte, baseDir string) (*domain.Configuration, error) {
	var config domain.Configuration
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := expandScheduleFile(&config.InvestmentGrowth, baseDir); err != nil {
		return nil, fmt.Errorf("investment growth: %w", err)
	}

	if err := ip.ValidateConfiguration(&config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &config, nil
}

// ValidateConfiguration validates the loaded configuration
func (ip *InputParser) ValidateConfiguration(config *domain.Configuration) error {
	if config.InflationRate != nil {
		if config.InflationRate.LessThan(decimal.NewFromFloat(-0.10)) || config.InflationRate.GreaterThan(decimal.NewFromFloat(0.20)) {
			return fmt.Errorf("inflation rate must be between -10%% and 20%%, got %s%%",
				config.InflationRate.Mul(decimal.NewFromInt(100)).StringFixed(2))
		}
	}
	if config.MaxWorkers < 0 {
		return fmt.Errorf("max workers cannot be negative")
	}

	if err := ip.validateInvestmentGrowth(&config.InvestmentGrowth); err != nil {
		return fmt.Errorf("investment growth validation failed: %w", err)
	}

	if len(config.Options) == 0 {
		return fmt.Errorf("no refinance options provided")
	}
	for i, option := range config.Options {
		if err := ip.validateOption(&option); err != nil {
			return fmt.Errorf("option %d validation failed: %w", i+1, err)
		}
	}

	return nil
}

// expandScheduleFile replaces schedule_file with the schedule it names.
func expandScheduleFile(growth *domain.InvestmentGrowth, baseDir string) error {
	if growth.ScheduleFile == "" {
		return nil
	}
	if growth.Rate != nil || len(growth.Schedule) > 0 {
		return fmt.Errorf("specify only one of rate, schedule or schedule_file")
	}
	path := growth.ScheduleFile
	if !filepath.IsAbs(path) && baseDir != "" {
		path = filepath.Join(baseDir, path)
	}
	schedule, err := LoadRateSchedule(path)
	if err != nil {
		return err
	}
	growth.Schedule = schedule
	growth.ScheduleFile = ""
	return nil
}

// validateInvestmentGrowth requires exactly one growth form
func (ip *InputParser) validateInvestmentGrowth(growth *domain.InvestmentGrowth) error {
	forms := 0
	if growth.Rate != nil {
		forms++
	}
	if len(growth.Schedule) > 0 {
		forms++
	}
	if growth.ScheduleFile != "" {
		forms++
	}
	if forms == 0 {
		return fmt.Errorf("one of rate, schedule or schedule_file is required")
	}
	if forms > 1 {
		return fmt.Errorf("specify only one of rate, schedule or schedule_file")
	}
	minRate := decimal.NewFromFloat(-1.0)
	if growth.Rate != nil && growth.Rate.LessThan(minRate) {
		return fmt.Errorf("rate cannot be less than -100%%")
	}
	for i, rate := range growth.Schedule {
		if rate.LessThan(minRate) {
			return fmt.Errorf("schedule month %d cannot be less than -100%%", i+1)
		}
	}
	return nil
}

// validateOption checks that an option is either fully specified or derivable from loan terms
func (ip *InputParser) validateOption(option *domain.OptionSpec) error {
	if option.Payment != nil && option.Payment.LessThan(decimal.Zero) {
		return fmt.Errorf("payment cannot be negative")
	}
	if option.Term != nil && *option.Term < 0 {
		return fmt.Errorf("term cannot be negative")
	}
	if option.Fees.LessThan(decimal.Zero) {
		return fmt.Errorf("fees cannot be negative")
	}

	if option.Payment != nil && option.Term != nil {
		if option.AmountFinanced != nil || option.InterestRate != nil || option.Years != nil {
			return fmt.Errorf("payment and term are given; loan terms must be omitted")
		}
		return nil
	}

	if !option.HasLoanTerms() {
		return fmt.Errorf("either payment and term, or amount_financed and interest_rate are required")
	}
	if option.AmountFinanced.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("amount financed must be positive")
	}
	if option.InterestRate.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("interest rate must be positive")
	}
	if option.Term != nil {
		return fmt.Errorf("term is derived from loan terms; omit it or give payment and term directly")
	}

	switch {
	case option.Years != nil && option.Payment != nil:
		return fmt.Errorf("specify either years or payment with loan terms, not both")
	case option.Years != nil:
		if option.Years.LessThanOrEqual(decimal.Zero) {
			return fmt.Errorf("years must be positive")
		}
	case option.Payment != nil:
		// full amortization is checked when resolved
		if option.Payment.LessThanOrEqual(option.Fees) {
			return fmt.Errorf("payment must exceed fees")
		}
	default:
		return fmt.Errorf("years or payment is required with loan terms")
	}
	return nil
}

// ResolveOptions converts option specs into refinance options, deriving
// payment or term from loan terms where needed.
func (ip *InputParser) ResolveOptions(config *domain.Configuration) ([]domain.RefinanceOption, error) {
	options := make([]domain.RefinanceOption, 0, len(config.Options))
	for i, spec := range config.Options {
		option, err := ResolveOption(spec)
		if err != nil {
			return nil, fmt.Errorf("option %d: %w", i+1, err)
		}
		if option.Name == "" {
			option.Name = option.Label(i)
		}
		options = append(options, option)
	}
	return options, nil
}

// ResolveOption converts a single option spec.
func ResolveOption(spec domain.OptionSpec) (domain.RefinanceOption, error) {
	option := domain.RefinanceOption{
		Name: spec.Name,
		Cost: spec.Cost.InexactFloat64(),
	}

	switch {
	case spec.Payment != nil && spec.Term != nil:
		option.Payment = spec.Payment.InexactFloat64()
		option.Term = *spec.Term

	case spec.HasLoanTerms() && spec.Years != nil:
		years := spec.Years.InexactFloat64()
		payment, err := calculation.MonthlyPayment(spec.AmountFinanced.InexactFloat64(), spec.InterestRate.InexactFloat64(), years, spec.Fees.InexactFloat64())
		if err != nil {
			return domain.RefinanceOption{}, err
		}
		option.Payment = decimal.NewFromFloat(payment).Round(2).InexactFloat64()
		option.Term = int(math.Round(years * 12))

	case spec.HasLoanTerms() && spec.Payment != nil:
		months, err := calculation.NumPayments(spec.AmountFinanced.InexactFloat64(), spec.InterestRate.InexactFloat64(), spec.Payment.InexactFloat64(), spec.Fees.InexactFloat64())
		if err != nil {
			return domain.RefinanceOption{}, err
		}
		option.Payment = spec.Payment.InexactFloat64()
		option.Term = int(math.Ceil(months))
		if option.Term < 0 {
			return domain.RefinanceOption{}, fmt.Errorf("%w: negative term %d", calculation.ErrDomain, option.Term)
		}

	default:
		return domain.RefinanceOption{}, fmt.Errorf("option %q has neither payment and term nor loan terms", spec.Name)
	}

	return option, nil
}

// ResolveGrowthRate converts the configured investment growth into a growth rate.
func (ip *InputParser) ResolveGrowthRate(config *domain.Configuration) domain.GrowthRate {
	growth := config.InvestmentGrowth
	if len(growth.Schedule) > 0 {
		return ScheduleGrowth(growth.Schedule)
	}
	if growth.Rate == nil {
		return domain.ConstantRate(0)
	}
	return domain.ConstantRate(growth.Rate.InexactFloat64())
}

// CreateExampleConfiguration creates an example configuration file
func (ip *InputParser) CreateExampleConfiguration() *domain.Configuration {
	inflation := decimal.NewFromFloat(calculation.DefaultInflationRate)
	growth := decimal.NewFromFloat(0.05)

	currentPayment := decimal.NewFromFloat(1432.25)
	currentTerm := 300

	amount15 := decimal.NewFromInt(250000)
	rate15 := decimal.NewFromFloat(0.035)
	years15 := decimal.NewFromInt(15)

	amount30 := decimal.NewFromInt(250000)
	rate30 := decimal.NewFromFloat(0.0375)
	payment30 := decimal.NewFromInt(1300)

	return &domain.Configuration{
		InflationRate: &inflation,
		MaxWorkers:    calculation.DefaultMaxWorkers,
		InvestmentGrowth: domain.InvestmentGrowth{
			Rate: &growth,
		},
		Options: []domain.OptionSpec{
			{
				Name:    "Keep current mortgage",
				Payment: &currentPayment,
				Term:    &currentTerm,
			},
			{
				Name:           "15-year refinance",
				AmountFinanced: &amount15,
				InterestRate:   &rate15,
				Years:          &years15,
				Cost:           decimal.NewFromInt(4000),
			},
			{
				Name:           "30-year refinance paying 1,300",
				AmountFinanced: &amount30,
				InterestRate:   &rate30,
				Payment:        &payment30,
				Cost:           decimal.NewFromInt(3500),
			},
		},
	}
}
