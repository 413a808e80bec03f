package decimal

import (
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// Money represents a monetary amount with proper financial precision
type Money struct {
	decimal.Decimal
}

// NewMoney creates a new Money instance from a float64
func NewMoney(value float64) Money {
	return Money{decimal.NewFromFloat(value)}
}

// NewMoneyFromDecimal creates a new Money instance from a decimal.Decimal
func NewMoneyFromDecimal(d decimal.Decimal) Money {
	return Money{d}
}

// NewMoneyFromString creates a new Money instance from a string.
// A leading "$" and thousands separators are accepted.
func NewMoneyFromString(value string) (Money, error) {
	cleaned := strings.TrimSpace(value)
	cleaned = strings.Replace(cleaned, "$", "", 1)
	cleaned = strings.ReplaceAll(cleaned, ",", "")
	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return Money{}, err
	}
	return Money{d}, nil
}

// Round rounds the money amount to cents
func (m Money) Round() Money {
	return Money{m.Decimal.Round(2)}
}

// Float64 returns the nearest float64, for handing amounts to the engine.
func (m Money) Float64() float64 {
	return m.Decimal.InexactFloat64()
}

// IsNegative checks if the amount is negative
func (m Money) IsNegative() bool {
	return m.Decimal.IsNegative()
}

// String returns the string representation with proper formatting
func (m Money) String() string {
	return m.Decimal.StringFixed(2)
}

// Grouped returns the amount rounded to cents with thousands separators, e.g. 1,432.25.
func (m Money) Grouped() string {
	return printer.Sprintf("%.2f", m.Round().Abs().InexactFloat64())
}

// Format formats the money amount as currency, e.g. $1,432.25 or -$5,000.00.
func (m Money) Format() string {
	if m.Round().IsNegative() {
		return "-$" + m.Grouped()
	}
	return "$" + m.Grouped()
}
