package output

import (
	"strconv"

	money "github.com/rpgo/refi-calculator/pkg/decimal"
	"github.com/shopspring/decimal"
)

// FormatCurrency formats a decimal as USD currency with 2 decimals and thousands separators.
func FormatCurrency(amount decimal.Decimal) string {
	return money.NewMoneyFromDecimal(amount).Format()
}

// FormatAmount is FormatCurrency for engine values.
func FormatAmount(amount float64) string { return FormatCurrency(decimal.NewFromFloat(amount)) }

// FormatPercentage formats a decimal as a percentage with 2 decimals.
func FormatPercentage(amount decimal.Decimal) string { return amount.StringFixed(2) + "%" }

// FormatRate formats an annual rate given as a fraction, e.g. 0.03 -> 3.00%.
func FormatRate(rate float64) string {
	return FormatPercentage(decimal.NewFromFloat(rate).Mul(decimalHundred))
}

func intToString(v int) string { return strconv.Itoa(v) }

// plainAmount renders an engine value rounded to cents without currency symbols, for CSV.
func plainAmount(v float64) string { return decimal.NewFromFloat(v).StringFixed(2) }

var decimalHundred = decimal.NewFromInt(100)
