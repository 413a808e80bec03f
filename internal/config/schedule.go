package config

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/rpgo/refi-calculator/internal/domain"
	"github.com/shopspring/decimal"
)

// LoadRateSchedule reads a per-month growth schedule from a CSV file with a
// header row and "month,rate" records. Rates are annual fractions; a trailing
// "%" is accepted ("5.5%" is 0.055). Months must run 1..N without gaps.
func LoadRateSchedule(filePath string) ([]decimal.Decimal, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open file %s: %w", filePath, err)
	}
	defer file.Close()

	schedule, err := ReadRateSchedule(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filePath, err)
	}
	return schedule, nil
}

// ReadRateSchedule parses schedule CSV content from r.
func ReadRateSchedule(r io.Reader) ([]decimal.Decimal, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	reader.Comment = '#'

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}
	if len(header) < 2 {
		return nil, fmt.Errorf("invalid CSV format: expected at least 2 columns")
	}

	var schedule []decimal.Decimal
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read data row: %w", err)
		}

		month, err := strconv.Atoi(strings.TrimSpace(record[0]))
		if err != nil {
			return nil, fmt.Errorf("invalid month %q: %w", record[0], err)
		}
		if month != len(schedule)+1 {
			return nil, fmt.Errorf("month %d out of order, expected %d", month, len(schedule)+1)
		}

		rate, err := parseRate(record[1])
		if err != nil {
			return nil, fmt.Errorf("month %d: invalid rate %q: %w", month, record[1], err)
		}
		schedule = append(schedule, rate)
	}

	if len(schedule) == 0 {
		return nil, fmt.Errorf("no schedule rows found")
	}
	return schedule, nil
}

func parseRate(value string) (decimal.Decimal, error) {
	value = strings.TrimSpace(value)
	if pct, ok := strings.CutSuffix(value, "%"); ok {
		rate, err := decimal.NewFromString(strings.TrimSpace(pct))
		if err != nil {
			return decimal.Zero, err
		}
		return rate.Div(decimal.NewFromInt(100)), nil
	}
	return decimal.NewFromString(value)
}

// ScheduleGrowth converts decimal schedule rates into a growth rate.
func ScheduleGrowth(schedule []decimal.Decimal) domain.GrowthRate {
	rates := make([]float64, len(schedule))
	for i, rate := range schedule {
		rates[i] = rate.InexactFloat64()
	}
	return domain.RateSchedule(rates)
}
