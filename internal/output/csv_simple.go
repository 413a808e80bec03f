package output

import (
	"bytes"
	"encoding/csv"

	"github.com/rpgo/refi-calculator/internal/domain"
)

// CSVSummarizer implements the simple summary CSV output (one row per option, in input order).
type CSVSummarizer struct{}

func (c CSVSummarizer) Name() string { return "csv" }

func (c CSVSummarizer) Format(results *domain.ComparisonResult) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Scenario", "Option", "Payment", "Term", "Cost", "MonthlyCash", "HorizonMonths", "Surplus", "TerminalWealth", "PresentValue", "Best"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for i, r := range results.Results {
		best := "false"
		if i == results.BestIndex {
			best = "true"
		}
		row := []string{
			intToString(i + 1),
			r.Option.Label(i),
			plainAmount(r.Option.Payment),
			intToString(r.Option.Term),
			plainAmount(r.Option.Cost),
			plainAmount(r.MonthlyCash),
			intToString(r.HorizonMonths),
			plainAmount(r.Surplus()),
			plainAmount(r.TerminalWealth),
			plainAmount(r.PresentValue),
			best,
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
