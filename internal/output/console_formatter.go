package output

import (
	"bytes"
	"fmt"

	"github.com/rpgo/refi-calculator/internal/domain"
)

// ConsoleFormatter provides a concise console style summary via the formatter interface.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console-lite" }

func (c ConsoleFormatter) Format(results *domain.ComparisonResult) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintln(&buf, "REFINANCE OPTION SUMMARY")
	fmt.Fprintln(&buf, "================================")
	for _, a := range GenerateAssumptions(results) {
		fmt.Fprintf(&buf, "• %s\n", a)
	}
	fmt.Fprintln(&buf)
	for i, r := range results.Results {
		marker := " "
		if i == results.BestIndex {
			marker = "*"
		}
		fmt.Fprintf(&buf, "%s %s: Payment=%s Term=%d Cost=%s\n",
			marker,
			r.Option.Label(i),
			FormatAmount(r.Option.Payment),
			r.Option.Term,
			FormatAmount(r.Option.Cost),
		)
		fmt.Fprintf(&buf, "  TerminalWealth=%s PresentValue=%s\n", FormatAmount(r.TerminalWealth), FormatAmount(r.PresentValue))
	}
	rec := AnalyzeComparison(results)
	fmt.Fprintln(&buf)
	if rec.Conclusive {
		fmt.Fprintf(&buf, "Recommended: %s (PV %s)\n", rec.OptionName, FormatAmount(rec.PresentValue))
	} else {
		fmt.Fprintln(&buf, "Recommended: none (no positive present value)")
	}
	return buf.Bytes(), nil
}
