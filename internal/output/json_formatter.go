package output

import (
	"encoding/json"

	"github.com/rpgo/refi-calculator/internal/domain"
)

// JSONFormatter serializes the comparison as pretty-printed JSON.
type JSONFormatter struct{}

func (j JSONFormatter) Name() string { return "json" }

func (j JSONFormatter) Format(results *domain.ComparisonResult) ([]byte, error) {
	return json.MarshalIndent(results, "", "  ")
}
