package output

import (
	"github.com/rpgo/refi-calculator/internal/domain"
	"gopkg.in/yaml.v3"
)

// YAMLFormatter serializes the comparison as YAML.
type YAMLFormatter struct{}

func (y YAMLFormatter) Name() string { return "yaml" }

func (y YAMLFormatter) Format(results *domain.ComparisonResult) ([]byte, error) {
	return yaml.Marshal(results)
}
