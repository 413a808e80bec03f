package output

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rpgo/refi-calculator/internal/domain"
	"gopkg.in/yaml.v3"
)

// RenderReport writes the comparison in the requested format to w.
func RenderReport(w io.Writer, results *domain.ComparisonResult, format string) error {
	f := GetFormatterByName(format)
	if f == nil {
		return unsupportedFormat(format)
	}
	data, err := f.Format(results)
	if err != nil {
		return fmt.Errorf("%s formatter: %w", f.Name(), err)
	}
	_, err = w.Write(data)
	return err
}

// GenerateReport writes the comparison to a timestamped file. The "all"
// format writes one file per registered formatter.
func GenerateReport(results *domain.ComparisonResult, format string) ([]string, error) {
	if NormalizeFormatName(format) == "all" {
		var files []string
		for _, f := range builtInFormatters {
			name, err := WriteFormatted(f, results, f.Name()+"."+extensionFor(f))
			if err != nil {
				return files, err
			}
			files = append(files, name)
		}
		return files, nil
	}

	f := GetFormatterByName(format)
	if f == nil {
		return nil, unsupportedFormat(format)
	}
	name, err := WriteFormatted(f, results, extensionFor(f))
	if err != nil {
		return nil, err
	}
	return []string{name}, nil
}

func unsupportedFormat(format string) error {
	// enrich error with available formatters and aliases
	return fmt.Errorf("%w: %q. Try one of: %s (aliases: %s)", ErrUnsupportedFormat, format, strings.Join(AvailableFormatterNames(), ", "), strings.Join(AvailableFormatAliases(), ", "))
}

// SaveConfiguration writes a configuration as YAML.
func SaveConfiguration(config *domain.Configuration, filename string) error {
	b, err := yaml.Marshal(config)
	if err != nil {
		return err
	}
	return os.WriteFile(filename, b, 0644)
}
