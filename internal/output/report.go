package output

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/emicalc/loan-calculator/internal/domain"
	"gopkg.in/yaml.v3"
)

// ErrUnsupportedFormat is returned for a report format no formatter handles.
var ErrUnsupportedFormat = errors.New("unsupported report format")

// GenerateReport writes results in format to a timestamped file in the
// working directory.
func GenerateReport(results *domain.LoanComparison, format string) error {
	_, err := GenerateReportIn(results, format, ".")
	return err
}

// GenerateReportIn writes results in format to a timestamped file in dir and
// returns the paths written. "all" writes the verbose console report, the
// detailed CSV and the HTML report.
func GenerateReportIn(results *domain.LoanComparison, format, dir string) ([]string, error) {
	if NormalizeFormatName(format) == "all" {
		var paths []string
		for _, name := range []string{"console", "detailed-csv", "html"} {
			path, err := WriteFormatted(GetFormatterByName(name), results, dir, FileExtension(name))
			if err != nil {
				return paths, err
			}
			paths = append(paths, path)
		}
		return paths, nil
	}

	f := GetFormatterByName(format)
	if f == nil {
		// enrich error with available formatters and aliases
		return nil, fmt.Errorf("%w: %q. Try one of: %s (aliases: %s)", ErrUnsupportedFormat, format, strings.Join(AvailableFormatterNames(), ", "), strings.Join(AvailableFormatAliases(), ", "))
	}
	path, err := WriteFormatted(f, results, dir, FileExtension(f.Name()))
	if err != nil {
		return nil, err
	}
	return []string{path}, nil
}

// SaveConfiguration writes config as YAML.
func SaveConfiguration(config *domain.Configuration, filename string) error {
	b, err := yaml.Marshal(config)
	if err != nil {
		return err
	}
	return os.WriteFile(filename, b, 0644)
}
