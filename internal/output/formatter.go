package output

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/emicalc/loan-calculator/internal/domain"
)

// Formatter defines a pluggable output formatter that returns a byte slice.
// Implementations should be pure (no side effects besides deterministic formatting).
type Formatter interface {
	Format(results *domain.LoanComparison) ([]byte, error)
	// Name returns a short identifier for logging / debugging.
	Name() string
}

// FormatterFunc adapter to allow ordinary functions to act as a Formatter.
type FormatterFunc struct {
	ID string
	F  func(*domain.LoanComparison) ([]byte, error)
}

func (ff FormatterFunc) Format(r *domain.LoanComparison) ([]byte, error) { return ff.F(r) }
func (ff FormatterFunc) Name() string                                    { return ff.ID }

// WriteFormatted runs a formatter and writes output to a timestamped file with
// extension in dir. It returns the path written.
func WriteFormatted(f Formatter, results *domain.LoanComparison, dir, ext string) (string, error) {
	filename := fmt.Sprintf("loan_report_%s.%s", time.Now().Format("20060102_150405"), ext)
	path := filepath.Join(dir, filename)
	if err := WriteFormattedTo(f, results, path); err != nil {
		return "", err
	}
	return path, nil
}

// WriteFormattedTo runs a formatter and writes its output to path.
func WriteFormattedTo(f Formatter, results *domain.LoanComparison, path string) error {
	data, err := f.Format(results)
	if err != nil {
		return fmt.Errorf("format %s: %w", f.Name(), err)
	}
	return os.WriteFile(path, data, 0644)
}

// builtInFormatters stores available formatters.
var builtInFormatters = []Formatter{
	ConsoleVerboseFormatter{},
	ConsoleFormatter{},
	ScheduleFormatter{},
	CSVSummarizer{},
	CSVDetailedExporter{},
	HTMLFormatter{},
	JSONFormatter{},
}

// GetFormatterByName fetches a registered formatter by name or alias.
func GetFormatterByName(name string) Formatter {
	n := NormalizeFormatName(name)
	for _, f := range builtInFormatters {
		if f.Name() == name || f.Name() == n {
			return f
		}
	}
	return nil
}

// aliasMap provides user-friendly synonyms for format names.
var aliasMap = map[string]string{
	"console-verbose": "console",
	"verbose":         "console",
	"lite":            "console-lite",
	"summary":         "console-lite",
	"amortization":    "schedule",
	"table":           "schedule",
	"csv-detailed":    "detailed-csv",
	"csv-schedule":    "detailed-csv",
	"csv-summary":     "csv",
	"html-report":     "html",
	"json-pretty":     "json",
}

// NormalizeFormatName lowers and resolves aliases.
func NormalizeFormatName(name string) string {
	n := strings.ToLower(strings.TrimSpace(name))
	if mapped, ok := aliasMap[n]; ok {
		return mapped
	}
	return n
}

// FileExtension is the extension a report in the named format is saved with.
func FileExtension(name string) string {
	switch n := NormalizeFormatName(name); n {
	case "csv", "detailed-csv":
		return "csv"
	case "html", "json":
		return n
	default:
		return "txt"
	}
}

// AvailableFormatterNames returns the canonical formatter names.
func AvailableFormatterNames() []string {
	names := make([]string, 0, len(builtInFormatters))
	for _, f := range builtInFormatters {
		names = append(names, f.Name())
	}
	sort.Strings(names)
	return names
}

// AvailableFormatAliases returns the supported alias keys.
func AvailableFormatAliases() []string {
	keys := make([]string, 0, len(aliasMap))
	for k := range aliasMap {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
