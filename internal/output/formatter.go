package output

import (
	"strings"

	"github.com/finarb/arbitrage-calculator/internal/domain"
)

// Formatter renders a calculation result into bytes. Implementations must be
// pure: deterministic output, no side effects.
type Formatter interface {
	Format(result *domain.ArbitrageResult) ([]byte, error)
	// Name returns a short identifier for flag parsing and logging.
	Name() string
}

// builtInFormatters stores the available formatters.
var builtInFormatters = []Formatter{
	ConsoleFormatter{},
	JSONFormatter{},
	CSVProjectionFormatter{},
}

// aliasMap provides user-friendly synonyms for format names.
var aliasMap = map[string]string{
	"text":        "console",
	"table":       "console",
	"json-pretty": "json",
	"projection":  "csv",
}

// NormalizeFormatName lowers, trims and resolves aliases.
func NormalizeFormatName(name string) string {
	n := strings.ToLower(strings.TrimSpace(name))
	if resolved, ok := aliasMap[n]; ok {
		return resolved
	}
	return n
}

// GetFormatterByName fetches a registered formatter, or nil when unknown.
func GetFormatterByName(name string) Formatter {
	n := NormalizeFormatName(name)
	for _, f := range builtInFormatters {
		if f.Name() == n {
			return f
		}
	}
	return nil
}
