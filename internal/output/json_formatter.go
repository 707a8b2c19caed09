package output

import (
	"encoding/json"

	"github.com/finarb/arbitrage-calculator/internal/domain"
)

// JSONFormatter serializes the result as pretty-printed JSON.
type JSONFormatter struct{}

func (j JSONFormatter) Name() string { return "json" }

func (j JSONFormatter) Format(result *domain.ArbitrageResult) ([]byte, error) {
	return json.MarshalIndent(result, "", "  ")
}
