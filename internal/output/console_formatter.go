package output

import (
	"fmt"
	"strings"

	"github.com/finarb/arbitrage-calculator/internal/domain"
)

// ConsoleFormatter renders a human-readable summary: verdict, allocation
// recommendations, alerts and the year-by-year projection table.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) Format(result *domain.ArbitrageResult) ([]byte, error) {
	var b strings.Builder

	b.WriteString("LOAN vs SIP ARBITRAGE REPORT\n")
	b.WriteString("============================\n\n")

	fmt.Fprintf(&b, "Arbitrage score: %s (%s)\n\n", result.ArbitrageScore.StringFixed(2), verdict(result))

	b.WriteString("Recommended surplus allocation:\n")
	if len(result.OptimalAllocations) == 0 {
		b.WriteString("  (no loans or SIPs configured)\n")
	}
	for _, alloc := range result.OptimalAllocations {
		instrument := "loan " + alloc.LoanID
		if alloc.SIPID != "" {
			instrument = "SIP " + alloc.SIPID
		}
		fmt.Fprintf(&b, "  %3s%% -> %s\n        %s\n", alloc.Percentage.StringFixed(0), instrument, alloc.Reason)
	}
	b.WriteString("\n")

	if len(result.Alerts) > 0 {
		b.WriteString("Alerts:\n")
		for _, alert := range result.Alerts {
			fmt.Fprintf(&b, "  ! %s\n", alert)
		}
		b.WriteString("\n")
	}

	b.WriteString("Yearly projection:\n")
	fmt.Fprintf(&b, "  %-4s %16s %16s %16s %16s %16s\n",
		"Year", "Income", "EMI", "Surplus", "Debt", "Net Worth")
	for _, yp := range result.YearlyProjections {
		fmt.Fprintf(&b, "  %-4d %16s %16s %16s %16s %16s\n",
			yp.Year,
			FormatCurrency(yp.TotalIncome),
			FormatCurrency(yp.TotalEMI),
			FormatCurrency(yp.Surplus),
			FormatCurrency(yp.TotalLoanBalance()),
			FormatCurrency(yp.NetWorth))
	}

	return []byte(b.String()), nil
}

func verdict(result *domain.ArbitrageResult) string {
	switch {
	case result.ArbitrageScore.IsPositive():
		return "investing is favored"
	case result.ArbitrageScore.IsNegative():
		return "debt repayment is favored"
	default:
		return "neutral"
	}
}
