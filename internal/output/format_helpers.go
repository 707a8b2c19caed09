package output

import (
	"github.com/shopspring/decimal"

	money "github.com/finarb/arbitrage-calculator/pkg/decimal"
)

// FormatCurrency formats a decimal as rupee currency with 2 decimals. Kept
// separate so every formatter renders amounts identically.
func FormatCurrency(amount decimal.Decimal) string {
	return money.NewMoneyFromDecimal(amount).Format()
}

// FormatPercentage formats a decimal as a percentage with 2 decimals.
func FormatPercentage(amount decimal.Decimal) string {
	return amount.StringFixed(2) + "%"
}
