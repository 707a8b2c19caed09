package calculation

import "github.com/shopspring/decimal"

const monthsPerYear = 12

var (
	one     = decimal.NewFromInt(1)
	twelve  = decimal.NewFromInt(12)
	hundred = decimal.NewFromInt(100)
)

func clampNonNegative(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}

// compoundFactor returns (1+r)^months.
func compoundFactor(r decimal.Decimal, months int) decimal.Decimal {
	return one.Add(r).Pow(decimal.NewFromInt(int64(months)))
}
