package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/finarb/arbitrage-calculator/internal/domain"
)

// Aggregates are the monthly scalars every other component works from.
type Aggregates struct {
	MonthlyIncome  decimal.Decimal `json:"monthly_income"`
	TotalEMI       decimal.Decimal `json:"total_emi"`
	TotalSIP       decimal.Decimal `json:"total_sip"`
	MonthlySurplus decimal.Decimal `json:"monthly_surplus"`
}

// Aggregate reduces the portfolio to its monthly totals. Empty collections
// yield zeros; the surplus may be negative when commitments exceed income.
func Aggregate(p *domain.Portfolio) Aggregates {
	agg := Aggregates{
		MonthlyIncome: decimal.Zero,
		TotalEMI:      decimal.Zero,
		TotalSIP:      decimal.Zero,
	}
	for i := range p.Incomes {
		agg.MonthlyIncome = agg.MonthlyIncome.Add(p.Incomes[i].MonthlyEquivalent())
	}
	for i := range p.Loans {
		agg.TotalEMI = agg.TotalEMI.Add(clampNonNegative(p.Loans[i].EMI))
	}
	for i := range p.SIPs {
		agg.TotalSIP = agg.TotalSIP.Add(clampNonNegative(p.SIPs[i].MonthlyAmount))
	}
	agg.MonthlySurplus = agg.MonthlyIncome.Sub(agg.TotalEMI).Sub(agg.TotalSIP)
	return agg
}
