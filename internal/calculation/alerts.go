package calculation

import (
	"fmt"

	"github.com/finarb/arbitrage-calculator/internal/domain"
)

// GenerateAlerts runs the stateless warning rules against the aggregates and
// the raw collections. Evaluation order is fixed (overspending, high
// interest, unrealistic returns, debt burden) so the output is deterministic,
// and per-instrument warnings are emitted once per offending instrument.
func GenerateAlerts(p *domain.Portfolio, agg Aggregates, a domain.Assumptions) []string {
	var alerts []string

	if agg.MonthlySurplus.IsNegative() {
		alerts = append(alerts, "Warning: your monthly commitments exceed your income. Consider reducing EMIs or SIP contributions.")
	}

	for i := range p.Loans {
		loan := &p.Loans[i]
		if loan.InterestRate.GreaterThan(a.HighInterestThreshold) {
			alerts = append(alerts, fmt.Sprintf(
				"High interest alert: the %s loan carries a very high interest rate of %s%%. Consider refinancing.",
				loan.Type, loan.InterestRate.StringFixed(1)))
		}
	}

	for i := range p.SIPs {
		sip := &p.SIPs[i]
		benchmark, ok := a.ReturnBenchmarks[sip.Type]
		if !ok {
			continue
		}
		if sip.ExpectedReturn.GreaterThan(benchmark.Add(a.ReturnSlackPoints)) {
			alerts = append(alerts, fmt.Sprintf(
				"Unrealistic return alert: an expected return of %s%% for %q is well above the %s%% benchmark for %s funds.",
				sip.ExpectedReturn.StringFixed(1), sip.Name, benchmark.StringFixed(1), sip.Type))
		}
	}

	if agg.MonthlyIncome.IsPositive() {
		ratio := agg.TotalEMI.Div(agg.MonthlyIncome)
		if ratio.GreaterThan(a.EMIBurdenRatio) {
			alerts = append(alerts, fmt.Sprintf(
				"High EMI alert: loan installments consume %s%% of your monthly income, which is very high.",
				ratio.Mul(hundred).StringFixed(1)))
		}
	}

	return alerts
}
