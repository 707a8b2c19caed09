package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/finarb/arbitrage-calculator/internal/domain"
)

// ArbitrageScore compares the investment opportunity against the cost of
// debt as a single scalar: the principal-weighted average effective loan
// rate subtracted from the contribution-weighted average expected return.
// Positive favors investing, negative favors repayment. With either side
// missing there is nothing to compare and the score is zero.
func ArbitrageScore(loans []domain.Loan, sips []domain.SIP) decimal.Decimal {
	if len(loans) == 0 || len(sips) == 0 {
		return decimal.Zero
	}

	loanCost, ok := weightedLoanRate(loans)
	if !ok {
		return decimal.Zero
	}
	sipReturn, ok := weightedSIPReturn(sips)
	if !ok {
		return decimal.Zero
	}
	return sipReturn.Sub(loanCost)
}

func weightedLoanRate(loans []domain.Loan) (decimal.Decimal, bool) {
	weighted := decimal.Zero
	totalWeight := decimal.Zero
	for i := range loans {
		weight := clampNonNegative(loans[i].PrincipalRemaining)
		weighted = weighted.Add(loans[i].EffectiveAnnualRate().Mul(weight))
		totalWeight = totalWeight.Add(weight)
	}
	if totalWeight.IsZero() {
		return decimal.Zero, false
	}
	return weighted.Div(totalWeight), true
}

func weightedSIPReturn(sips []domain.SIP) (decimal.Decimal, bool) {
	weighted := decimal.Zero
	totalWeight := decimal.Zero
	for i := range sips {
		weight := clampNonNegative(sips[i].MonthlyAmount)
		weighted = weighted.Add(clampNonNegative(sips[i].ExpectedReturn).Mul(weight))
		totalWeight = totalWeight.Add(weight)
	}
	if totalWeight.IsZero() {
		return decimal.Zero, false
	}
	return weighted.Div(totalWeight), true
}
