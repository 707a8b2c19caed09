package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/finarb/arbitrage-calculator/internal/domain"
)

// SIPCorpusAt returns the accumulated corpus of a plan yearsElapsed years
// from now. Contributions only begin once the start delay has passed.
func SIPCorpusAt(sip *domain.SIP, yearsElapsed int) decimal.Decimal {
	if yearsElapsed <= sip.StartDelay {
		return decimal.Zero
	}
	months := (yearsElapsed - sip.StartDelay) * monthsPerYear
	return annuityDueFV(clampNonNegative(sip.MonthlyAmount), sip.MonthlyRate(), months)
}

// annuityDueFV is the future value of monthly contributions invested at the
// start of each month: A((1+r)^n - 1)/r * (1+r). A zero rate degenerates to
// the plain sum of contributions.
func annuityDueFV(amount, monthlyRate decimal.Decimal, months int) decimal.Decimal {
	m := decimal.NewFromInt(int64(months))
	if monthlyRate.IsZero() {
		return amount.Mul(m)
	}
	growth := compoundFactor(monthlyRate, months)
	return amount.Mul(growth.Sub(one)).Div(monthlyRate).Mul(one.Add(monthlyRate))
}

// advanceSIPYear compounds a carried corpus for one year and adds a year of
// contributions, skipping years inside the start delay. Stepping year by
// year this way reproduces the closed-form SIPCorpusAt for the base plan,
// which is what lets the projection loop layer surplus allocations on top.
func advanceSIPYear(sip *domain.SIP, corpus decimal.Decimal, year int) decimal.Decimal {
	if year <= sip.StartDelay {
		return corpus
	}
	r := sip.MonthlyRate()
	contributions := annuityDueFV(clampNonNegative(sip.MonthlyAmount), r, monthsPerYear)
	return corpus.Mul(compoundFactor(r, monthsPerYear)).Add(contributions)
}
