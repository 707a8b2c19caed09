package calculation

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/finarb/arbitrage-calculator/internal/domain"
)

// OptimalAllocations decides how the monthly surplus should be split between
// debt repayment and investment. Loans are considered only when prepayment
// is allowed, and are ranked by effective annual rate so simple and compound
// loans compete on equal footing; plans are ranked by expected return. The
// result is ordered best-first and its percentages sum to 100 whenever at
// least one instrument exists.
//
// An equal top rate and top return goes to the loan: retiring debt is a
// guaranteed saving while the return is only expected.
func OptimalAllocations(loans []domain.Loan, sips []domain.SIP, a domain.Assumptions) []domain.OptimalAllocation {
	topLoan := bestLoan(loans)
	topSIP := bestSIP(sips)

	full := decimal.NewFromInt(100)
	switch {
	case topLoan != nil && topSIP != nil:
		loanRate := topLoan.EffectiveAnnualRate()
		sipReturn := clampNonNegative(topSIP.ExpectedReturn)
		if loanRate.GreaterThanOrEqual(sipReturn) {
			return []domain.OptimalAllocation{
				{
					LoanID:     topLoan.ID,
					Percentage: a.PrimarySharePercent,
					Reason: fmt.Sprintf("Prioritize paying off the %s loan: its effective interest rate of %s%% exceeds the best expected SIP return of %s%%.",
						topLoan.Type, loanRate.StringFixed(2), sipReturn.StringFixed(2)),
				},
				{
					SIPID:      topSIP.ID,
					Percentage: a.SecondarySharePercent,
					Reason: fmt.Sprintf("Keep some money flowing into the %s SIP %q at %s%% expected return for diversification.",
						topSIP.Type, topSIP.Name, sipReturn.StringFixed(2)),
				},
			}
		}
		return []domain.OptimalAllocation{
			{
				SIPID:      topSIP.ID,
				Percentage: a.PrimarySharePercent,
				Reason: fmt.Sprintf("Prioritize investing in the %s SIP %q: its expected return of %s%% beats the costliest loan's effective rate of %s%%.",
					topSIP.Type, topSIP.Name, sipReturn.StringFixed(2), loanRate.StringFixed(2)),
			},
			{
				LoanID:     topLoan.ID,
				Percentage: a.SecondarySharePercent,
				Reason: fmt.Sprintf("Continue prepaying the %s loan at %s%% effective interest so the debt keeps shrinking.",
					topLoan.Type, loanRate.StringFixed(2)),
			},
		}
	case topLoan != nil:
		return []domain.OptimalAllocation{{
			LoanID:     topLoan.ID,
			Percentage: full,
			Reason: fmt.Sprintf("Direct the entire surplus at the %s loan at %s%% effective interest; no investment plans are configured.",
				topLoan.Type, topLoan.EffectiveAnnualRate().StringFixed(2)),
		}}
	case topSIP != nil:
		return []domain.OptimalAllocation{{
			SIPID:      topSIP.ID,
			Percentage: full,
			Reason: fmt.Sprintf("Direct the entire surplus at the %s SIP %q at %s%% expected return; there is no debt to repay.",
				topSIP.Type, topSIP.Name, clampNonNegative(topSIP.ExpectedReturn).StringFixed(2)),
		}}
	default:
		return nil
	}
}

// bestLoan returns the prepayable loan with the highest effective annual
// rate, or nil when none qualifies. Ties keep input order.
func bestLoan(loans []domain.Loan) *domain.Loan {
	candidates := make([]domain.Loan, 0, len(loans))
	for _, loan := range loans {
		if loan.PrepaymentAllowed {
			candidates = append(candidates, loan)
		}
	}
	if len(candidates) == 0 {
		return nil
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].EffectiveAnnualRate().GreaterThan(candidates[j].EffectiveAnnualRate())
	})
	return &candidates[0]
}

// bestSIP returns the plan with the highest expected return, or nil. Ties
// keep input order.
func bestSIP(sips []domain.SIP) *domain.SIP {
	if len(sips) == 0 {
		return nil
	}
	candidates := make([]domain.SIP, len(sips))
	copy(candidates, sips)
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].ExpectedReturn.GreaterThan(candidates[j].ExpectedReturn)
	})
	return &candidates[0]
}
