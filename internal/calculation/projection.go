package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/finarb/arbitrage-calculator/internal/domain"
)

// EffectiveHorizon returns the number of years to project: the requested
// years extended to cover the longest loan tenure and the longest plan
// horizon (including its start delay), never less than one year.
func EffectiveHorizon(p *domain.Portfolio, requestedYears int) int {
	horizon := requestedYears
	if horizon < 1 {
		horizon = 1
	}
	for i := range p.Loans {
		years := (p.Loans[i].TotalTenureMonths() + monthsPerYear - 1) / monthsPerYear
		if years > horizon {
			horizon = years
		}
	}
	for i := range p.SIPs {
		years := p.SIPs[i].StartDelay + p.SIPs[i].InvestmentHorizon
		if years > horizon {
			horizon = years
		}
	}
	return horizon
}

// GenerateYearlyProjections walks the horizon one year at a time, carrying
// every loan balance and plan corpus forward. Each year applies the base
// amortization and contributions first, then layers the fixed surplus
// allocation on top. The allocation percentages are computed once per
// calculation and re-applied every year without recomputation; keeping the
// split fixed is an inherited simplification of the heuristic, not an
// oversight.
func GenerateYearlyProjections(p *domain.Portfolio, agg Aggregates, allocations []domain.OptimalAllocation, horizon int) []domain.YearlyProjection {
	loanBalances := make(map[string]decimal.Decimal, len(p.Loans))
	for i := range p.Loans {
		loanBalances[p.Loans[i].ID] = clampNonNegative(p.Loans[i].PrincipalRemaining)
	}
	sipCorpora := make(map[string]decimal.Decimal, len(p.SIPs))
	for i := range p.SIPs {
		sipCorpora[p.SIPs[i].ID] = decimal.Zero
	}

	annualIncome := agg.MonthlyIncome.Mul(twelve)
	annualEMI := agg.TotalEMI.Mul(twelve)
	annualSIP := agg.TotalSIP.Mul(twelve)
	annualSurplus := agg.MonthlySurplus.Mul(twelve)

	projections := make([]domain.YearlyProjection, 0, horizon)
	for year := 1; year <= horizon; year++ {
		for i := range p.Loans {
			loan := &p.Loans[i]
			loanBalances[loan.ID] = advanceLoanYear(loan, loanBalances[loan.ID], year)
		}
		for i := range p.SIPs {
			sip := &p.SIPs[i]
			sipCorpora[sip.ID] = advanceSIPYear(sip, sipCorpora[sip.ID], year)
		}

		// A negative surplus funds nothing; only a positive one is split.
		if annualSurplus.IsPositive() {
			applyAllocations(loanBalances, sipCorpora, allocations, annualSurplus)
		}

		projection := domain.YearlyProjection{
			Year:        year,
			TotalIncome: annualIncome,
			TotalEMI:    annualEMI,
			TotalSIP:    annualSIP,
			Surplus:     annualSurplus,
			Loans:       copyBalances(loanBalances),
			SIPs:        copyBalances(sipCorpora),
		}
		projection.NetWorth = projection.TotalSIPCorpus().Sub(projection.TotalLoanBalance())
		projections = append(projections, projection)
	}
	return projections
}

func applyAllocations(loanBalances, sipCorpora map[string]decimal.Decimal, allocations []domain.OptimalAllocation, annualSurplus decimal.Decimal) {
	for _, alloc := range allocations {
		share := annualSurplus.Mul(alloc.Percentage).Div(hundred)
		switch {
		case alloc.LoanID != "":
			if balance, ok := loanBalances[alloc.LoanID]; ok {
				loanBalances[alloc.LoanID] = clampNonNegative(balance.Sub(share))
			}
		case alloc.SIPID != "":
			if corpus, ok := sipCorpora[alloc.SIPID]; ok {
				sipCorpora[alloc.SIPID] = corpus.Add(share)
			}
		}
	}
}

func copyBalances(src map[string]decimal.Decimal) map[string]decimal.Decimal {
	out := make(map[string]decimal.Decimal, len(src))
	for id, value := range src {
		out[id] = value
	}
	return out
}
