package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finarb/arbitrage-calculator/internal/domain"
)

func TestEffectiveHorizonFloorsAtOneYear(t *testing.T) {
	p := &domain.Portfolio{}
	assert.Equal(t, 1, EffectiveHorizon(p, 0))
	assert.Equal(t, 1, EffectiveHorizon(p, -3))
	assert.Equal(t, 7, EffectiveHorizon(p, 7))
}

func TestEffectiveHorizonCoversLoanTenure(t *testing.T) {
	// 4 years 6 months rounds up to 5 projection years.
	loan := compoundLoan(550000, 14000, 12.5, 4, 6)
	p := &domain.Portfolio{Loans: []domain.Loan{loan}}

	assert.Equal(t, 5, EffectiveHorizon(p, 2))
	assert.Equal(t, 10, EffectiveHorizon(p, 10))
}

func TestEffectiveHorizonCoversSIPDelayAndHorizon(t *testing.T) {
	sip := equitySIP(5000, 12, 8, 2)
	p := &domain.Portfolio{SIPs: []domain.SIP{sip}}

	assert.Equal(t, 10, EffectiveHorizon(p, 3))
}

func TestProjectionsCoverEveryYear(t *testing.T) {
	p := &domain.Portfolio{
		Incomes: []domain.Income{{ID: "a", Amount: decimal.NewFromInt(50000), Frequency: domain.FrequencyMonthly}},
		Loans:   []domain.Loan{compoundLoan(100000, 2124.70, 10, 5, 0)},
		SIPs:    []domain.SIP{equitySIP(5000, 12, 10, 0)},
	}
	projections := GenerateYearlyProjections(p, Aggregate(p), nil, 10)

	require.Len(t, projections, 10)
	for i, proj := range projections {
		assert.Equal(t, i+1, proj.Year)
		assert.InDelta(t, 600000, proj.TotalIncome.InexactFloat64(), 0.001)
		assert.Contains(t, proj.Loans, "loan-test")
		assert.Contains(t, proj.SIPs, "sip-test")
	}
}

func TestProjectionsWithoutAllocationsMatchClosedForms(t *testing.T) {
	loan := compoundLoan(100000, 2124.70, 10, 5, 0)
	sip := equitySIP(5000, 12, 10, 0)
	p := &domain.Portfolio{
		Incomes: []domain.Income{{ID: "a", Amount: decimal.NewFromInt(7000), Frequency: domain.FrequencyMonthly}},
		Loans:   []domain.Loan{loan},
		SIPs:    []domain.SIP{sip},
	}
	agg := Aggregate(p)
	require.True(t, agg.MonthlySurplus.IsNegative(), "this fixture must not produce a surplus")

	projections := GenerateYearlyProjections(p, agg, OptimalAllocations(p.Loans, p.SIPs, domain.DefaultAssumptions()), 5)

	for _, proj := range projections {
		wantLoan := LoanBalanceAt(&loan, proj.Year)
		wantSIP := SIPCorpusAt(&sip, proj.Year)
		assert.InDelta(t, wantLoan.InexactFloat64(), proj.Loans["loan-test"].InexactFloat64(), 0.01,
			"loan drifted at year %d", proj.Year)
		assert.InDelta(t, wantSIP.InexactFloat64(), proj.SIPs["sip-test"].InexactFloat64(), 0.01,
			"corpus drifted at year %d", proj.Year)
	}
}

func TestProjectionsRetireLoanAtTenureEnd(t *testing.T) {
	// An EMI of 2000 leaves ~9657 outstanding after 60 months of
	// amortization, so only the tenure cutoff can retire this loan. The year
	// loop must agree with the closed form that it does.
	loan := compoundLoan(100000, 2000, 10, 5, 0)
	p := &domain.Portfolio{
		Incomes: []domain.Income{{ID: "a", Amount: decimal.NewFromInt(1500), Frequency: domain.FrequencyMonthly}},
		Loans:   []domain.Loan{loan},
	}
	agg := Aggregate(p)
	require.True(t, agg.MonthlySurplus.IsNegative(), "this fixture must not prepay anything")

	projections := GenerateYearlyProjections(p, agg, nil, 6)

	assert.True(t, projections[3].Loans["loan-test"].IsPositive())
	assert.True(t, projections[4].Loans["loan-test"].IsZero(), "year loop must also retire the loan at tenure end")
	assert.True(t, projections[4].Loans["loan-test"].Equal(LoanBalanceAt(&loan, 5)))
	assert.True(t, projections[5].Loans["loan-test"].IsZero())
	assert.True(t, projections[5].IsDebtFree())
}

func TestProjectionsAllocationAcceleratesPayoff(t *testing.T) {
	loan := compoundLoan(100000, 2124.70, 10, 5, 0)
	p := &domain.Portfolio{
		Incomes: []domain.Income{{ID: "a", Amount: decimal.NewFromInt(5000), Frequency: domain.FrequencyMonthly}},
		Loans:   []domain.Loan{loan},
	}
	agg := Aggregate(p)
	allocations := []domain.OptimalAllocation{{LoanID: "loan-test", Percentage: decimal.NewFromInt(100)}}

	projections := GenerateYearlyProjections(p, agg, allocations, 5)

	plain := LoanBalanceAt(&loan, 1)
	accelerated := projections[0].Loans["loan-test"]
	assert.True(t, accelerated.IsPositive())
	assert.True(t, accelerated.LessThan(plain), "prepayment must beat plain amortization")
	// 34503.60 of yearly prepayment clears the remaining balance in year two.
	assert.True(t, projections[1].Loans["loan-test"].IsZero())
	assert.True(t, projections[4].Loans["loan-test"].IsZero(), "zero balance must stay zero")
	assert.True(t, projections[4].IsDebtFree())
}

func TestProjectionsAllocationFeedsSIP(t *testing.T) {
	sip := equitySIP(5000, 12, 10, 0)
	p := &domain.Portfolio{
		Incomes: []domain.Income{{ID: "a", Amount: decimal.NewFromInt(30000), Frequency: domain.FrequencyMonthly}},
		SIPs:    []domain.SIP{sip},
	}
	agg := Aggregate(p)
	allocations := []domain.OptimalAllocation{{SIPID: "sip-test", Percentage: decimal.NewFromInt(100)}}

	projections := GenerateYearlyProjections(p, agg, allocations, 3)

	// Annual surplus is 300000; the first-year corpus is the base
	// contributions plus the full redirected surplus.
	base := SIPCorpusAt(&sip, 1)
	assert.InDelta(t, base.Add(decimal.NewFromInt(300000)).InexactFloat64(),
		projections[0].SIPs["sip-test"].InexactFloat64(), 0.01)
}

func TestProjectionsNetWorth(t *testing.T) {
	p := &domain.Portfolio{
		Incomes: []domain.Income{{ID: "a", Amount: decimal.NewFromInt(8000), Frequency: domain.FrequencyMonthly}},
		Loans:   []domain.Loan{compoundLoan(100000, 2124.70, 10, 5, 0)},
		SIPs:    []domain.SIP{equitySIP(5000, 12, 10, 0)},
	}
	projections := GenerateYearlyProjections(p, Aggregate(p), nil, 5)

	for _, proj := range projections {
		want := proj.TotalSIPCorpus().Sub(proj.TotalLoanBalance())
		assert.True(t, proj.NetWorth.Equal(want), "net worth identity broken at year %d", proj.Year)
	}
	assert.True(t, projections[0].NetWorth.IsNegative())
	assert.True(t, projections[4].NetWorth.IsPositive())
}

func TestProjectionsIgnoreUnknownAllocationTargets(t *testing.T) {
	p := &domain.Portfolio{
		Incomes: []domain.Income{{ID: "a", Amount: decimal.NewFromInt(50000), Frequency: domain.FrequencyMonthly}},
		Loans:   []domain.Loan{compoundLoan(100000, 2124.70, 10, 5, 0)},
	}
	allocations := []domain.OptimalAllocation{{LoanID: "no-such-loan", Percentage: decimal.NewFromInt(100)}}

	projections := GenerateYearlyProjections(p, Aggregate(p), allocations, 1)

	want := LoanBalanceAt(&p.Loans[0], 1)
	assert.InDelta(t, want.InexactFloat64(), projections[0].Loans["loan-test"].InexactFloat64(), 0.01)
}
