package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/finarb/arbitrage-calculator/internal/domain"
)

func TestAggregateTotals(t *testing.T) {
	p := &domain.Portfolio{
		Incomes: []domain.Income{
			{ID: "a", Amount: decimal.NewFromInt(30000), Frequency: domain.FrequencyMonthly},
			{ID: "b", Amount: decimal.NewFromInt(9000), Frequency: domain.FrequencyQuarterly},
			{ID: "c", Amount: decimal.NewFromInt(12000), Frequency: domain.FrequencyOneTime},
		},
		Loans: []domain.Loan{
			{ID: "l1", EMI: decimal.NewFromInt(8000)},
			{ID: "l2", EMI: decimal.NewFromInt(2000)},
		},
		SIPs: []domain.SIP{
			{ID: "s1", MonthlyAmount: decimal.NewFromInt(5000)},
		},
	}

	agg := Aggregate(p)

	assert.InDelta(t, 34000, agg.MonthlyIncome.InexactFloat64(), 0.001)
	assert.InDelta(t, 10000, agg.TotalEMI.InexactFloat64(), 0.001)
	assert.InDelta(t, 5000, agg.TotalSIP.InexactFloat64(), 0.001)
	assert.InDelta(t, 19000, agg.MonthlySurplus.InexactFloat64(), 0.001)
}

func TestAggregateEmptyPortfolio(t *testing.T) {
	agg := Aggregate(&domain.Portfolio{})
	assert.True(t, agg.MonthlyIncome.IsZero())
	assert.True(t, agg.TotalEMI.IsZero())
	assert.True(t, agg.TotalSIP.IsZero())
	assert.True(t, agg.MonthlySurplus.IsZero())
}

func TestAggregateSurplusMayBeNegative(t *testing.T) {
	p := &domain.Portfolio{
		Incomes: []domain.Income{{ID: "a", Amount: decimal.NewFromInt(10000), Frequency: domain.FrequencyMonthly}},
		Loans:   []domain.Loan{{ID: "l", EMI: decimal.NewFromInt(15000)}},
	}
	agg := Aggregate(p)
	assert.InDelta(t, -5000, agg.MonthlySurplus.InexactFloat64(), 0.001)
}

func TestAggregateIsLinearInIncome(t *testing.T) {
	base := &domain.Portfolio{
		Incomes: []domain.Income{
			{ID: "a", Amount: decimal.NewFromInt(20000), Frequency: domain.FrequencyMonthly},
			{ID: "b", Amount: decimal.NewFromInt(6000), Frequency: domain.FrequencyQuarterly},
		},
		Loans: []domain.Loan{{ID: "l", EMI: decimal.NewFromInt(7000)}},
	}
	doubled := &domain.Portfolio{
		Incomes: []domain.Income{
			{ID: "a", Amount: decimal.NewFromInt(40000), Frequency: domain.FrequencyMonthly},
			{ID: "b", Amount: decimal.NewFromInt(12000), Frequency: domain.FrequencyQuarterly},
		},
		Loans: base.Loans,
	}

	baseAgg := Aggregate(base)
	doubledAgg := Aggregate(doubled)

	assert.True(t, doubledAgg.MonthlyIncome.Equal(baseAgg.MonthlyIncome.Mul(decimal.NewFromInt(2))))
	delta := doubledAgg.MonthlySurplus.Sub(baseAgg.MonthlySurplus)
	assert.True(t, delta.Equal(baseAgg.MonthlyIncome))
}
