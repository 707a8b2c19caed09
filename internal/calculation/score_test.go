package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/finarb/arbitrage-calculator/internal/domain"
)

func TestArbitrageScoreSymmetricZero(t *testing.T) {
	loans := []domain.Loan{{
		ID:                 "l",
		PrincipalRemaining: decimal.NewFromInt(100000),
		InterestType:       domain.InterestSimple,
		InterestRate:       decimal.NewFromInt(10),
	}}
	sips := []domain.SIP{{
		ID:             "s",
		MonthlyAmount:  decimal.NewFromInt(5000),
		ExpectedReturn: decimal.NewFromInt(10),
	}}

	score := ArbitrageScore(loans, sips)
	assert.InDelta(t, 0, score.InexactFloat64(), 1e-9)
}

func TestArbitrageScoreWeighted(t *testing.T) {
	loans := []domain.Loan{{
		ID:                 "l",
		PrincipalRemaining: decimal.NewFromInt(100000),
		InterestType:       domain.InterestSimple,
		InterestRate:       decimal.NewFromInt(10),
	}}
	// Weighted return: (12*10000 + 8*30000) / 40000 = 9.
	sips := []domain.SIP{
		{ID: "s1", MonthlyAmount: decimal.NewFromInt(10000), ExpectedReturn: decimal.NewFromInt(12)},
		{ID: "s2", MonthlyAmount: decimal.NewFromInt(30000), ExpectedReturn: decimal.NewFromInt(8)},
	}

	score := ArbitrageScore(loans, sips)
	assert.InDelta(t, -1, score.InexactFloat64(), 1e-9)
}

func TestArbitrageScoreUsesEffectiveLoanRate(t *testing.T) {
	// A 12% compound loan costs ~12.68% effective, so a 12% SIP loses.
	loans := []domain.Loan{{
		ID:                 "l",
		PrincipalRemaining: decimal.NewFromInt(100000),
		InterestType:       domain.InterestCompound,
		InterestRate:       decimal.NewFromInt(12),
	}}
	sips := []domain.SIP{{ID: "s", MonthlyAmount: decimal.NewFromInt(5000), ExpectedReturn: decimal.NewFromInt(12)}}

	score := ArbitrageScore(loans, sips)
	assert.True(t, score.IsNegative())
	assert.InDelta(t, -0.6825, score.InexactFloat64(), 0.001)
}

func TestArbitrageScoreEmptyCollections(t *testing.T) {
	sips := []domain.SIP{{ID: "s", MonthlyAmount: decimal.NewFromInt(5000), ExpectedReturn: decimal.NewFromInt(12)}}
	loans := []domain.Loan{{ID: "l", PrincipalRemaining: decimal.NewFromInt(100000), InterestRate: decimal.NewFromInt(10)}}

	assert.True(t, ArbitrageScore(nil, sips).IsZero())
	assert.True(t, ArbitrageScore(loans, nil).IsZero())
	assert.True(t, ArbitrageScore(nil, nil).IsZero())
}

func TestArbitrageScoreZeroWeights(t *testing.T) {
	loans := []domain.Loan{{ID: "l", PrincipalRemaining: decimal.Zero, InterestRate: decimal.NewFromInt(10)}}
	sips := []domain.SIP{{ID: "s", MonthlyAmount: decimal.NewFromInt(5000), ExpectedReturn: decimal.NewFromInt(12)}}

	assert.True(t, ArbitrageScore(loans, sips).IsZero())
}
