package calculation

import (
	"context"
	"fmt"

	"github.com/finarb/arbitrage-calculator/internal/domain"
)

// ArbitrageEngine orchestrates the whole pipeline: aggregation, the one-off
// allocation decision, the year loop, the arbitrage score and the alerts.
// It is a pure computation over an immutable snapshot; no I/O, no internal
// state between calls.
type ArbitrageEngine struct {
	Assumptions domain.Assumptions
	Logger      Logger
}

// NewArbitrageEngine creates an engine with the default assumptions.
func NewArbitrageEngine() *ArbitrageEngine {
	return NewArbitrageEngineWithAssumptions(domain.DefaultAssumptions())
}

// NewArbitrageEngineWithAssumptions creates an engine with custom tuning.
func NewArbitrageEngineWithAssumptions(a domain.Assumptions) *ArbitrageEngine {
	return &ArbitrageEngine{Assumptions: a, Logger: NopLogger{}}
}

// SetLogger sets the engine logger. A nil logger restores the no-op default.
func (e *ArbitrageEngine) SetLogger(l Logger) {
	if l == nil {
		e.Logger = NopLogger{}
		return
	}
	e.Logger = l
}

// Project runs a full calculation over the portfolio snapshot and returns a
// fresh result. horizonYears is the requested projection length; the engine
// extends it to cover longer tenures and horizons but does not clamp it
// otherwise (range policy belongs to the caller). The computation never
// blocks; cancellation simply means the caller discards the result.
func (e *ArbitrageEngine) Project(ctx context.Context, portfolio *domain.Portfolio, horizonYears int) (*domain.ArbitrageResult, error) {
	if portfolio == nil {
		return nil, fmt.Errorf("portfolio is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	agg := Aggregate(portfolio)
	e.Logger.Debugf("aggregates: income=%s emi=%s sip=%s surplus=%s",
		agg.MonthlyIncome.StringFixed(2), agg.TotalEMI.StringFixed(2),
		agg.TotalSIP.StringFixed(2), agg.MonthlySurplus.StringFixed(2))

	allocations := OptimalAllocations(portfolio.Loans, portfolio.SIPs, e.Assumptions)
	horizon := EffectiveHorizon(portfolio, horizonYears)
	if horizon != horizonYears {
		e.Logger.Infof("extending projection horizon from %d to %d years to cover all instruments", horizonYears, horizon)
	}

	result := &domain.ArbitrageResult{
		YearlyProjections:  GenerateYearlyProjections(portfolio, agg, allocations, horizon),
		OptimalAllocations: allocations,
		ArbitrageScore:     ArbitrageScore(portfolio.Loans, portfolio.SIPs),
		Alerts:             GenerateAlerts(portfolio, agg, e.Assumptions),
	}
	e.Logger.Infof("projected %d years, %d allocation entries, %d alerts, score %s",
		len(result.YearlyProjections), len(result.OptimalAllocations), len(result.Alerts),
		result.ArbitrageScore.StringFixed(2))
	return result, nil
}
