package domain

import "github.com/shopspring/decimal"

// YearlyProjection is one row of the projection table: annualized cash flow
// plus the end-of-year balance of every loan and plan. Records are built
// once per calculation and never mutated afterwards.
type YearlyProjection struct {
	Year        int                        `yaml:"year" json:"year"`
	TotalIncome decimal.Decimal            `yaml:"total_income" json:"total_income"`
	TotalEMI    decimal.Decimal            `yaml:"total_emi" json:"total_emi"`
	TotalSIP    decimal.Decimal            `yaml:"total_sip" json:"total_sip"`
	Surplus     decimal.Decimal            `yaml:"surplus" json:"surplus"`
	NetWorth    decimal.Decimal            `yaml:"net_worth" json:"net_worth"`
	Loans       map[string]decimal.Decimal `yaml:"loans" json:"loans"` // loan id -> remaining balance
	SIPs        map[string]decimal.Decimal `yaml:"sips" json:"sips"`   // sip id -> accumulated corpus
}

// TotalLoanBalance sums the remaining balances for the year.
func (yp *YearlyProjection) TotalLoanBalance() decimal.Decimal {
	total := decimal.Zero
	for _, balance := range yp.Loans {
		total = total.Add(balance)
	}
	return total
}

// TotalSIPCorpus sums the accumulated corpora for the year.
func (yp *YearlyProjection) TotalSIPCorpus() decimal.Decimal {
	total := decimal.Zero
	for _, corpus := range yp.SIPs {
		total = total.Add(corpus)
	}
	return total
}

// IsDebtFree reports whether every loan balance has reached zero.
func (yp *YearlyProjection) IsDebtFree() bool {
	return !yp.TotalLoanBalance().IsPositive()
}

// OptimalAllocation recommends directing a percentage of the monthly surplus
// at a single instrument. Exactly one of LoanID / SIPID is set.
type OptimalAllocation struct {
	LoanID     string          `yaml:"loan_id,omitempty" json:"loan_id,omitempty"`
	SIPID      string          `yaml:"sip_id,omitempty" json:"sip_id,omitempty"`
	Percentage decimal.Decimal `yaml:"percentage" json:"percentage"`
	Reason     string          `yaml:"reason" json:"reason"`
}

// ArbitrageResult is the terminal output of a calculation.
type ArbitrageResult struct {
	YearlyProjections  []YearlyProjection  `yaml:"yearly_projections" json:"yearly_projections"`
	OptimalAllocations []OptimalAllocation `yaml:"optimal_allocations" json:"optimal_allocations"`
	ArbitrageScore     decimal.Decimal     `yaml:"arbitrage_score" json:"arbitrage_score"`
	Alerts             []string            `yaml:"alerts" json:"alerts"`
}

// FinalNetWorth returns the net worth of the last projected year, or zero
// for an empty projection.
func (ar *ArbitrageResult) FinalNetWorth() decimal.Decimal {
	if len(ar.YearlyProjections) == 0 {
		return decimal.Zero
	}
	return ar.YearlyProjections[len(ar.YearlyProjections)-1].NetWorth
}
