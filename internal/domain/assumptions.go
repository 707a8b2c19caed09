package domain

import "github.com/shopspring/decimal"

// Assumptions holds the tunable constants of the engine. The thresholds are
// deliberately configuration rather than hard-coded invariants; the defaults
// below are the ones the recommendations and alerts were designed around.
type Assumptions struct {
	// ProjectionYears is the requested horizon. The engine extends it when a
	// loan tenure or investment horizon runs longer.
	ProjectionYears int `yaml:"projection_years" json:"projection_years"`

	// PrimarySharePercent / SecondarySharePercent split the surplus between
	// the top-ranked instrument and the runner-up asset class.
	PrimarySharePercent   decimal.Decimal `yaml:"primary_share_percent" json:"primary_share_percent"`
	SecondarySharePercent decimal.Decimal `yaml:"secondary_share_percent" json:"secondary_share_percent"`

	// HighInterestThreshold is the annual rate (percent) above which a loan
	// triggers a high-interest alert.
	HighInterestThreshold decimal.Decimal `yaml:"high_interest_threshold" json:"high_interest_threshold"`

	// ReturnSlackPoints is how many points an expected return may exceed its
	// asset-class benchmark before it is flagged as unrealistic.
	ReturnSlackPoints decimal.Decimal `yaml:"return_slack_points" json:"return_slack_points"`

	// EMIBurdenRatio is the EMI-to-income ratio above which the debt-burden
	// alert fires.
	EMIBurdenRatio decimal.Decimal `yaml:"emi_burden_ratio" json:"emi_burden_ratio"`

	// ReturnBenchmarks maps each asset class to its benchmark annual return
	// in percent.
	ReturnBenchmarks map[SIPType]decimal.Decimal `yaml:"return_benchmarks" json:"return_benchmarks"`
}

// DefaultAssumptions returns the standard tuning.
func DefaultAssumptions() Assumptions {
	return Assumptions{
		ProjectionYears:       10,
		PrimarySharePercent:   decimal.NewFromInt(70),
		SecondarySharePercent: decimal.NewFromInt(30),
		HighInterestThreshold: decimal.NewFromInt(15),
		ReturnSlackPoints:     decimal.NewFromInt(3),
		EMIBurdenRatio:        decimal.NewFromFloat(0.5),
		ReturnBenchmarks: map[SIPType]decimal.Decimal{
			SIPEquity: decimal.NewFromInt(12),
			SIPHybrid: decimal.NewFromInt(9),
			SIPDebt:   decimal.NewFromInt(7),
		},
	}
}
