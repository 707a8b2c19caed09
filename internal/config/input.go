package config

import (
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/finarb/arbitrage-calculator/internal/domain"
)

// Configuration is the complete input file: the portfolio snapshot plus the
// tunable assumptions.
type Configuration struct {
	Portfolio   domain.Portfolio   `yaml:"portfolio" json:"portfolio"`
	Assumptions domain.Assumptions `yaml:"assumptions" json:"assumptions"`
}

// InputParser handles parsing of input configuration files.
type InputParser struct{}

// NewInputParser creates a new input parser.
func NewInputParser() *InputParser {
	return &InputParser{}
}

// rawConfiguration mirrors Configuration for decoding. Assumption fields are
// pointers so an omitted field and an explicit zero stay distinguishable; an
// explicit zero is honored, only absent fields fall back to the defaults.
type rawConfiguration struct {
	Portfolio   domain.Portfolio `yaml:"portfolio"`
	Assumptions rawAssumptions   `yaml:"assumptions"`
}

type rawAssumptions struct {
	ProjectionYears       *int                               `yaml:"projection_years"`
	PrimarySharePercent   *decimal.Decimal                   `yaml:"primary_share_percent"`
	SecondarySharePercent *decimal.Decimal                   `yaml:"secondary_share_percent"`
	HighInterestThreshold *decimal.Decimal                   `yaml:"high_interest_threshold"`
	ReturnSlackPoints     *decimal.Decimal                   `yaml:"return_slack_points"`
	EMIBurdenRatio        *decimal.Decimal                   `yaml:"emi_burden_ratio"`
	ReturnBenchmarks      map[domain.SIPType]decimal.Decimal `yaml:"return_benchmarks"`
}

// merge overlays the fields present in the file onto the default tuning.
func (r rawAssumptions) merge(a domain.Assumptions) domain.Assumptions {
	if r.ProjectionYears != nil {
		a.ProjectionYears = *r.ProjectionYears
	}
	if r.PrimarySharePercent != nil {
		a.PrimarySharePercent = *r.PrimarySharePercent
	}
	if r.SecondarySharePercent != nil {
		a.SecondarySharePercent = *r.SecondarySharePercent
	}
	if r.HighInterestThreshold != nil {
		a.HighInterestThreshold = *r.HighInterestThreshold
	}
	if r.ReturnSlackPoints != nil {
		a.ReturnSlackPoints = *r.ReturnSlackPoints
	}
	if r.EMIBurdenRatio != nil {
		a.EMIBurdenRatio = *r.EMIBurdenRatio
	}
	if r.ReturnBenchmarks != nil {
		a.ReturnBenchmarks = r.ReturnBenchmarks
	}
	return a
}

// LoadFromFile loads a configuration from a YAML file, fills defaults for
// omitted assumptions, assigns ids to records that arrived without one and
// validates the result.
func (ip *InputParser) LoadFromFile(filename string) (*Configuration, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var raw rawConfiguration
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	config := &Configuration{
		Portfolio:   raw.Portfolio,
		Assumptions: raw.Assumptions.merge(domain.DefaultAssumptions()),
	}
	ip.assignIdentifiers(&config.Portfolio)

	if err := ip.ValidateConfiguration(config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return config, nil
}

// assignIdentifiers gives every record without an id a generated one. The
// ids carry no semantic weight; they only key the projection maps.
func (ip *InputParser) assignIdentifiers(p *domain.Portfolio) {
	for i := range p.Incomes {
		if p.Incomes[i].ID == "" {
			p.Incomes[i].ID = uuid.NewString()
		}
	}
	for i := range p.Loans {
		if p.Loans[i].ID == "" {
			p.Loans[i].ID = uuid.NewString()
		}
	}
	for i := range p.SIPs {
		if p.SIPs[i].ID == "" {
			p.SIPs[i].ID = uuid.NewString()
		}
	}
	for i := range p.OneTimeInvestments {
		if p.OneTimeInvestments[i].ID == "" {
			p.OneTimeInvestments[i].ID = uuid.NewString()
		}
	}
}

// ValidateConfiguration validates the loaded configuration.
func (ip *InputParser) ValidateConfiguration(config *Configuration) error {
	for i := range config.Portfolio.Incomes {
		if err := ip.validateIncome(&config.Portfolio.Incomes[i]); err != nil {
			return fmt.Errorf("income %d validation failed: %w", i, err)
		}
	}
	for i := range config.Portfolio.Loans {
		if err := ip.validateLoan(&config.Portfolio.Loans[i]); err != nil {
			return fmt.Errorf("loan %d validation failed: %w", i, err)
		}
	}
	for i := range config.Portfolio.SIPs {
		if err := ip.validateSIP(&config.Portfolio.SIPs[i]); err != nil {
			return fmt.Errorf("sip %d validation failed: %w", i, err)
		}
	}
	for i := range config.Portfolio.OneTimeInvestments {
		if config.Portfolio.OneTimeInvestments[i].Amount.IsNegative() {
			return fmt.Errorf("one-time investment %d validation failed: amount cannot be negative", i)
		}
	}
	return ip.validateAssumptions(&config.Assumptions)
}

func (ip *InputParser) validateIncome(income *domain.Income) error {
	if income.Amount.IsNegative() {
		return fmt.Errorf("amount cannot be negative")
	}
	switch income.Frequency {
	case domain.FrequencyMonthly, domain.FrequencyQuarterly, domain.FrequencyOneTime:
	default:
		return fmt.Errorf("unknown frequency %q", income.Frequency)
	}
	return nil
}

func (ip *InputParser) validateLoan(loan *domain.Loan) error {
	if loan.PrincipalRemaining.IsNegative() {
		return fmt.Errorf("principal remaining cannot be negative")
	}
	if loan.EMI.IsNegative() {
		return fmt.Errorf("EMI cannot be negative")
	}
	if loan.InterestRate.IsNegative() {
		return fmt.Errorf("interest rate cannot be negative")
	}
	if loan.InterestType != domain.InterestSimple && loan.InterestType != domain.InterestCompound {
		return fmt.Errorf("interest type must be %q or %q", domain.InterestSimple, domain.InterestCompound)
	}
	if loan.TenureRemainingYears < 0 {
		return fmt.Errorf("tenure remaining years cannot be negative")
	}
	if loan.TenureRemainingMonths < 0 || loan.TenureRemainingMonths > 11 {
		return fmt.Errorf("tenure remaining months must be between 0 and 11")
	}
	if loan.PrepaymentPenalty.IsNegative() {
		return fmt.Errorf("prepayment penalty cannot be negative")
	}
	return nil
}

func (ip *InputParser) validateSIP(sip *domain.SIP) error {
	if sip.MonthlyAmount.IsNegative() {
		return fmt.Errorf("monthly amount cannot be negative")
	}
	if sip.ExpectedReturn.IsNegative() {
		return fmt.Errorf("expected return cannot be negative")
	}
	if sip.InvestmentHorizon < 0 {
		return fmt.Errorf("investment horizon cannot be negative")
	}
	if sip.StartDelay < 0 {
		return fmt.Errorf("start delay cannot be negative")
	}
	return nil
}

func (ip *InputParser) validateAssumptions(a *domain.Assumptions) error {
	if a.ProjectionYears < 1 || a.ProjectionYears > 30 {
		return fmt.Errorf("projection years must be between 1 and 30")
	}
	for name, pct := range map[string]decimal.Decimal{
		"primary share percent":   a.PrimarySharePercent,
		"secondary share percent": a.SecondarySharePercent,
	} {
		if pct.IsNegative() || pct.GreaterThan(decimal.NewFromInt(100)) {
			return fmt.Errorf("%s must be between 0 and 100", name)
		}
	}
	if a.PrimarySharePercent.Add(a.SecondarySharePercent).GreaterThan(decimal.NewFromInt(100)) {
		return fmt.Errorf("share percents cannot sum to more than 100")
	}
	if a.EMIBurdenRatio.IsNegative() || a.EMIBurdenRatio.GreaterThan(decimal.NewFromInt(1)) {
		return fmt.Errorf("EMI burden ratio must be between 0 and 1")
	}
	return nil
}

// CreateExampleConfiguration returns a ready-to-run sample: a farming
// household with a salary and quarterly crop income, two loans and two SIPs.
func (ip *InputParser) CreateExampleConfiguration() *Configuration {
	bonusDate, _ := time.Parse("2006-01-02", "2026-03-31")

	return &Configuration{
		Portfolio: domain.Portfolio{
			Incomes: []domain.Income{
				{
					ID:        "income-salary",
					Amount:    decimal.NewFromInt(45000),
					Type:      domain.IncomeSalary,
					Frequency: domain.FrequencyMonthly,
				},
				{
					ID:        "income-harvest",
					Amount:    decimal.NewFromInt(60000),
					Type:      domain.IncomeFarming,
					Frequency: domain.FrequencyQuarterly,
				},
			},
			Loans: []domain.Loan{
				{
					ID:                    "loan-tractor",
					Type:                  domain.LoanTractor,
					PrincipalRemaining:    decimal.NewFromInt(550000),
					EMI:                   decimal.NewFromInt(12400),
					InterestType:          domain.InterestCompound,
					InterestRate:          decimal.NewFromFloat(12.5),
					TenureRemainingYears:  4,
					TenureRemainingMonths: 6,
					PrepaymentAllowed:     true,
					PrepaymentPenalty:     decimal.NewFromInt(2),
				},
				{
					ID:                    "loan-kcc",
					Type:                  domain.LoanKCC,
					PrincipalRemaining:    decimal.NewFromInt(150000),
					EMI:                   decimal.NewFromInt(4500),
					InterestType:          domain.InterestSimple,
					InterestRate:          decimal.NewFromInt(7),
					TenureRemainingYears:  3,
					TenureRemainingMonths: 0,
					PrepaymentAllowed:     true,
					PrepaymentPenalty:     decimal.Zero,
				},
			},
			SIPs: []domain.SIP{
				{
					ID:                "sip-index",
					Name:              "Nifty 50 Index Fund",
					Type:              domain.SIPEquity,
					MonthlyAmount:     decimal.NewFromInt(8000),
					ExpectedReturn:    decimal.NewFromInt(12),
					InvestmentHorizon: 15,
					StartDelay:        0,
				},
				{
					ID:                "sip-gilt",
					Name:              "Gilt Fund",
					Type:              domain.SIPDebt,
					MonthlyAmount:     decimal.NewFromInt(3000),
					ExpectedReturn:    decimal.NewFromInt(7),
					InvestmentHorizon: 10,
					StartDelay:        1,
				},
			},
			OneTimeInvestments: []domain.OneTimeInvestment{
				{
					ID:        "onetime-bonus",
					Name:      "Harvest bonus",
					Amount:    decimal.NewFromInt(100000),
					Date:      bonusDate,
					AutoApply: true,
				},
			},
		},
		Assumptions: domain.DefaultAssumptions(),
	}
}
