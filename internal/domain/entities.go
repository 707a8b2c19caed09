package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// IncomeType classifies the source of an income stream.
type IncomeType string

const (
	IncomeSalary    IncomeType = "Salary"
	IncomeFreelance IncomeType = "Freelance"
	IncomeFarming   IncomeType = "Farming"
	IncomeBusiness  IncomeType = "Business"
	IncomeRental    IncomeType = "Rental"
	IncomeOther     IncomeType = "Other"
)

// IncomeFrequency describes how often an income amount arrives.
type IncomeFrequency string

const (
	FrequencyMonthly   IncomeFrequency = "Monthly"
	FrequencyQuarterly IncomeFrequency = "Quarterly"
	FrequencyOneTime   IncomeFrequency = "One-time"
)

// Income is a single income stream in the portfolio snapshot.
type Income struct {
	ID        string          `yaml:"id,omitempty" json:"id"`
	Amount    decimal.Decimal `yaml:"amount" json:"amount"`
	Type      IncomeType      `yaml:"type" json:"type"`
	Frequency IncomeFrequency `yaml:"frequency" json:"frequency"`
}

// MonthlyEquivalent converts the income to a monthly figure: quarterly
// amounts are spread over 3 months, one-time amounts over 12. Negative
// amounts and unknown frequencies count as zero.
func (i *Income) MonthlyEquivalent() decimal.Decimal {
	amount := clampNonNegative(i.Amount)
	switch i.Frequency {
	case FrequencyMonthly:
		return amount
	case FrequencyQuarterly:
		return amount.Div(three)
	case FrequencyOneTime:
		return amount.Div(twelve)
	default:
		return decimal.Zero
	}
}

// LoanType classifies a loan. The set mirrors the lending products common in
// rural/retail Indian banking (KCC is the Kisan Credit Card revolving loan).
type LoanType string

const (
	LoanTractor    LoanType = "Tractor"
	LoanKCC        LoanType = "KCC"
	LoanHome       LoanType = "Home"
	LoanPersonal   LoanType = "Personal"
	LoanRelatives  LoanType = "Relatives"
	LoanCreditCard LoanType = "Credit Card"
	LoanOther      LoanType = "Other"
)

// InterestType selects the amortization model for a loan.
type InterestType string

const (
	InterestSimple   InterestType = "Simple"
	InterestCompound InterestType = "Compound"
)

// Loan is an outstanding debt with a fixed EMI.
type Loan struct {
	ID                    string          `yaml:"id,omitempty" json:"id"`
	Type                  LoanType        `yaml:"type" json:"type"`
	PrincipalRemaining    decimal.Decimal `yaml:"principal_remaining" json:"principal_remaining"`
	EMI                   decimal.Decimal `yaml:"emi" json:"emi"`
	InterestType          InterestType    `yaml:"interest_type" json:"interest_type"`
	InterestRate          decimal.Decimal `yaml:"interest_rate" json:"interest_rate"` // annual percent
	TenureRemainingYears  int             `yaml:"tenure_remaining_years" json:"tenure_remaining_years"`
	TenureRemainingMonths int             `yaml:"tenure_remaining_months" json:"tenure_remaining_months"` // 0..11
	PrepaymentAllowed     bool            `yaml:"prepayment_allowed" json:"prepayment_allowed"`
	PrepaymentPenalty     decimal.Decimal `yaml:"prepayment_penalty" json:"prepayment_penalty"` // percent
}

// TotalTenureMonths returns the remaining tenure expressed in months.
func (l *Loan) TotalTenureMonths() int {
	return l.TenureRemainingYears*12 + l.TenureRemainingMonths
}

// MonthlyRate returns the monthly interest rate as a fraction, clamped at 0.
func (l *Loan) MonthlyRate() decimal.Decimal {
	return clampNonNegative(l.InterestRate).Div(hundred).Div(twelve)
}

// EffectiveAnnualRate returns the annualized cost of the loan as a percent.
// For compound loans this accounts for monthly compounding, which is what
// makes simple and compound loans comparable when ranking debt.
func (l *Loan) EffectiveAnnualRate() decimal.Decimal {
	if l.InterestType == InterestCompound {
		r := l.MonthlyRate()
		return one.Add(r).Pow(twelve).Sub(one).Mul(hundred)
	}
	return clampNonNegative(l.InterestRate)
}

// SIPType classifies a systematic investment plan by asset class.
type SIPType string

const (
	SIPEquity SIPType = "Equity"
	SIPHybrid SIPType = "Hybrid"
	SIPDebt   SIPType = "Debt"
)

// SIP is a recurring monthly investment plan compounding at a constant
// expected annual return.
type SIP struct {
	ID                string          `yaml:"id,omitempty" json:"id"`
	Name              string          `yaml:"name" json:"name"`
	Type              SIPType         `yaml:"type" json:"type"`
	MonthlyAmount     decimal.Decimal `yaml:"monthly_amount" json:"monthly_amount"`
	ExpectedReturn    decimal.Decimal `yaml:"expected_return" json:"expected_return"` // annual percent
	InvestmentHorizon int             `yaml:"investment_horizon" json:"investment_horizon"`
	StartDelay        int             `yaml:"start_delay" json:"start_delay"` // contributions begin after this many years
}

// MonthlyRate returns the monthly return rate as a fraction, clamped at 0.
func (s *SIP) MonthlyRate() decimal.Decimal {
	return clampNonNegative(s.ExpectedReturn).Div(hundred).Div(twelve)
}

// OneTimeInvestment is a lump-sum item such as an FD maturity or a bonus.
// The engine carries these through for the caller; distributing the amount
// across instruments is a caller decision.
type OneTimeInvestment struct {
	ID        string          `yaml:"id,omitempty" json:"id"`
	Name      string          `yaml:"name" json:"name"`
	Amount    decimal.Decimal `yaml:"amount" json:"amount"`
	Date      time.Time       `yaml:"date" json:"date"`
	AutoApply bool            `yaml:"auto_apply" json:"auto_apply"`
}

var (
	one     = decimal.NewFromInt(1)
	three   = decimal.NewFromInt(3)
	twelve  = decimal.NewFromInt(12)
	hundred = decimal.NewFromInt(100)
)

func clampNonNegative(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}
