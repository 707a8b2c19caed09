package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/finarb/arbitrage-calculator/internal/domain"
)

// LoanBalanceAt returns the remaining balance of a loan yearsElapsed years
// from now, using closed-form amortization so any query year evaluates
// identically regardless of order. A loan past its tenure is fully retired.
func LoanBalanceAt(loan *domain.Loan, yearsElapsed int) decimal.Decimal {
	months := yearsElapsed * monthsPerYear
	if months >= loan.TotalTenureMonths() {
		return decimal.Zero
	}
	principal := clampNonNegative(loan.PrincipalRemaining)
	emi := clampNonNegative(loan.EMI)
	if loan.InterestType == domain.InterestSimple {
		return simpleBalance(principal, principal, emi, loan.MonthlyRate(), months)
	}
	return compoundBalance(principal, emi, loan.MonthlyRate(), months)
}

// simpleBalance amortizes under simple interest: the interest portion of the
// EMI is fixed against the original principal, so the principal drawdown is
// linear.
func simpleBalance(balance, originalPrincipal, emi, monthlyRate decimal.Decimal, months int) decimal.Decimal {
	monthlyInterest := originalPrincipal.Mul(monthlyRate)
	principalPortion := emi.Sub(monthlyInterest)
	paid := principalPortion.Mul(decimal.NewFromInt(int64(months)))
	return clampNonNegative(balance.Sub(paid))
}

// compoundBalance applies the standard amortization recurrence in closed
// form: B = P(1+r)^m - EMI((1+r)^m - 1)/r, floored at zero. A zero rate
// degenerates to a straight principal drawdown.
func compoundBalance(balance, emi, monthlyRate decimal.Decimal, months int) decimal.Decimal {
	m := decimal.NewFromInt(int64(months))
	if monthlyRate.IsZero() {
		return clampNonNegative(balance.Sub(emi.Mul(m)))
	}
	growth := compoundFactor(monthlyRate, months)
	remaining := balance.Mul(growth).Sub(emi.Mul(growth.Sub(one)).Div(monthlyRate))
	return clampNonNegative(remaining)
}

// advanceLoanYear applies one year of EMI-driven amortization to a carried
// balance, landing on the end-of-year balance for the given projection year.
// Zero is absorbing, and a loan past its tenure is settled at zero even when
// the EMI under-amortizes the balance.
func advanceLoanYear(loan *domain.Loan, balance decimal.Decimal, year int) decimal.Decimal {
	if !balance.IsPositive() {
		return decimal.Zero
	}
	if year*monthsPerYear >= loan.TotalTenureMonths() {
		return decimal.Zero
	}
	emi := clampNonNegative(loan.EMI)
	if loan.InterestType == domain.InterestSimple {
		return simpleBalance(balance, clampNonNegative(loan.PrincipalRemaining), emi, loan.MonthlyRate(), monthsPerYear)
	}
	return compoundBalance(balance, emi, loan.MonthlyRate(), monthsPerYear)
}
