package domain

import "github.com/google/uuid"

// Portfolio is the immutable input snapshot for a single calculation: the
// caller's income streams, outstanding loans, investment plans and one-time
// items. Edits go through the Upsert/Remove methods, which return a new
// Portfolio and never mutate the receiver, so a calculation in flight always
// sees a consistent snapshot.
type Portfolio struct {
	Incomes            []Income            `yaml:"incomes" json:"incomes"`
	Loans              []Loan              `yaml:"loans" json:"loans"`
	SIPs               []SIP               `yaml:"sips" json:"sips"`
	OneTimeInvestments []OneTimeInvestment `yaml:"one_time_investments,omitempty" json:"one_time_investments,omitempty"`
}

// UpsertIncome replaces the income with the same id, or appends it. An empty
// id gets a generated one.
func (p Portfolio) UpsertIncome(in Income) Portfolio {
	in.ID = ensureID(in.ID)
	p.Incomes = upsertByID(p.Incomes, in, func(e Income) string { return e.ID })
	return p
}

// RemoveIncome drops the income with the given id, if present.
func (p Portfolio) RemoveIncome(id string) Portfolio {
	p.Incomes = removeByID(p.Incomes, id, func(e Income) string { return e.ID })
	return p
}

// UpsertLoan replaces the loan with the same id, or appends it.
func (p Portfolio) UpsertLoan(l Loan) Portfolio {
	l.ID = ensureID(l.ID)
	p.Loans = upsertByID(p.Loans, l, func(e Loan) string { return e.ID })
	return p
}

// RemoveLoan drops the loan with the given id, if present.
func (p Portfolio) RemoveLoan(id string) Portfolio {
	p.Loans = removeByID(p.Loans, id, func(e Loan) string { return e.ID })
	return p
}

// UpsertSIP replaces the plan with the same id, or appends it.
func (p Portfolio) UpsertSIP(s SIP) Portfolio {
	s.ID = ensureID(s.ID)
	p.SIPs = upsertByID(p.SIPs, s, func(e SIP) string { return e.ID })
	return p
}

// RemoveSIP drops the plan with the given id, if present.
func (p Portfolio) RemoveSIP(id string) Portfolio {
	p.SIPs = removeByID(p.SIPs, id, func(e SIP) string { return e.ID })
	return p
}

// UpsertOneTimeInvestment replaces the item with the same id, or appends it.
func (p Portfolio) UpsertOneTimeInvestment(o OneTimeInvestment) Portfolio {
	o.ID = ensureID(o.ID)
	p.OneTimeInvestments = upsertByID(p.OneTimeInvestments, o, func(e OneTimeInvestment) string { return e.ID })
	return p
}

// RemoveOneTimeInvestment drops the item with the given id, if present.
func (p Portfolio) RemoveOneTimeInvestment(id string) Portfolio {
	p.OneTimeInvestments = removeByID(p.OneTimeInvestments, id, func(e OneTimeInvestment) string { return e.ID })
	return p
}

func ensureID(id string) string {
	if id == "" {
		return uuid.NewString()
	}
	return id
}

func upsertByID[T any](list []T, v T, id func(T) string) []T {
	out := make([]T, len(list))
	copy(out, list)
	for i := range out {
		if id(out[i]) == id(v) {
			out[i] = v
			return out
		}
	}
	return append(out, v)
}

func removeByID[T any](list []T, target string, id func(T) string) []T {
	out := make([]T, 0, len(list))
	for _, e := range list {
		if id(e) != target {
			out = append(out, e)
		}
	}
	return out
}
