package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var ErrInsufficientFunds = errors.New("insufficient funds for investment")

// DefaultInitialCash is the endowment used when no initial cash is configured.
var DefaultInitialCash = decimal.NewFromInt(1000)

// Portfolio holds available cash plus an insertion-ordered list of
// investments. Total value is never stored: it is recomputed from cash and
// current values on every read, so it cannot drift from its components.
//
// A Portfolio is not safe for concurrent mutation; the engine owns it from a
// single goroutine and publishes read-only views for everyone else.
type Portfolio struct {
	id            string
	availableCash decimal.Decimal
	investments   []*Investment
	lastUpdated   time.Time
}

func NewPortfolio(initialCash decimal.Decimal) *Portfolio {
	if initialCash.IsNegative() {
		initialCash = decimal.Zero
	}
	return &Portfolio{
		id:            uuid.NewString(),
		availableCash: initialCash,
		lastUpdated:   time.Now().UTC(),
	}
}

func (p *Portfolio) ID() string                     { return p.id }
func (p *Portfolio) AvailableCash() decimal.Decimal { return p.availableCash }
func (p *Portfolio) LastUpdated() time.Time         { return p.lastUpdated }

// Investments returns the holdings in insertion order. The slice is a copy;
// the elements are shared, but all their mutable state is package-private.
func (p *Portfolio) Investments() []*Investment {
	out := make([]*Investment, len(p.investments))
	copy(out, p.investments)
	return out
}

func (p *Portfolio) CanInvest(amount decimal.Decimal) bool {
	return amount.LessThanOrEqual(p.availableCash)
}

// AddInvestment debits cash by the investment's amount and appends it to the
// holdings. On ErrInsufficientFunds nothing is changed, not even the
// timestamp.
func (p *Portfolio) AddInvestment(inv *Investment) error {
	if !p.CanInvest(inv.amount) {
		return ErrInsufficientFunds
	}
	p.availableCash = p.availableCash.Sub(inv.amount)
	p.investments = append(p.investments, inv)
	p.lastUpdated = time.Now().UTC()
	return nil
}

// UpdateInvestmentValue sets the current value of the investment with the
// given id. An unknown id is a deliberate no-op: no state changes anywhere.
func (p *Portfolio) UpdateInvestmentValue(id string, newValue decimal.Decimal) {
	for _, inv := range p.investments {
		if inv.id == id {
			inv.currentValue = newValue
			p.lastUpdated = time.Now().UTC()
			return
		}
	}
}

// TotalValue is available cash plus the sum of all current values, recomputed
// from scratch on every call.
func (p *Portfolio) TotalValue() decimal.Decimal {
	total := p.availableCash
	for _, inv := range p.investments {
		total = total.Add(inv.currentValue)
	}
	return total
}

// TotalProfit sums currentValue-amount over all holdings; it may be negative.
func (p *Portfolio) TotalProfit() decimal.Decimal {
	total := decimal.Zero
	for _, inv := range p.investments {
		total = total.Add(inv.ProfitLoss())
	}
	return total
}
