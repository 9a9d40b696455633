package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var ErrNegativeAmount = errors.New("investment amount must not be negative")

// Investment is a single position held by a Portfolio. The id, symbol, name,
// amount, purchase time and category are fixed at construction; only the
// current value changes, and only through Portfolio.UpdateInvestmentValue.
type Investment struct {
	id           string
	symbol       string
	name         string
	amount       decimal.Decimal
	currentValue decimal.Decimal
	purchasedAt  time.Time
	category     Category
}

func NewInvestment(symbol, name string, amount decimal.Decimal, category Category) (*Investment, error) {
	if amount.IsNegative() {
		return nil, ErrNegativeAmount
	}
	return &Investment{
		id:           uuid.NewString(),
		symbol:       symbol,
		name:         name,
		amount:       amount,
		currentValue: amount,
		purchasedAt:  time.Now().UTC(),
		category:     category,
	}, nil
}

func (i *Investment) ID() string                    { return i.id }
func (i *Investment) Symbol() string                { return i.symbol }
func (i *Investment) Name() string                  { return i.name }
func (i *Investment) Amount() decimal.Decimal       { return i.amount }
func (i *Investment) CurrentValue() decimal.Decimal { return i.currentValue }
func (i *Investment) PurchasedAt() time.Time        { return i.purchasedAt }
func (i *Investment) Category() Category            { return i.category }

func (i *Investment) ProfitLoss() decimal.Decimal {
	return i.currentValue.Sub(i.amount)
}

// ProfitLossPercent returns profit/loss relative to the original amount, in
// percent. Zero-amount investments report 0 rather than dividing by zero.
func (i *Investment) ProfitLossPercent() decimal.Decimal {
	if i.amount.IsZero() {
		return decimal.Zero
	}
	return i.ProfitLoss().Div(i.amount).Mul(decimal.NewFromInt(100))
}
