package strategy

import (
	"context"

	"github.com/shopspring/decimal"

	"moneyloop/internal/market"
	"moneyloop/internal/models"
)

// Strategy produces at most one recommendation per cycle. A nil
// recommendation with a nil error means the strategy chose to sit out; the
// confidence gates make that a normal outcome, not a failure.
type Strategy interface {
	Name() string
	Recommend(ctx context.Context, p *models.Portfolio, feed market.PriceFeed) (*models.Recommendation, error)
}

type symbolPick struct {
	Symbol string
	Name   string
}

func pickSymbol(rng market.Rand, candidates []symbolPick) symbolPick {
	return candidates[rng.Intn(len(candidates))]
}

// categoryShare is the category's current fraction of total portfolio value;
// 0 for an empty portfolio.
func categoryShare(p *models.Portfolio, category models.Category) decimal.Decimal {
	total := p.TotalValue()
	if total.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	value := decimal.Zero
	for _, inv := range p.Investments() {
		if inv.Category() == category {
			value = value.Add(inv.CurrentValue())
		}
	}
	return value.Div(total)
}

// candidateAmount sizes an investment as a fraction of available cash,
// bounded by an absolute cap.
func candidateAmount(cash decimal.Decimal, fraction, cap float64) decimal.Decimal {
	amount := cash.Mul(decimal.NewFromFloat(fraction))
	limit := decimal.NewFromFloat(cap)
	if amount.GreaterThan(limit) {
		return limit
	}
	return amount
}
