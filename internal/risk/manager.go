package risk

import (
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"moneyloop/internal/config"
	"moneyloop/internal/models"
)

// Manager holds the portfolio risk policy. It is stateless between calls and
// never mutates the portfolio it inspects.
type Manager struct {
	Config config.RiskConfig
	Logger *zap.Logger
}

const (
	defaultMaxSingleShare   = 0.20
	defaultMaxCategoryShare = 0.40
	defaultMaxSameSymbol    = 3
)

func (m *Manager) maxSingleShare() decimal.Decimal {
	if m.Config.MaxSingleShare > 0 {
		return decimal.NewFromFloat(m.Config.MaxSingleShare)
	}
	return decimal.NewFromFloat(defaultMaxSingleShare)
}

func (m *Manager) maxCategoryShare() decimal.Decimal {
	if m.Config.MaxCategoryShare > 0 {
		return decimal.NewFromFloat(m.Config.MaxCategoryShare)
	}
	return decimal.NewFromFloat(defaultMaxCategoryShare)
}

func (m *Manager) maxSameSymbol() int {
	if m.Config.MaxSameSymbol > 0 {
		return m.Config.MaxSameSymbol
	}
	return defaultMaxSameSymbol
}

// IsAcceptableRisk judges a recommendation against the portfolio as it stands
// before the investment is applied. Three independent gates, any of which
// rejects: single-investment share, same-category share with the candidate
// amount added, and a hard cap on positions in the same symbol.
func (m *Manager) IsAcceptableRisk(rec *models.Recommendation, p *models.Portfolio) bool {
	if rec == nil || p == nil {
		return false
	}
	total := p.TotalValue()
	if total.LessThanOrEqual(decimal.Zero) {
		// Nothing to size against.
		return false
	}

	if rec.Amount.Div(total).GreaterThan(m.maxSingleShare()) {
		if m.Logger != nil {
			m.Logger.Debug("risk: reject single-investment share",
				zap.String("symbol", rec.Symbol),
				zap.String("amount", rec.Amount.StringFixed(2)),
				zap.String("total_value", total.StringFixed(2)),
			)
		}
		return false
	}

	categoryValue := decimal.Zero
	sameSymbol := 0
	for _, inv := range p.Investments() {
		if inv.Category() == rec.Category {
			categoryValue = categoryValue.Add(inv.CurrentValue())
		}
		if inv.Symbol() == rec.Symbol {
			sameSymbol++
		}
	}

	if categoryValue.Add(rec.Amount).Div(total).GreaterThan(m.maxCategoryShare()) {
		if m.Logger != nil {
			m.Logger.Debug("risk: reject category share",
				zap.String("symbol", rec.Symbol),
				zap.String("category", rec.Category.String()),
				zap.String("category_value", categoryValue.StringFixed(2)),
				zap.String("amount", rec.Amount.StringFixed(2)),
			)
		}
		return false
	}

	if sameSymbol >= m.maxSameSymbol() {
		if m.Logger != nil {
			m.Logger.Debug("risk: reject same-symbol count",
				zap.String("symbol", rec.Symbol),
				zap.Int("held", sameSymbol),
			)
		}
		return false
	}

	return true
}

var (
	volatilityWeight      = decimal.NewFromInt(10)
	diversificationWeight = decimal.NewFromInt(5)
	two                   = decimal.NewFromInt(2)
)

// CalculateRiskScore is an advisory 0..~10 scalar: the average of a
// volatility score (crypto share of total value, x10) and a diversification
// score (unused category ratio, x5). It gates nothing; it exists for
// reporting.
func (m *Manager) CalculateRiskScore(p *models.Portfolio) decimal.Decimal {
	if p == nil || len(p.Investments()) == 0 {
		return decimal.Zero
	}
	total := p.TotalValue()
	if total.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}

	cryptoValue := decimal.Zero
	used := map[models.Category]struct{}{}
	for _, inv := range p.Investments() {
		if inv.Category() == models.CategoryCrypto {
			cryptoValue = cryptoValue.Add(inv.CurrentValue())
		}
		used[inv.Category()] = struct{}{}
	}

	volatility := cryptoValue.Div(total).Mul(volatilityWeight)

	usedRatio := decimal.NewFromInt(int64(len(used))).
		Div(decimal.NewFromInt(int64(len(models.Categories()))))
	diversification := decimal.NewFromInt(1).Sub(usedRatio).Mul(diversificationWeight)

	return volatility.Add(diversification).Div(two)
}
