package strategy

import (
	"context"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"moneyloop/internal/config"
	"moneyloop/internal/market"
	"moneyloop/internal/models"
)

var etfCandidates = []symbolPick{
	{"SPY", "SPDR S&P 500 ETF"},
	{"VTI", "Vanguard Total Stock Market ETF"},
	{"QQQ", "Invesco QQQ Trust"},
	{"IWM", "iShares Russell 2000 ETF"},
	{"EFA", "iShares MSCI EAFE ETF"},
}

// ETFDiversification builds a broad-market ETF base. It has no confidence
// gate: once the allocation and cash gates pass, it always recommends.
type ETFDiversification struct {
	Params config.StrategyParams
	Rng    market.Rand
	Logger *zap.Logger
}

func (s *ETFDiversification) Name() string { return "etf_diversification" }

func (s *ETFDiversification) params() config.StrategyParams {
	p := s.Params
	if p.TargetShare <= 0 {
		p.TargetShare = 0.30
	}
	if p.MinCash <= 0 {
		p.MinCash = 200
	}
	if p.CashFraction <= 0 {
		p.CashFraction = 0.15
	}
	if p.MaxAmount <= 0 {
		p.MaxAmount = 500
	}
	return p
}

func (s *ETFDiversification) Recommend(ctx context.Context, p *models.Portfolio, feed market.PriceFeed) (*models.Recommendation, error) {
	cfg := s.params()
	share := categoryShare(p, models.CategoryETF)
	if share.GreaterThanOrEqual(decimal.NewFromFloat(cfg.TargetShare)) {
		return nil, nil
	}
	if !p.CanInvest(decimal.NewFromFloat(cfg.MinCash)) {
		return nil, nil
	}

	pick := pickSymbol(s.Rng, etfCandidates)
	amount := candidateAmount(p.AvailableCash(), cfg.CashFraction, cfg.MaxAmount)

	return &models.Recommendation{
		Symbol:     pick.Symbol,
		Name:       pick.Name,
		Amount:     amount,
		Category:   models.CategoryETF,
		Reasoning:  "Building diversified ETF foundation for stable growth",
		Confidence: 0.8,
	}, nil
}
