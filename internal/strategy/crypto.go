package strategy

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"moneyloop/internal/config"
	"moneyloop/internal/market"
	"moneyloop/internal/models"
)

var cryptoCandidates = []symbolPick{
	{"BTC", "Bitcoin"},
	{"ETH", "Ethereum"},
	{"ADA", "Cardano"},
	{"SOL", "Solana"},
	{"DOT", "Polkadot"},
}

// CryptoTrend keeps crypto a small slice of the portfolio and only buys when
// a random trend draw clears its threshold. The draw stands in for a real
// trend signal.
type CryptoTrend struct {
	Params config.StrategyParams
	Rng    market.Rand
	Logger *zap.Logger
}

func (s *CryptoTrend) Name() string { return "crypto_trend" }

func (s *CryptoTrend) params() config.StrategyParams {
	p := s.Params
	if p.TargetShare <= 0 {
		p.TargetShare = 0.10
	}
	if p.MinCash <= 0 {
		p.MinCash = 100
	}
	if p.CashFraction <= 0 {
		p.CashFraction = 0.05
	}
	if p.MaxAmount <= 0 {
		p.MaxAmount = 300
	}
	if p.MinScore <= 0 {
		p.MinScore = 0.6
	}
	return p
}

func (s *CryptoTrend) Recommend(ctx context.Context, p *models.Portfolio, feed market.PriceFeed) (*models.Recommendation, error) {
	cfg := s.params()
	share := categoryShare(p, models.CategoryCrypto)
	if share.GreaterThanOrEqual(decimal.NewFromFloat(cfg.TargetShare)) {
		return nil, nil
	}
	if !p.CanInvest(decimal.NewFromFloat(cfg.MinCash)) {
		return nil, nil
	}

	pick := pickSymbol(s.Rng, cryptoCandidates)
	amount := candidateAmount(p.AvailableCash(), cfg.CashFraction, cfg.MaxAmount)

	trendScore := s.Rng.Float64()
	if trendScore <= cfg.MinScore {
		if s.Logger != nil {
			s.Logger.Debug("crypto trend below threshold",
				zap.String("symbol", pick.Symbol),
				zap.Float64("score", trendScore),
			)
		}
		return nil, nil
	}

	return &models.Recommendation{
		Symbol:     pick.Symbol,
		Name:       pick.Name,
		Amount:     amount,
		Category:   models.CategoryCrypto,
		Reasoning:  fmt.Sprintf("Positive trend detected for %s", pick.Name),
		Confidence: trendScore,
	}, nil
}
