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

var valueCandidates = []symbolPick{
	{"AAPL", "Apple Inc."},
	{"MSFT", "Microsoft Corporation"},
	{"GOOGL", "Alphabet Inc."},
	{"BRK.B", "Berkshire Hathaway"},
	{"JNJ", "Johnson & Johnson"},
	{"V", "Visa Inc."},
	{"PG", "Procter & Gamble"},
	{"JPM", "JPMorgan Chase & Co."},
}

// ValueStock buys individual stocks when a random value draw clears its
// threshold. It queries the feed for the candidate's price but does not yet
// use the result; that is the hook where a real valuation model plugs in.
type ValueStock struct {
	Params config.StrategyParams
	Rng    market.Rand
	Logger *zap.Logger
}

func (s *ValueStock) Name() string { return "value_stock" }

func (s *ValueStock) params() config.StrategyParams {
	p := s.Params
	if p.TargetShare <= 0 {
		p.TargetShare = 0.40
	}
	if p.MinCash <= 0 {
		p.MinCash = 150
	}
	if p.CashFraction <= 0 {
		p.CashFraction = 0.10
	}
	if p.MaxAmount <= 0 {
		p.MaxAmount = 600
	}
	if p.MinScore <= 0 {
		p.MinScore = 0.7
	}
	return p
}

func (s *ValueStock) Recommend(ctx context.Context, p *models.Portfolio, feed market.PriceFeed) (*models.Recommendation, error) {
	cfg := s.params()
	share := categoryShare(p, models.CategoryStock)
	if share.GreaterThanOrEqual(decimal.NewFromFloat(cfg.TargetShare)) {
		return nil, nil
	}
	if !p.CanInvest(decimal.NewFromFloat(cfg.MinCash)) {
		return nil, nil
	}

	pick := pickSymbol(s.Rng, valueCandidates)

	// Price fetched but unused for now; keeps the feed interaction in place
	// for a future valuation model.
	if _, err := feed.CurrentPrice(ctx, pick.Symbol); err != nil {
		return nil, err
	}

	valueScore := s.Rng.Float64()
	if valueScore <= cfg.MinScore {
		if s.Logger != nil {
			s.Logger.Debug("value score below threshold",
				zap.String("symbol", pick.Symbol),
				zap.Float64("score", valueScore),
			)
		}
		return nil, nil
	}

	amount := candidateAmount(p.AvailableCash(), cfg.CashFraction, cfg.MaxAmount)

	return &models.Recommendation{
		Symbol:     pick.Symbol,
		Name:       pick.Name,
		Amount:     amount,
		Category:   models.CategoryStock,
		Reasoning:  fmt.Sprintf("Value opportunity detected in %s", pick.Name),
		Confidence: valueScore,
	}, nil
}
