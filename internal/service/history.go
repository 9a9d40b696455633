package service

import (
	"context"

	"go.uber.org/zap"

	"moneyloop/internal/models"
	"moneyloop/internal/repository"
)

// HistoryRecorder implements engine.Recorder: every accepted investment
// becomes one append-only history row carrying its strategy provenance.
type HistoryRecorder struct {
	Repo   repository.HistoryRepository
	Logger *zap.Logger
}

func (r *HistoryRecorder) RecordInvestment(ctx context.Context, portfolioID string, inv *models.Investment, rec *models.Recommendation, strategyName string) error {
	if r == nil || r.Repo == nil || inv == nil {
		return nil
	}
	item := &models.InvestmentRecord{
		InvestmentID: inv.ID(),
		PortfolioID:  portfolioID,
		Symbol:       inv.Symbol(),
		Name:         inv.Name(),
		Category:     inv.Category().String(),
		Amount:       inv.Amount(),
		Strategy:     strategyName,
		PurchasedAt:  inv.PurchasedAt(),
	}
	if rec != nil {
		item.Reasoning = rec.Reasoning
		item.Confidence = rec.Confidence
	}
	if err := r.Repo.SaveRecord(ctx, item); err != nil {
		return err
	}
	if r.Logger != nil {
		r.Logger.Debug("investment recorded",
			zap.String("portfolio_id", portfolioID),
			zap.String("symbol", inv.Symbol()),
			zap.String("strategy", strategyName),
		)
	}
	return nil
}
