package service

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"
	"gorm.io/datatypes"

	"moneyloop/internal/engine"
	"moneyloop/internal/models"
	"moneyloop/internal/repository"
)

// StatusSource is satisfied by *engine.Engine.
type StatusSource interface {
	Status() engine.Status
}

// SnapshotService persists the engine's published status view. It is driven
// by the cron runner; it never reads the live portfolio.
type SnapshotService struct {
	Repo   repository.PortfolioRepository
	Source StatusSource
	Logger *zap.Logger
}

func (s *SnapshotService) Persist(ctx context.Context) error {
	if s == nil || s.Repo == nil || s.Source == nil {
		return nil
	}
	st := s.Source.Status()
	if st.PortfolioID == "" {
		// Engine has not published yet.
		return nil
	}

	holdings, err := json.Marshal(st.Holdings)
	if err != nil {
		return err
	}
	item := &models.PortfolioSnapshot{
		PortfolioID:   st.PortfolioID,
		TotalValue:    st.TotalValue,
		AvailableCash: st.AvailableCash,
		TotalProfit:   st.TotalProfit,
		HoldingsCount: len(st.Holdings),
		Investments:   datatypes.JSON(holdings),
		LastUpdated:   st.LastUpdated,
	}
	if err := s.Repo.SaveSnapshot(ctx, item); err != nil {
		return err
	}
	if s.Logger != nil {
		s.Logger.Debug("portfolio snapshot saved",
			zap.String("portfolio_id", st.PortfolioID),
			zap.String("total_value", st.TotalValue.StringFixed(2)),
			zap.Int("holdings", len(st.Holdings)),
		)
	}
	return nil
}
