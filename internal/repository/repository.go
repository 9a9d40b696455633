package repository

import (
	"context"

	"moneyloop/internal/models"
)

// PortfolioRepository persists point-in-time portfolio snapshots, keyed by
// portfolio id (one row per portfolio, upserted).
type PortfolioRepository interface {
	SaveSnapshot(ctx context.Context, item *models.PortfolioSnapshot) error
	GetSnapshot(ctx context.Context, portfolioID string) (*models.PortfolioSnapshot, error)
	ListSnapshots(ctx context.Context) ([]models.PortfolioSnapshot, error)
	DeleteSnapshot(ctx context.Context, portfolioID string) error
}

// HistoryRepository is the append-only investment history. Symbol lookups are
// case-insensitive.
type HistoryRepository interface {
	SaveRecord(ctx context.Context, item *models.InvestmentRecord) error
	ListRecordsByPortfolio(ctx context.Context, portfolioID string) ([]models.InvestmentRecord, error)
	ListRecordsBySymbol(ctx context.Context, symbol string) ([]models.InvestmentRecord, error)
}

type Repository interface {
	PortfolioRepository
	HistoryRepository
}
