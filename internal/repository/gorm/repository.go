package gormrepository

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"moneyloop/internal/models"
)

type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

func (s *Store) SaveSnapshot(ctx context.Context, item *models.PortfolioSnapshot) error {
	if s == nil || s.db == nil || item == nil {
		return nil
	}
	if strings.TrimSpace(item.PortfolioID) == "" {
		return nil
	}
	return s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "portfolio_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"total_value",
			"available_cash",
			"total_profit",
			"holdings_count",
			"investments",
			"last_updated",
			"updated_at",
		}),
	}).Create(item).Error
}

func (s *Store) GetSnapshot(ctx context.Context, portfolioID string) (*models.PortfolioSnapshot, error) {
	if s == nil || s.db == nil {
		return nil, nil
	}
	var item models.PortfolioSnapshot
	err := s.db.WithContext(ctx).
		Where("portfolio_id = ?", strings.TrimSpace(portfolioID)).
		First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *Store) ListSnapshots(ctx context.Context) ([]models.PortfolioSnapshot, error) {
	if s == nil || s.db == nil {
		return nil, nil
	}
	var items []models.PortfolioSnapshot
	if err := s.db.WithContext(ctx).Order("created_at ASC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (s *Store) DeleteSnapshot(ctx context.Context, portfolioID string) error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.WithContext(ctx).
		Where("portfolio_id = ?", strings.TrimSpace(portfolioID)).
		Delete(&models.PortfolioSnapshot{}).Error
}

func (s *Store) SaveRecord(ctx context.Context, item *models.InvestmentRecord) error {
	if s == nil || s.db == nil || item == nil {
		return nil
	}
	return s.db.WithContext(ctx).Create(item).Error
}

func (s *Store) ListRecordsByPortfolio(ctx context.Context, portfolioID string) ([]models.InvestmentRecord, error) {
	if s == nil || s.db == nil {
		return nil, nil
	}
	var items []models.InvestmentRecord
	err := s.db.WithContext(ctx).
		Where("portfolio_id = ?", strings.TrimSpace(portfolioID)).
		Order("created_at ASC").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (s *Store) ListRecordsBySymbol(ctx context.Context, symbol string) ([]models.InvestmentRecord, error) {
	if s == nil || s.db == nil {
		return nil, nil
	}
	var items []models.InvestmentRecord
	err := s.db.WithContext(ctx).
		Where("LOWER(symbol) = LOWER(?)", strings.TrimSpace(symbol)).
		Order("created_at ASC").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}
