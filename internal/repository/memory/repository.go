package memoryrepository

import (
	"context"
	"strings"
	"sync"

	"moneyloop/internal/models"
)

// Store is the default repository when no database is configured. It is safe
// for concurrent use; values are copied on the way in and out.
type Store struct {
	mu        sync.RWMutex
	snapshots map[string]models.PortfolioSnapshot
	records   []models.InvestmentRecord
}

func New() *Store {
	return &Store{
		snapshots: make(map[string]models.PortfolioSnapshot),
	}
}

func (s *Store) SaveSnapshot(ctx context.Context, item *models.PortfolioSnapshot) error {
	if s == nil || item == nil {
		return nil
	}
	id := strings.TrimSpace(item.PortfolioID)
	if id == "" {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshots[id] = *item
	return nil
}

func (s *Store) GetSnapshot(ctx context.Context, portfolioID string) (*models.PortfolioSnapshot, error) {
	if s == nil {
		return nil, nil
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	item, ok := s.snapshots[strings.TrimSpace(portfolioID)]
	if !ok {
		return nil, nil
	}
	return &item, nil
}

func (s *Store) ListSnapshots(ctx context.Context) ([]models.PortfolioSnapshot, error) {
	if s == nil {
		return nil, nil
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.PortfolioSnapshot, 0, len(s.snapshots))
	for _, item := range s.snapshots {
		out = append(out, item)
	}
	return out, nil
}

func (s *Store) DeleteSnapshot(ctx context.Context, portfolioID string) error {
	if s == nil {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.snapshots, strings.TrimSpace(portfolioID))
	return nil
}

func (s *Store) SaveRecord(ctx context.Context, item *models.InvestmentRecord) error {
	if s == nil || item == nil {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	rec := *item
	rec.ID = uint64(len(s.records) + 1)
	s.records = append(s.records, rec)
	return nil
}

func (s *Store) ListRecordsByPortfolio(ctx context.Context, portfolioID string) ([]models.InvestmentRecord, error) {
	if s == nil {
		return nil, nil
	}
	id := strings.TrimSpace(portfolioID)
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.InvestmentRecord
	for _, rec := range s.records {
		if rec.PortfolioID == id {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (s *Store) ListRecordsBySymbol(ctx context.Context, symbol string) ([]models.InvestmentRecord, error) {
	if s == nil {
		return nil, nil
	}
	want := strings.TrimSpace(symbol)
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.InvestmentRecord
	for _, rec := range s.records {
		if strings.EqualFold(rec.Symbol, want) {
			out = append(out, rec)
		}
	}
	return out, nil
}
