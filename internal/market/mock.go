package market

import (
	"context"
	"sync"
	"time"

	"github.com/shopspring/decimal"
)

// Universe is the known symbol set trending picks are drawn from.
var Universe = []string{
	"AAPL", "GOOGL", "MSFT", "TSLA", "AMZN",
	"BTC", "ETH", "SPY", "QQQ", "VTI",
}

const trendingCount = 5

var minPrice = decimal.NewFromFloat(0.01)

// MockFeed simulates a market: every symbol gets a lazily seeded price in
// [10, 1010) that random-walks ±5% per query, floored at 0.01. The price map
// is owned by the feed instance; there is no shared global cache.
type MockFeed struct {
	mu      sync.Mutex
	prices  map[string]decimal.Decimal
	rng     Rand
	latency time.Duration
}

func NewMockFeed(rng Rand, latency time.Duration) *MockFeed {
	return &MockFeed{
		prices:  make(map[string]decimal.Decimal),
		rng:     rng,
		latency: latency,
	}
}

func (f *MockFeed) CurrentPrice(ctx context.Context, symbol string) (decimal.Decimal, error) {
	if err := f.simulateLatency(ctx, f.latency); err != nil {
		return decimal.Zero, err
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	price, ok := f.prices[symbol]
	if !ok {
		price = decimal.NewFromFloat(f.rng.Float64()*1000 + 10)
	}

	// ±5% walk per query.
	change := decimal.NewFromFloat(f.rng.Float64()*0.1 - 0.05)
	price = price.Mul(decimal.NewFromInt(1).Add(change))
	if price.LessThan(minPrice) {
		price = minPrice
	}
	f.prices[symbol] = price
	return price, nil
}

func (f *MockFeed) TrendingSymbols(ctx context.Context) ([]string, error) {
	if err := f.simulateLatency(ctx, 2*f.latency); err != nil {
		return nil, err
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	shuffled := make([]string, len(Universe))
	copy(shuffled, Universe)
	for i := len(shuffled) - 1; i > 0; i-- {
		j := f.rng.Intn(i + 1)
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	}
	return shuffled[:trendingCount], nil
}

func (f *MockFeed) simulateLatency(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
