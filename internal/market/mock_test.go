package market

import (
	"context"
	"math/rand"
	"testing"

	"github.com/shopspring/decimal"
)

func newTestFeed() *MockFeed {
	return NewMockFeed(rand.New(rand.NewSource(42)), 0)
}

func TestMockFeed_CurrentPriceStaysPositive(t *testing.T) {
	f := newTestFeed()
	ctx := context.Background()
	for i := 0; i < 200; i++ {
		price, err := f.CurrentPrice(ctx, "AAPL")
		if err != nil {
			t.Fatalf("current price: %v", err)
		}
		if !price.IsPositive() {
			t.Fatalf("price = %s at query %d, want positive", price, i)
		}
	}
}

func TestMockFeed_WalkStaysWithinFivePercent(t *testing.T) {
	f := newTestFeed()
	ctx := context.Background()

	prev, err := f.CurrentPrice(ctx, "MSFT")
	if err != nil {
		t.Fatalf("current price: %v", err)
	}
	bound := decimal.NewFromFloat(0.05)
	for i := 0; i < 50; i++ {
		price, err := f.CurrentPrice(ctx, "MSFT")
		if err != nil {
			t.Fatalf("current price: %v", err)
		}
		change := price.Sub(prev).Div(prev).Abs()
		if change.GreaterThan(bound) {
			t.Fatalf("step %d moved %s, beyond 5%%", i, change)
		}
		prev = price
	}
}

func TestMockFeed_SymbolsWalkIndependently(t *testing.T) {
	f := newTestFeed()
	ctx := context.Background()

	a, err := f.CurrentPrice(ctx, "BTC")
	if err != nil {
		t.Fatalf("current price: %v", err)
	}
	b, err := f.CurrentPrice(ctx, "ETH")
	if err != nil {
		t.Fatalf("current price: %v", err)
	}
	// Independent seeds from consecutive draws virtually never collide.
	if a.Equal(b) {
		t.Fatalf("BTC and ETH seeded to the same price %s", a)
	}
}

func TestMockFeed_TrendingSymbols(t *testing.T) {
	f := newTestFeed()
	got, err := f.TrendingSymbols(context.Background())
	if err != nil {
		t.Fatalf("trending symbols: %v", err)
	}
	if len(got) != 5 {
		t.Fatalf("trending count = %d, want 5", len(got))
	}
	known := make(map[string]bool, len(Universe))
	for _, s := range Universe {
		known[s] = true
	}
	seen := make(map[string]bool, len(got))
	for _, s := range got {
		if !known[s] {
			t.Fatalf("unknown symbol %q", s)
		}
		if seen[s] {
			t.Fatalf("duplicate symbol %q", s)
		}
		seen[s] = true
	}
}

func TestMockFeed_CancelledContext(t *testing.T) {
	f := NewMockFeed(rand.New(rand.NewSource(1)), 0)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := f.CurrentPrice(ctx, "AAPL"); err != context.Canceled {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
