package market

import (
	"context"

	"github.com/shopspring/decimal"
)

// PriceFeed is the market-data capability consumed by strategies and the
// engine. CurrentPrice never returns a zero or negative price.
type PriceFeed interface {
	CurrentPrice(ctx context.Context, symbol string) (decimal.Decimal, error)
	TrendingSymbols(ctx context.Context) ([]string, error)
}

// Rand is the randomness the simulation draws from. *math/rand.Rand satisfies
// it; tests pin outcomes with stub implementations.
type Rand interface {
	Intn(n int) int
	Float64() float64
}
