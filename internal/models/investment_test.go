package models

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestNewInvestment(t *testing.T) {
	inv, err := NewInvestment("AAPL", "Apple Inc.", decimal.NewFromInt(500), CategoryStock)
	if err != nil {
		t.Fatalf("new investment: %v", err)
	}
	if inv.ID() == "" {
		t.Fatalf("expected generated id")
	}
	if !inv.CurrentValue().Equal(inv.Amount()) {
		t.Fatalf("current value should start at amount, got %s", inv.CurrentValue())
	}
	if inv.PurchasedAt().IsZero() {
		t.Fatalf("expected purchase time to be set")
	}
}

func TestNewInvestment_RejectsNegativeAmount(t *testing.T) {
	if _, err := NewInvestment("AAPL", "Apple Inc.", decimal.NewFromInt(-1), CategoryStock); err != ErrNegativeAmount {
		t.Fatalf("expected ErrNegativeAmount, got %v", err)
	}
}

func TestInvestment_ProfitLoss(t *testing.T) {
	inv, err := NewInvestment("BTC", "Bitcoin", decimal.NewFromInt(200), CategoryCrypto)
	if err != nil {
		t.Fatalf("new investment: %v", err)
	}
	inv.currentValue = decimal.NewFromInt(150)

	if got := inv.ProfitLoss(); !got.Equal(decimal.NewFromInt(-50)) {
		t.Fatalf("profit/loss = %s, want -50", got)
	}
	if got := inv.ProfitLossPercent(); !got.Equal(decimal.NewFromInt(-25)) {
		t.Fatalf("profit/loss percent = %s, want -25", got)
	}
}

func TestInvestment_ProfitLossPercent_ZeroAmount(t *testing.T) {
	inv, err := NewInvestment("X", "X", decimal.Zero, CategoryStock)
	if err != nil {
		t.Fatalf("new investment: %v", err)
	}
	if got := inv.ProfitLossPercent(); !got.IsZero() {
		t.Fatalf("zero-amount percent = %s, want 0", got)
	}
}
