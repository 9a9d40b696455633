package models

import (
	"testing"

	"github.com/shopspring/decimal"
)

func mustInvestment(t *testing.T, symbol string, amount int64, category Category) *Investment {
	t.Helper()
	inv, err := NewInvestment(symbol, symbol, decimal.NewFromInt(amount), category)
	if err != nil {
		t.Fatalf("new investment %s: %v", symbol, err)
	}
	return inv
}

func TestNewPortfolio(t *testing.T) {
	p := NewPortfolio(decimal.NewFromInt(1000))
	if p.ID() == "" {
		t.Fatalf("expected generated id")
	}
	if !p.AvailableCash().Equal(decimal.NewFromInt(1000)) {
		t.Fatalf("available cash = %s, want 1000", p.AvailableCash())
	}
	if !p.TotalValue().Equal(decimal.NewFromInt(1000)) {
		t.Fatalf("total value = %s, want 1000", p.TotalValue())
	}
	if len(p.Investments()) != 0 {
		t.Fatalf("expected empty holdings")
	}
}

func TestNewPortfolio_NegativeCashClampedToZero(t *testing.T) {
	p := NewPortfolio(decimal.NewFromInt(-50))
	if !p.AvailableCash().IsZero() {
		t.Fatalf("available cash = %s, want 0", p.AvailableCash())
	}
}

func TestPortfolio_AddInvestment(t *testing.T) {
	p := NewPortfolio(decimal.NewFromInt(1000))
	inv := mustInvestment(t, "AAPL", 500, CategoryStock)

	if err := p.AddInvestment(inv); err != nil {
		t.Fatalf("add investment: %v", err)
	}
	if !p.AvailableCash().Equal(decimal.NewFromInt(500)) {
		t.Fatalf("available cash = %s, want 500", p.AvailableCash())
	}
	if !p.TotalValue().Equal(decimal.NewFromInt(1000)) {
		t.Fatalf("total value = %s, want 1000", p.TotalValue())
	}
	if got := len(p.Investments()); got != 1 {
		t.Fatalf("holdings = %d, want 1", got)
	}
}

func TestPortfolio_AddInvestment_InsufficientFunds(t *testing.T) {
	p := NewPortfolio(decimal.NewFromInt(100))
	before := p.LastUpdated()
	inv := mustInvestment(t, "AAPL", 500, CategoryStock)

	if err := p.AddInvestment(inv); err != ErrInsufficientFunds {
		t.Fatalf("expected ErrInsufficientFunds, got %v", err)
	}
	if !p.AvailableCash().Equal(decimal.NewFromInt(100)) {
		t.Fatalf("cash changed on rejected investment: %s", p.AvailableCash())
	}
	if len(p.Investments()) != 0 {
		t.Fatalf("holdings changed on rejected investment")
	}
	if !p.LastUpdated().Equal(before) {
		t.Fatalf("timestamp changed on rejected investment")
	}
}

func TestPortfolio_AddInvestment_ExactCash(t *testing.T) {
	p := NewPortfolio(decimal.NewFromInt(500))
	inv := mustInvestment(t, "SPY", 500, CategoryETF)

	if err := p.AddInvestment(inv); err != nil {
		t.Fatalf("add investment at exact cash: %v", err)
	}
	if !p.AvailableCash().IsZero() {
		t.Fatalf("available cash = %s, want 0", p.AvailableCash())
	}
}

func TestPortfolio_UpdateInvestmentValue(t *testing.T) {
	p := NewPortfolio(decimal.NewFromInt(1000))
	inv := mustInvestment(t, "AAPL", 500, CategoryStock)
	if err := p.AddInvestment(inv); err != nil {
		t.Fatalf("add investment: %v", err)
	}

	p.UpdateInvestmentValue(inv.ID(), decimal.NewFromInt(600))

	if !inv.CurrentValue().Equal(decimal.NewFromInt(600)) {
		t.Fatalf("current value = %s, want 600", inv.CurrentValue())
	}
	if !p.TotalValue().Equal(decimal.NewFromInt(1100)) {
		t.Fatalf("total value = %s, want 1100", p.TotalValue())
	}
	if !p.TotalProfit().Equal(decimal.NewFromInt(100)) {
		t.Fatalf("total profit = %s, want 100", p.TotalProfit())
	}
}

func TestPortfolio_UpdateInvestmentValue_UnknownID(t *testing.T) {
	p := NewPortfolio(decimal.NewFromInt(1000))
	inv := mustInvestment(t, "AAPL", 500, CategoryStock)
	if err := p.AddInvestment(inv); err != nil {
		t.Fatalf("add investment: %v", err)
	}
	before := p.LastUpdated()

	p.UpdateInvestmentValue("no-such-id", decimal.NewFromInt(999))

	if !inv.CurrentValue().Equal(decimal.NewFromInt(500)) {
		t.Fatalf("current value changed for unknown id: %s", inv.CurrentValue())
	}
	if !p.LastUpdated().Equal(before) {
		t.Fatalf("timestamp changed for unknown id")
	}
}

func TestPortfolio_TotalProfit_Negative(t *testing.T) {
	p := NewPortfolio(decimal.NewFromInt(1000))
	a := mustInvestment(t, "AAPL", 300, CategoryStock)
	b := mustInvestment(t, "BTC", 200, CategoryCrypto)
	for _, inv := range []*Investment{a, b} {
		if err := p.AddInvestment(inv); err != nil {
			t.Fatalf("add investment: %v", err)
		}
	}

	p.UpdateInvestmentValue(a.ID(), decimal.NewFromInt(350))
	p.UpdateInvestmentValue(b.ID(), decimal.NewFromInt(100))

	if !p.TotalProfit().Equal(decimal.NewFromInt(-50)) {
		t.Fatalf("total profit = %s, want -50", p.TotalProfit())
	}
}

func TestPortfolio_TotalValue_Idempotent(t *testing.T) {
	p := NewPortfolio(decimal.NewFromInt(1000))
	inv := mustInvestment(t, "VTI", 400, CategoryETF)
	if err := p.AddInvestment(inv); err != nil {
		t.Fatalf("add investment: %v", err)
	}

	first := p.TotalValue()
	for i := 0; i < 5; i++ {
		if got := p.TotalValue(); !got.Equal(first) {
			t.Fatalf("total value drifted on read: %s != %s", got, first)
		}
	}
}

func TestPortfolio_InvestmentsIsACopy(t *testing.T) {
	p := NewPortfolio(decimal.NewFromInt(1000))
	inv := mustInvestment(t, "QQQ", 100, CategoryETF)
	if err := p.AddInvestment(inv); err != nil {
		t.Fatalf("add investment: %v", err)
	}

	got := p.Investments()
	got[0] = nil
	if p.Investments()[0] == nil {
		t.Fatalf("mutating the returned slice leaked into the portfolio")
	}
}
