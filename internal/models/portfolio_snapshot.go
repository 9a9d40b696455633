package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// PortfolioSnapshot is the persisted view of a portfolio at a point in time.
// Holdings are embedded as a jsonb list so a snapshot stays a single row.
type PortfolioSnapshot struct {
	ID          uint64 `gorm:"primaryKey;autoIncrement"`
	PortfolioID string `gorm:"type:varchar(64);not null;uniqueIndex"`

	TotalValue    decimal.Decimal `gorm:"type:numeric(30,10);not null"`
	AvailableCash decimal.Decimal `gorm:"type:numeric(30,10);not null"`
	TotalProfit   decimal.Decimal `gorm:"type:numeric(30,10);not null"`
	HoldingsCount int             `gorm:"not null"`

	Investments datatypes.JSON `gorm:"type:jsonb"`

	LastUpdated time.Time `gorm:"type:timestamptz;not null"`

	CreatedAt time.Time `gorm:"type:timestamptz;autoCreateTime"`
	UpdatedAt time.Time `gorm:"type:timestamptz;autoUpdateTime"`
}

func (PortfolioSnapshot) TableName() string {
	return "portfolio_snapshots"
}

// SnapshotInvestment is one entry of PortfolioSnapshot.Investments.
type SnapshotInvestment struct {
	ID           string          `json:"id"`
	Symbol       string          `json:"symbol"`
	Name         string          `json:"name"`
	Amount       decimal.Decimal `json:"amount"`
	CurrentValue decimal.Decimal `json:"current_value"`
	PurchasedAt  time.Time       `json:"purchased_at"`
	Category     string          `json:"category"`
}

// SnapshotOf flattens an investment into its persisted form.
func SnapshotOf(inv *Investment) SnapshotInvestment {
	return SnapshotInvestment{
		ID:           inv.ID(),
		Symbol:       inv.Symbol(),
		Name:         inv.Name(),
		Amount:       inv.Amount(),
		CurrentValue: inv.CurrentValue(),
		PurchasedAt:  inv.PurchasedAt(),
		Category:     inv.Category().String(),
	}
}
