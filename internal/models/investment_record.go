package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// InvestmentRecord is the append-only history row written for every accepted
// investment, including the strategy provenance that the live Portfolio does
// not carry.
type InvestmentRecord struct {
	ID           uint64 `gorm:"primaryKey;autoIncrement"`
	InvestmentID string `gorm:"type:varchar(64);not null;uniqueIndex"`
	PortfolioID  string `gorm:"type:varchar(64);not null;index"`

	Symbol   string `gorm:"type:varchar(20);not null;index"`
	Name     string `gorm:"type:varchar(100);not null"`
	Category string `gorm:"type:varchar(20);not null;index"`

	Amount decimal.Decimal `gorm:"type:numeric(30,10);not null"`

	Strategy   string  `gorm:"type:varchar(50);index"`
	Reasoning  string  `gorm:"type:text"`
	Confidence float64 `gorm:"not null"`

	PurchasedAt time.Time `gorm:"type:timestamptz;not null"`
	CreatedAt   time.Time `gorm:"type:timestamptz;autoCreateTime;index"`
}

func (InvestmentRecord) TableName() string {
	return "investment_records"
}
