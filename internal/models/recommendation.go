package models

import "github.com/shopspring/decimal"

// Recommendation is an ephemeral proposal emitted by a strategy. It is judged
// by the risk manager within the same cycle and then discarded; only accepted
// ones leave a trace, copied into the investment history.
type Recommendation struct {
	Symbol     string
	Name       string
	Amount     decimal.Decimal
	Category   Category
	Reasoning  string
	Confidence float64 // [0,1]
}
