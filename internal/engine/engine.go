package engine

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"moneyloop/internal/config"
	"moneyloop/internal/market"
	"moneyloop/internal/models"
	"moneyloop/internal/risk"
	"moneyloop/internal/strategy"
)

// Recorder receives every accepted investment together with the
// recommendation that produced it. Implementations persist history; the
// engine treats failures as non-fatal.
type Recorder interface {
	RecordInvestment(ctx context.Context, portfolioID string, inv *models.Investment, rec *models.Recommendation, strategyName string) error
}

// Engine drives the decision loop: each cycle asks every strategy for a
// recommendation, filters through the risk manager, applies accepted
// investments, then revalues all holdings against the feed. The portfolio is
// only ever touched from the goroutine running the loop.
type Engine struct {
	Portfolio  *models.Portfolio
	Strategies []strategy.Strategy
	Risk       *risk.Manager
	Feed       market.PriceFeed
	Recorder   Recorder
	Logger     *zap.Logger
	Config     config.EngineConfig

	mu     sync.RWMutex
	status Status
}

// Status is the read-only view published after every cycle. Handlers and the
// snapshot service read this instead of the live portfolio.
type Status struct {
	PortfolioID   string                      `json:"portfolio_id"`
	TotalValue    decimal.Decimal             `json:"total_value"`
	AvailableCash decimal.Decimal             `json:"available_cash"`
	TotalProfit   decimal.Decimal             `json:"total_profit"`
	RiskScore     decimal.Decimal             `json:"risk_score"`
	Holdings      []models.SnapshotInvestment `json:"holdings"`
	Cycles        uint64                      `json:"cycles"`
	LastUpdated   time.Time                   `json:"last_updated"`
}

func (e *Engine) cycleInterval() time.Duration {
	if e.Config.CycleInterval > 0 {
		return e.Config.CycleInterval
	}
	return time.Minute
}

func (e *Engine) errorBackoff() time.Duration {
	if e.Config.ErrorBackoff > 0 {
		return e.Config.ErrorBackoff
	}
	return 5 * time.Minute
}

func (e *Engine) minCashToInvest() decimal.Decimal {
	if e.Config.MinCashToInvest > 0 {
		return decimal.NewFromFloat(e.Config.MinCashToInvest)
	}
	return decimal.NewFromInt(100)
}

// Run loops until ctx is cancelled. A failed cycle never stops the loop; it
// stretches the sleep to the error backoff and tries again. Cancellation is
// honored between cycles, during the sleep.
func (e *Engine) Run(ctx context.Context) error {
	if e.Portfolio == nil || e.Feed == nil {
		return errors.New("engine: portfolio and feed are required")
	}
	if e.Logger != nil {
		e.Logger.Info("engine started",
			zap.String("portfolio_id", e.Portfolio.ID()),
			zap.String("total_value", e.Portfolio.TotalValue().StringFixed(2)),
			zap.String("available_cash", e.Portfolio.AvailableCash().StringFixed(2)),
		)
	}
	e.publishStatus()

	for {
		delay := e.cycleInterval()
		if err := e.RunOnce(ctx); err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return err
			}
			if e.Logger != nil {
				e.Logger.Error("cycle failed, backing off", zap.Error(err))
			}
			delay = e.errorBackoff()
		}

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}
}

// RunOnce executes a single cycle. A panic inside the cycle is converted to
// an error so Run's backoff handling applies.
func (e *Engine) RunOnce(ctx context.Context) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("cycle panic: %v", r)
		}
	}()

	if err := e.analyzeAndInvest(ctx); err != nil {
		return err
	}
	if err := e.revalueHoldings(ctx); err != nil {
		return err
	}
	e.publishStatus()
	return nil
}

func (e *Engine) analyzeAndInvest(ctx context.Context) error {
	minCash := e.minCashToInvest()
	for _, strat := range e.Strategies {
		if !e.Portfolio.CanInvest(minCash) {
			continue
		}
		rec, err := strat.Recommend(ctx, e.Portfolio, e.Feed)
		if err != nil {
			return fmt.Errorf("strategy %s: %w", strat.Name(), err)
		}
		if rec == nil {
			continue
		}
		if e.Risk != nil && !e.Risk.IsAcceptableRisk(rec, e.Portfolio) {
			continue
		}

		inv, err := models.NewInvestment(rec.Symbol, rec.Name, rec.Amount, rec.Category)
		if err != nil {
			return fmt.Errorf("strategy %s: %w", strat.Name(), err)
		}
		if err := e.Portfolio.AddInvestment(inv); err != nil {
			// Insufficient funds just means a later strategy already spent
			// the cash; drop the attempt.
			if errors.Is(err, models.ErrInsufficientFunds) {
				continue
			}
			return err
		}
		if e.Logger != nil {
			e.Logger.Info("new investment",
				zap.String("strategy", strat.Name()),
				zap.String("symbol", inv.Symbol()),
				zap.String("amount", inv.Amount().StringFixed(2)),
				zap.String("category", inv.Category().String()),
			)
		}
		if e.Recorder != nil {
			if err := e.Recorder.RecordInvestment(ctx, e.Portfolio.ID(), inv, rec, strat.Name()); err != nil && e.Logger != nil {
				e.Logger.Warn("record investment failed", zap.Error(err))
			}
		}
	}
	return nil
}

var valuationDivisor = decimal.NewFromInt(100)

func (e *Engine) revalueHoldings(ctx context.Context) error {
	for _, inv := range e.Portfolio.Investments() {
		price, err := e.Feed.CurrentPrice(ctx, inv.Symbol())
		if err != nil {
			return fmt.Errorf("price for %s: %w", inv.Symbol(), err)
		}
		if !price.IsPositive() {
			continue
		}
		// Placeholder valuation, not mark-to-market: scale the original
		// amount by price/100.
		newValue := inv.Amount().Mul(price).Div(valuationDivisor)
		e.Portfolio.UpdateInvestmentValue(inv.ID(), newValue)
	}
	return nil
}

func (e *Engine) publishStatus() {
	holdings := make([]models.SnapshotInvestment, 0, len(e.Portfolio.Investments()))
	for _, inv := range e.Portfolio.Investments() {
		holdings = append(holdings, models.SnapshotOf(inv))
	}
	riskScore := decimal.Zero
	if e.Risk != nil {
		riskScore = e.Risk.CalculateRiskScore(e.Portfolio)
	}

	e.mu.Lock()
	cycles := e.status.Cycles + 1
	e.status = Status{
		PortfolioID:   e.Portfolio.ID(),
		TotalValue:    e.Portfolio.TotalValue(),
		AvailableCash: e.Portfolio.AvailableCash(),
		TotalProfit:   e.Portfolio.TotalProfit(),
		RiskScore:     riskScore,
		Holdings:      holdings,
		Cycles:        cycles,
		LastUpdated:   e.Portfolio.LastUpdated(),
	}
	st := e.status
	e.mu.Unlock()

	if e.Logger != nil {
		e.Logger.Info("portfolio status",
			zap.String("total_value", st.TotalValue.StringFixed(2)),
			zap.String("available_cash", st.AvailableCash.StringFixed(2)),
			zap.String("total_profit", st.TotalProfit.StringFixed(2)),
			zap.Int("holdings", len(st.Holdings)),
			zap.String("risk_score", st.RiskScore.StringFixed(2)),
		)
	}
}

// Status returns the view published by the most recent cycle. Safe for
// concurrent use.
func (e *Engine) Status() Status {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.status
}
