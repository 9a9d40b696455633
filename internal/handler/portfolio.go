package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"moneyloop/internal/engine"
)

// StatusSource is satisfied by *engine.Engine.
type StatusSource interface {
	Status() engine.Status
}

type PortfolioHandler struct {
	Source StatusSource
}

func (h *PortfolioHandler) Register(r *gin.Engine) {
	g := r.Group("/api/v1/portfolio")
	g.GET("", h.status)
	g.GET("/risk", h.risk)
}

func (h *PortfolioHandler) status(c *gin.Context) {
	if h.Source == nil {
		Error(c, http.StatusInternalServerError, "engine unavailable")
		return
	}
	st := h.Source.Status()
	if st.PortfolioID == "" {
		Error(c, http.StatusServiceUnavailable, "no cycle completed yet")
		return
	}
	Ok(c, st)
}

func (h *PortfolioHandler) risk(c *gin.Context) {
	if h.Source == nil {
		Error(c, http.StatusInternalServerError, "engine unavailable")
		return
	}
	st := h.Source.Status()
	if st.PortfolioID == "" {
		Error(c, http.StatusServiceUnavailable, "no cycle completed yet")
		return
	}
	Ok(c, gin.H{
		"portfolio_id": st.PortfolioID,
		"risk_score":   st.RiskScore,
	})
}
