package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"moneyloop/internal/repository"
)

type HistoryHandler struct {
	Repo repository.Repository
}

func (h *HistoryHandler) Register(r *gin.Engine) {
	r.GET("/api/v1/snapshots", h.listSnapshots)
	r.GET("/api/v1/snapshots/:portfolio_id", h.getSnapshot)
	r.GET("/api/v1/history", h.listHistory)
}

func (h *HistoryHandler) listSnapshots(c *gin.Context) {
	if h.Repo == nil {
		Error(c, http.StatusInternalServerError, "repo unavailable")
		return
	}
	items, err := h.Repo.ListSnapshots(c.Request.Context())
	if err != nil {
		Error(c, http.StatusBadGateway, err.Error())
		return
	}
	Ok(c, items)
}

func (h *HistoryHandler) getSnapshot(c *gin.Context) {
	if h.Repo == nil {
		Error(c, http.StatusInternalServerError, "repo unavailable")
		return
	}
	id := strings.TrimSpace(c.Param("portfolio_id"))
	item, err := h.Repo.GetSnapshot(c.Request.Context(), id)
	if err != nil {
		Error(c, http.StatusBadGateway, err.Error())
		return
	}
	if item == nil {
		Error(c, http.StatusNotFound, "snapshot not found")
		return
	}
	Ok(c, item)
}

func (h *HistoryHandler) listHistory(c *gin.Context) {
	if h.Repo == nil {
		Error(c, http.StatusInternalServerError, "repo unavailable")
		return
	}
	symbol := strings.TrimSpace(c.Query("symbol"))
	portfolioID := strings.TrimSpace(c.Query("portfolio_id"))
	switch {
	case symbol != "":
		items, err := h.Repo.ListRecordsBySymbol(c.Request.Context(), symbol)
		if err != nil {
			Error(c, http.StatusBadGateway, err.Error())
			return
		}
		Ok(c, items)
	case portfolioID != "":
		items, err := h.Repo.ListRecordsByPortfolio(c.Request.Context(), portfolioID)
		if err != nil {
			Error(c, http.StatusBadGateway, err.Error())
			return
		}
		Ok(c, items)
	default:
		Error(c, http.StatusBadRequest, "symbol or portfolio_id is required")
	}
}
