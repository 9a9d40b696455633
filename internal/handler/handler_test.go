package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"moneyloop/internal/engine"
	"moneyloop/internal/models"
	memoryrepository "moneyloop/internal/repository/memory"
)

type fixedSource struct {
	st engine.Status
}

func (f *fixedSource) Status() engine.Status { return f.st }

func newRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func doGet(t *testing.T, r *gin.Engine, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) apiResponse {
	t.Helper()
	var resp apiResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return resp
}

func TestPortfolioHandler_Status(t *testing.T) {
	r := newRouter()
	h := &PortfolioHandler{Source: &fixedSource{st: engine.Status{
		PortfolioID: "p1",
		TotalValue:  decimal.NewFromInt(1000),
	}}}
	h.Register(r)

	w := doGet(t, r, "/api/v1/portfolio")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	resp := decodeBody(t, w)
	if resp.Code != 0 {
		t.Fatalf("code = %d, want 0", resp.Code)
	}
}

func TestPortfolioHandler_BeforeFirstCycle(t *testing.T) {
	r := newRouter()
	h := &PortfolioHandler{Source: &fixedSource{}}
	h.Register(r)

	w := doGet(t, r, "/api/v1/portfolio")
	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want 503", w.Code)
	}
	w = doGet(t, r, "/api/v1/portfolio/risk")
	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("risk status = %d, want 503", w.Code)
	}
}

func TestHistoryHandler_Snapshots(t *testing.T) {
	store := memoryrepository.New()
	if err := store.SaveSnapshot(context.Background(), &models.PortfolioSnapshot{
		PortfolioID: "p1",
		TotalValue:  decimal.NewFromInt(1000),
	}); err != nil {
		t.Fatalf("save snapshot: %v", err)
	}

	r := newRouter()
	h := &HistoryHandler{Repo: store}
	h.Register(r)

	w := doGet(t, r, "/api/v1/snapshots")
	if w.Code != http.StatusOK {
		t.Fatalf("list status = %d, want 200", w.Code)
	}

	w = doGet(t, r, "/api/v1/snapshots/p1")
	if w.Code != http.StatusOK {
		t.Fatalf("get status = %d, want 200", w.Code)
	}

	w = doGet(t, r, "/api/v1/snapshots/missing")
	if w.Code != http.StatusNotFound {
		t.Fatalf("missing status = %d, want 404", w.Code)
	}
}

func TestHistoryHandler_HistoryQuery(t *testing.T) {
	store := memoryrepository.New()
	if err := store.SaveRecord(context.Background(), &models.InvestmentRecord{
		InvestmentID: "i1",
		PortfolioID:  "p1",
		Symbol:       "AAPL",
		Amount:       decimal.NewFromInt(100),
	}); err != nil {
		t.Fatalf("save record: %v", err)
	}

	r := newRouter()
	h := &HistoryHandler{Repo: store}
	h.Register(r)

	w := doGet(t, r, "/api/v1/history?symbol=aapl")
	if w.Code != http.StatusOK {
		t.Fatalf("symbol query status = %d, want 200", w.Code)
	}

	w = doGet(t, r, "/api/v1/history?portfolio_id=p1")
	if w.Code != http.StatusOK {
		t.Fatalf("portfolio query status = %d, want 200", w.Code)
	}

	w = doGet(t, r, "/api/v1/history")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("bare query status = %d, want 400", w.Code)
	}
}
