package main

import (
	"context"
	"errors"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"moneyloop/internal/config"
	cronrunner "moneyloop/internal/cron"
	"moneyloop/internal/db"
	"moneyloop/internal/engine"
	"moneyloop/internal/handler"
	"moneyloop/internal/logger"
	"moneyloop/internal/market"
	"moneyloop/internal/models"
	"moneyloop/internal/repository"
	gormrepository "moneyloop/internal/repository/gorm"
	memoryrepository "moneyloop/internal/repository/memory"
	"moneyloop/internal/risk"
	"moneyloop/internal/service"
	"moneyloop/internal/strategy"
)

func main() {
	cfgPath := os.Getenv("ML_CONFIG")
	if cfgPath == "" {
		cfgPath = "config/config.yaml"
	}

	envOnly := false
	if envOnlyRaw := os.Getenv("ML_ENV_ONLY"); envOnlyRaw != "" {
		envOnly = strings.EqualFold(envOnlyRaw, "true") || envOnlyRaw == "1"
	}

	cfg, err := config.Load(cfgPath, envOnly)
	if err != nil {
		panic(err)
	}

	log, err := logger.New(cfg.Log)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var store repository.Repository
	var gormDB *gorm.DB
	if strings.TrimSpace(cfg.DB.DSN) != "" {
		dbConn, err := db.Open(cfg.DB)
		if err != nil {
			log.Fatal("db open failed", zap.Error(err))
		}
		defer db.Close(dbConn)
		if err := db.AutoMigrate(dbConn); err != nil {
			log.Fatal("auto-migrate failed", zap.Error(err))
		}
		store = gormrepository.New(dbConn.Gorm)
		gormDB = dbConn.Gorm
		log.Info("storage: postgres")
	} else {
		store = memoryrepository.New()
		log.Info("storage: in-memory")
	}

	seed := cfg.Market.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))
	feed := market.NewMockFeed(rng, cfg.Market.Latency)

	portfolio := models.NewPortfolio(decimal.NewFromFloat(cfg.Engine.InitialCash))
	riskMgr := &risk.Manager{Config: cfg.Risk, Logger: log}

	// Declared order matters: earlier strategies get first claim on cash.
	var strategies []strategy.Strategy
	if cfg.Strategies.ETF.Enabled {
		strategies = append(strategies, &strategy.ETFDiversification{Params: cfg.Strategies.ETF, Rng: rng, Logger: log})
	}
	if cfg.Strategies.Crypto.Enabled {
		strategies = append(strategies, &strategy.CryptoTrend{Params: cfg.Strategies.Crypto, Rng: rng, Logger: log})
	}
	if cfg.Strategies.Value.Enabled {
		strategies = append(strategies, &strategy.ValueStock{Params: cfg.Strategies.Value, Rng: rng, Logger: log})
	}

	eng := &engine.Engine{
		Portfolio:  portfolio,
		Strategies: strategies,
		Risk:       riskMgr,
		Feed:       feed,
		Recorder:   &service.HistoryRecorder{Repo: store, Logger: log},
		Logger:     log,
		Config:     cfg.Engine,
	}

	if strings.EqualFold(cfg.App.Env, "dev") {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())

	healthHandler := &handler.HealthHandler{DB: gormDB}
	healthHandler.Register(router)
	portfolioHandler := &handler.PortfolioHandler{Source: eng}
	portfolioHandler.Register(router)
	historyHandler := &handler.HistoryHandler{Repo: store}
	historyHandler.Register(router)

	srv := &http.Server{
		Addr:    cfg.Server.HTTPAddr,
		Handler: router,
	}
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("http server stopped", zap.Error(err))
		}
	}()

	cronRunner := cronrunner.New(log, ctx)
	if cfg.Snapshot.Enabled {
		snapshotSvc := &service.SnapshotService{Repo: store, Source: eng, Logger: log}
		if _, err := cronRunner.Add(cfg.Snapshot.Schedule, func(ctx context.Context) {
			if err := snapshotSvc.Persist(ctx); err != nil {
				log.Warn("portfolio snapshot failed", zap.Error(err))
			}
		}); err != nil {
			log.Warn("cron register snapshot failed", zap.Error(err))
		}
	}
	cronRunner.Start()
	defer cronRunner.Stop()

	if err := eng.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		log.Error("engine stopped", zap.Error(err))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = srv.Shutdown(shutdownCtx)
	log.Info("shutdown complete")
}
