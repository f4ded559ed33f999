package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/proyectos-indefinidos/AnaDec/internal/adapters/primary/http/handlers"
	"github.com/proyectos-indefinidos/AnaDec/internal/adapters/primary/http/router"
	"github.com/proyectos-indefinidos/AnaDec/internal/adapters/secondary/memory"
	"github.com/proyectos-indefinidos/AnaDec/internal/adapters/secondary/newsapi"
	"github.com/proyectos-indefinidos/AnaDec/internal/adapters/secondary/postgres"
	"github.com/proyectos-indefinidos/AnaDec/internal/config"
	output "github.com/proyectos-indefinidos/AnaDec/internal/core/ports/output"
	"github.com/proyectos-indefinidos/AnaDec/internal/core/services"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	initLogger(cfg)
	if cfg.Logger.Level != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	// ============================================================================
	// Hexagonal Architecture Wiring
	// ============================================================================

	// Secondary Adapters (Output Ports - Repositories)
	var (
		rankingRepo output.RankingRepository
		ping        func(ctx context.Context) error
	)
	if cfg.Database.Enabled {
		pool, err := newPool(cfg)
		if err != nil {
			log.Fatalf("database: %v", err)
		}
		defer pool.Close()

		rankingRepo = postgres.NewRankingRepository(pool)
		ping = pool.Ping
		log.Info("database connection established")
	} else {
		rankingRepo = memory.NewRankingRepository()
		log.Info("database disabled, rankings kept in memory")
	}

	// News provider (Optional - needs an API key)
	newsProvider := newsapi.NewNewsClient(&cfg.News)
	if newsProvider.IsAvailable() {
		log.WithField("topics", cfg.News.Topics).Info("news provider initialized")
	} else {
		log.Info("news provider disabled (NEWS_API_KEY not set)")
	}

	// Core Services (Application Layer)
	standardizer, err := services.NewStandardizer(cfg.Finance.Precision, cfg.Finance.MoneyRound)
	if err != nil {
		log.Fatalf("standardizer: %v", err)
	}
	comparatorSvc := services.NewComparatorService(standardizer, rankingRepo)
	calculatorSvc := services.NewCalculatorService(standardizer)
	newsSvc := services.NewNewsService(newsProvider, services.NewsOptions{
		Topics:   cfg.News.Topics,
		Language: cfg.News.Language,
		PageSize: cfg.News.PageSize,
		TTL:      cfg.News.CacheTTL,
	})

	// Primary Adapter (HTTP Handlers)
	h := handlers.New(standardizer, comparatorSvc, calculatorSvc, newsSvc)

	// Setup router
	engine, err := router.New(h, router.Options{WebUI: cfg.Server.WebUI, Ping: ping})
	if err != nil {
		log.Fatalf("setup router: %v", err)
	}

	// Start server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.WithField("web_ui", cfg.Server.WebUI).Infof("starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Errorf("server forced shutdown: %v", err)
		return
	}

	log.Info("server stopped")
}

func newPool(cfg *config.Config) (*pgxpool.Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.Database.URL)
	if err != nil {
		return nil, fmt.Errorf("parse db config: %w", err)
	}
	if cfg.Database.MaxConns > 0 {
		poolCfg.MaxConns = int32(cfg.Database.MaxConns)
	}
	poolCfg.MaxConnLifetime = cfg.Database.ConnMaxLifetime

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("create db pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping db: %w", err)
	}
	if err := postgres.EnsureSchema(ctx, pool); err != nil {
		pool.Close()
		return nil, err
	}
	return pool, nil
}

func initLogger(cfg *config.Config) {
	level, err := log.ParseLevel(cfg.Logger.Level)
	if err != nil {
		level = log.InfoLevel
	}
	log.SetLevel(level)

	if cfg.Logger.Format == "json" {
		log.SetFormatter(&log.JSONFormatter{})
	} else {
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	}
}
