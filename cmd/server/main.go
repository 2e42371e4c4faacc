package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/subosito/gotenv"

	"github.com/Chia168168/Recipe-1/internal/config"
	"github.com/Chia168168/Recipe-1/internal/domain/conversion"
	"github.com/Chia168168/Recipe-1/internal/domain/recipes"
	"github.com/Chia168168/Recipe-1/internal/domain/reference"
	"github.com/Chia168168/Recipe-1/internal/infra/db"
	httpx "github.com/Chia168168/Recipe-1/internal/infra/http"
	"github.com/Chia168168/Recipe-1/internal/infra/logger"
)

func main() {
	_ = gotenv.Load()

	cfgPath := os.Getenv("APP_CONFIG")
	if cfgPath == "" {
		cfgPath = "config/example.yaml"
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		panic(err)
	}

	log := logger.New(cfg.App.Env)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := db.RunMigrations(ctx, cfg.Postgres.DSN); err != nil {
		log.Error("migrations failed", "err", err)
		return
	}
	log.Info("migrations applied")

	pool, err := db.Connect(ctx, cfg.Postgres.DSN)
	if err != nil {
		log.Error("db connect failed", "err", err)
		return
	}
	defer pool.Close()
	log.Info("db connected")

	engine := conversion.NewEngine(cfg.Classifier())
	engine.StrictFlourMatch = cfg.Conversion.StrictFlourMatch

	srv := httpx.New(cfg.HTTP.Addr, log,
		recipes.NewRepo(pool), reference.NewRepo(pool),
		engine, cfg.Metrics.Enabled)
	go func() {
		if err := srv.Start(); err != nil && err != http.ErrServerClosed {
			log.Error("http server error", "err", err)
		}
	}()
	log.Info("HTTP server started", "addr", cfg.HTTP.Addr)

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = srv.Shutdown(shutdownCtx)
	log.Info("graceful shutdown complete")
}
