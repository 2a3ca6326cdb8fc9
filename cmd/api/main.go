package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/LJTian/NewsPulse/internal/aggregator"
	"github.com/LJTian/NewsPulse/internal/api"
	"github.com/LJTian/NewsPulse/internal/collector"
	"github.com/LJTian/NewsPulse/internal/config"
	"github.com/LJTian/NewsPulse/internal/logger"
	"github.com/LJTian/NewsPulse/internal/scheduler"
	"github.com/LJTian/NewsPulse/internal/storage"
	"github.com/gin-gonic/gin"
)

func main() {
	cfg := config.Load()
	log := logger.New(cfg.LogLevel)

	srcs, err := collector.LoadCatalog(cfg.SourcesFile)
	if err != nil {
		log.Error("load source catalog failed", "err", err)
		os.Exit(1)
	}

	store := storage.NewStore(cfg.RedisAddr, log)
	defer store.Close()

	agg := aggregator.NewFromCatalog(srcs, collector.NewCollyDownloader(), log)

	// the coverage probe is optional; an empty CRON_SPEC turns it off
	if cfg.CronSpec != "" {
		s, err := scheduler.New(cfg.CronSpec, agg, store, cfg.RequestTimeout, log)
		if err != nil {
			log.Error("init scheduler failed", "err", err)
			os.Exit(1)
		}
		s.Start()
		defer s.Stop()
	}

	gin.SetMode(gin.ReleaseMode)
	r := api.NewEngine(log, cfg.CORSAllowOrigins, cfg.BasicAuthUser, cfg.BasicAuthPass)
	api.NewServer(agg, store, cfg.RequestTimeout, log).RegisterRoutes(r)

	srv := &http.Server{
		Addr:              ":" + cfg.AppPort,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Info("starting api server", "addr", srv.Addr, "sources", len(srcs))
		log.Info("health check", "url", "http://localhost:"+cfg.AppPort+"/api/health")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server exit", "err", err)
			stop()
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("shutdown", "err", err)
	}
	log.Info("server stopped")
}
