package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"bizform/internal/assistant"
	assistanthandler "bizform/internal/assistant/handler"
	assistantmetrics "bizform/internal/assistant/metrics"
	"bizform/internal/content"
	contenthandler "bizform/internal/content/handler"
	contentmetrics "bizform/internal/content/metrics"
	contentstore "bizform/internal/content/store"
	"bizform/internal/platform/config"
	"bizform/internal/platform/httpserver"
	"bizform/internal/platform/logger"
	"bizform/internal/platform/postgres"
	platformredis "bizform/internal/platform/redis"
	"bizform/internal/ratelimit"
	ratelimitmetrics "bizform/internal/ratelimit/metrics"
	"bizform/internal/taxes"
	taxeshandler "bizform/internal/taxes/handler"
	taxesmetrics "bizform/internal/taxes/metrics"
	httptransport "bizform/internal/transport/http"
	"bizform/internal/wizard"
	wizardhandler "bizform/internal/wizard/handler"
	wizardmetrics "bizform/internal/wizard/metrics"
)

// main wires dependencies and owns the server lifecycle. Business logic lives
// in the internal module packages.
func main() {
	cfg := config.FromEnv()
	log := logger.New()

	health := make(map[string]httptransport.HealthChecker)

	redisClient, err := platformredis.New(context.Background(), cfg.Redis)
	if err != nil {
		log.Error("redis connection failed", "error", err)
		os.Exit(1)
	}
	if redisClient != nil {
		defer redisClient.Close()
		health["redis"] = redisClient.Health
		log.Info("redis connected")
	}

	db, err := postgres.New(cfg.Postgres)
	if err != nil {
		log.Error("postgres connection failed", "error", err)
		os.Exit(1)
	}
	if db != nil {
		defer db.Close()
		health["postgres"] = db.PingContext
		log.Info("postgres connected")
	}

	// Taxes.
	taxesSvc := taxes.NewService(log, taxesmetrics.New())

	// Wizard.
	runStore := wizard.NewMemoryStore(cfg.Wizard.RunTTL)
	defer runStore.Close()
	wizardSvc := wizard.NewService(runStore, log, wizardmetrics.New())

	// Assistant.
	var replyCache assistant.Cache = assistant.NewMemoryCache()
	if redisClient != nil {
		replyCache = assistant.NewRedisCache(redisClient)
	}
	provider := assistant.NewOpenAIProvider(
		cfg.Assistant.APIKey,
		cfg.Assistant.Model,
		cfg.Assistant.BaseURL,
		cfg.Assistant.Timeout,
	)
	assistantSvc := assistant.NewService(provider, replyCache, cfg.Assistant.CacheTTL, log, assistantmetrics.New())

	// Content.
	var primary content.Reader
	if db != nil {
		primary = contentstore.NewPostgres(db)
	}
	contentSvc := content.NewService(primary, contentstore.NewMemorySeeded(), log, contentmetrics.New())

	// Rate limiter for the assistant route.
	limiterStore := ratelimit.NewMemoryStore()
	defer limiterStore.Close()
	limiter := ratelimit.New(
		limiterStore,
		cfg.RateLimit.Limit,
		cfg.RateLimit.Window,
		log,
		ratelimitmetrics.New(),
		ratelimit.WithDisabled(cfg.RateLimit.Disabled),
	)

	router := httptransport.NewRouter(httptransport.RouterConfig{
		Handlers: []httptransport.Registrar{
			taxeshandler.New(taxesSvc, log),
			wizardhandler.New(wizardSvc, log),
			contenthandler.New(contentSvc, log),
		},
		Limited: []httptransport.Registrar{
			assistanthandler.New(assistantSvc, log),
		},
		RateLimit: limiter,
		Health:    health,
	})

	srv := httpserver.New(cfg.Server.Addr, router)

	go func() {
		log.Info("server starting", "addr", cfg.Server.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("graceful shutdown failed", "error", err)
		os.Exit(1)
	}
	log.Info("server stopped")
}
