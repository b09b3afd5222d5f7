// AngelaMos | 2026
// main.go

package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/carterperez-dev/templates/review-insights/internal/admin"
	"github.com/carterperez-dev/templates/review-insights/internal/catalog"
	"github.com/carterperez-dev/templates/review-insights/internal/config"
	"github.com/carterperez-dev/templates/review-insights/internal/core"
	"github.com/carterperez-dev/templates/review-insights/internal/health"
	"github.com/carterperez-dev/templates/review-insights/internal/middleware"
	"github.com/carterperez-dev/templates/review-insights/internal/query"
	"github.com/carterperez-dev/templates/review-insights/internal/recommendation"
	"github.com/carterperez-dev/templates/review-insights/internal/review"
	"github.com/carterperez-dev/templates/review-insights/internal/sentiment"
	"github.com/carterperez-dev/templates/review-insights/internal/server"
	"github.com/carterperez-dev/templates/review-insights/internal/subscription"
)

const (
	drainDelay = 5 * time.Second
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	if err := run(*configPath); err != nil {
		slog.Error("application error", "error", err)
		os.Exit(1)
	}
}

//nolint:funlen // bootstrap code is inherently verbose
func run(configPath string) error {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGINT,
		syscall.SIGTERM,
	)
	defer stop()

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	logger := setupLogger(cfg.Log)
	slog.SetDefault(logger)

	logger.Info("starting application",
		"name", cfg.App.Name,
		"version", cfg.App.Version,
		"environment", cfg.App.Environment,
	)

	var telemetry *core.Telemetry
	if cfg.Otel.Enabled {
		tel, telErr := core.NewTelemetry(ctx, cfg.Otel, cfg.App)
		if telErr != nil {
			logger.Warn("failed to initialize telemetry", "error", telErr)
		} else {
			telemetry = tel
			logger.Info("OpenTelemetry tracer initialized",
				"endpoint", cfg.Otel.Endpoint,
			)
		}
	}

	db, err := core.NewDatabase(ctx, cfg.Database)
	if err != nil {
		return err
	}
	logger.Info("database connected",
		"max_open_conns", cfg.Database.MaxOpenConns,
		"max_idle_conns", cfg.Database.MaxIdleConns,
	)

	redis, err := core.NewRedis(ctx, cfg.Redis)
	if err != nil {
		return err
	}
	if redis != nil {
		logger.Info("redis connected",
			"pool_size", cfg.Redis.PoolSize,
		)
	} else {
		logger.Warn("REDIS_URL not set, rate limits are per instance")
	}

	classifier := sentiment.New(sentiment.Config{
		MatchThreshold:    cfg.Sentiment.MatchThreshold,
		DecisionThreshold: cfg.Sentiment.DecisionThreshold,
		Lemmatizer:        sentiment.NewLemmatizer(cfg.Sentiment.Lemmatizer),
	})
	analyzer := query.NewAnalyzer(query.Config{
		StripStopWords: cfg.Ranking.StripStopWords,
	})
	ranker := recommendation.NewRanker(classifier, analyzer, recommendation.RankerConfig{
		RelevanceWeight: cfg.Ranking.RelevanceWeight,
		SentimentWeight: cfg.Ranking.SentimentWeight,
		DefaultLimit:    cfg.Ranking.DefaultLimit,
	})

	catalogClient := catalog.NewClient(cfg.Catalog, logger)
	if cfg.Catalog.BaseURL == "" {
		logger.Warn("catalog base url not set, recommendations use placeholder names")
	}

	reviewRepo := review.NewRepository(db.DB)
	reviewSvc := review.NewService(reviewRepo, classifier)
	reviewHandler := review.NewHandler(reviewSvc)

	recommendationRepo := recommendation.NewRepository(db.DB)
	recommendationSvc := recommendation.NewService(
		recommendationRepo,
		reviewRepo,
		catalogClient,
		ranker,
		cfg.Ranking.MaxLimit,
		logger,
	)
	recommendationHandler := recommendation.NewHandler(recommendationSvc)

	subscriptionRepo := subscription.NewRepository(db.DB)
	subscriptionSvc := subscription.NewService(
		subscriptionRepo,
		subscription.NewResolver(nil),
		subscription.NewLanguages(cfg.Subscription.Languages),
		cfg.Subscription.FreePlanID,
		reviewSvc,
	)
	subscriptionHandler := subscription.NewHandler(subscriptionSvc)

	deps := []health.Dependency{{Name: "database", Checker: db}}
	if redis != nil {
		deps = append(deps, health.Dependency{Name: "redis", Checker: redis})
	}
	healthHandler := health.NewHandler(deps...)

	adminCfg := admin.HandlerConfig{
		DBStats:      db.Stats,
		DBPing:       db.Ping,
		CatalogState: catalogClient.State,
	}
	if redis != nil {
		adminCfg.RedisStats = redis.PoolStats
		adminCfg.RedisPing = redis.Ping
	}
	adminHandler := admin.NewHandler(adminCfg)

	srv := server.New(server.Config{
		ServerConfig:  cfg.Server,
		HealthHandler: healthHandler,
		Logger:        logger,
	})

	router := srv.Router()

	router.Use(middleware.RequestID)
	router.Use(middleware.Identity)
	router.Use(middleware.Logger(logger))
	router.Use(
		middleware.NewRateLimiter(redis.RateLimitClient(), middleware.RateLimitConfig{
			Limit: middleware.PerWindow(
				cfg.RateLimit.Requests,
				cfg.RateLimit.Burst,
				cfg.RateLimit.Window,
			),
			KeyFunc:    middleware.KeyByUserAndEndpoint,
			BypassFunc: middleware.SkipOpsPaths,
			FailOpen:   true,
		}).Handler,
	)
	router.Use(middleware.SecurityHeaders(cfg.IsProduction()))
	router.Use(middleware.CORS(cfg.CORS))

	healthHandler.RegisterRoutes(router)
	srv.MountMetrics()

	router.Route("/v1", func(r chi.Router) {
		reviewHandler.RegisterRoutes(r)
		recommendationHandler.RegisterRoutes(r, middleware.RequireUser)
		subscriptionHandler.RegisterRoutes(r)

		if !cfg.IsProduction() {
			adminHandler.RegisterRoutes(r)
		}
	})

	errChan := make(chan error, 1)
	go func() {
		errChan <- srv.Start()
	}()

	select {
	case err := <-errChan:
		return err
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		cfg.Server.ShutdownTimeout+drainDelay+5*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx, drainDelay); err != nil {
		logger.Error("server shutdown error", "error", err)
	}

	if telemetry != nil {
		if err := telemetry.Shutdown(shutdownCtx); err != nil {
			logger.Error("telemetry shutdown error", "error", err)
		}
	}

	if err := redis.Close(); err != nil {
		logger.Error("redis close error", "error", err)
	}

	if err := db.Close(); err != nil {
		logger.Error("database close error", "error", err)
	}

	logger.Info("application stopped")
	return nil
}

func setupLogger(cfg config.LogConfig) *slog.Logger {
	var handler slog.Handler

	level := slog.LevelInfo
	switch cfg.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	opts := &slog.HandlerOptions{Level: level}

	if cfg.Format == "json" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	return slog.New(handler)
}
