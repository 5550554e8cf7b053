package main

// @title Activity Import Service API
// @version 1.0.0
// @description Service that imports kids' activity venues from the Foursquare Places API. Venues are fetched per city and category, filtered for quality and relevance, classified into themes, age groups and languages, and persisted as activity rows.
// @description
// @description Main features:
// @description - Synchronous and asynchronous venue imports per city and category
// @description - Quality filtering (rating, review count, geofence) and keyword classification
// @description - Idempotent persistence keyed by Foursquare venue ID
// @description - Import run statistics with per-city and per-category breakdowns

// @contact.name API Support
// @contact.email support@activity-import-service.com

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	_ "github.com/activity-import-service/docs"
	"github.com/activity-import-service/internal/config"
	httpDelivery "github.com/activity-import-service/internal/delivery/http"
	"github.com/activity-import-service/internal/delivery/http/handler"
	"github.com/activity-import-service/internal/infrastructure/foursquare"
	"github.com/activity-import-service/internal/pkg/logger"
	"github.com/activity-import-service/internal/repository/cache"
	"github.com/activity-import-service/internal/repository/postgres"
	redisRepo "github.com/activity-import-service/internal/repository/redis"
	"github.com/activity-import-service/internal/usecase"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting Activity Import Service")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
	)

	// 3. Connect to PostgreSQL
	db, err := postgres.New(&cfg.Database, log)
	if err != nil {
		log.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Failed to close PostgreSQL connection", zap.Error(err))
		}
	}()
	log.Info("PostgreSQL connected")

	// 4. Connect to Redis
	redisClient, err := cache.NewRedis(&cfg.Redis, log)
	if err != nil {
		log.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			log.Error("Failed to close Redis connection", zap.Error(err))
		}
	}()
	log.Info("Redis connected")

	// 5. Health checks
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.Health(ctx); err != nil {
		log.Fatal("PostgreSQL health check failed", zap.Error(err))
	}

	if err := redisClient.Health(ctx); err != nil {
		log.Fatal("Redis health check failed", zap.Error(err))
	}

	log.Info("All connections healthy")

	// 6. Initialize repositories
	cacheRepo := cache.NewCacheRepository(redisClient)
	streamRepo := redisRepo.NewStreamRepository(redisClient.Client(), log)
	placesRepo := foursquare.NewClient(&cfg.Foursquare, cacheRepo, log)
	cityRepo := postgres.NewCityRepository(db)
	activityRepo := postgres.NewActivityRepository(db)
	statsRepo := postgres.NewStatsRepository(db)

	log.Info("Repositories initialized")

	// 7. Initialize use cases
	importUC := usecase.NewImportUseCase(
		placesRepo,
		cityRepo,
		activityRepo,
		statsRepo,
		log,
		cfg.Import.BatchSize,
		cfg.Import.DefaultCityTarget,
	)

	statsUC := usecase.NewStatsUseCase(statsRepo, log)

	log.Info("Use cases initialized")

	// 8. Initialize HTTP handlers
	importHandler := handler.NewImportHandler(importUC, streamRepo, log)
	statsHandler := handler.NewStatsHandler(statsUC, log)

	log.Info("HTTP handlers initialized")

	// 9. Initialize HTTP server
	server := httpDelivery.NewServer(
		cfg,
		log,
		importHandler,
		statsHandler,
		db,
		redisClient,
	)

	log.Info("HTTP server initialized")

	// 10. Start server in goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started successfully",
		zap.String("address", cfg.GetServerAddr()),
		zap.String("env", cfg.Server.Env),
	)

	// 11. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully...")

	ctx, cancel = context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	if err := db.Close(); err != nil {
		log.Error("Failed to close database", zap.Error(err))
	}

	if err := redisClient.Close(); err != nil {
		log.Error("Failed to close Redis", zap.Error(err))
	}

	log.Info("Server stopped successfully")
}
