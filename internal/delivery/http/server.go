package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	fiberSwagger "github.com/swaggo/fiber-swagger"
	"go.uber.org/zap"

	"github.com/activity-import-service/internal/config"
	"github.com/activity-import-service/internal/delivery/http/handler"
	"github.com/activity-import-service/internal/delivery/http/middleware"
	"github.com/activity-import-service/internal/repository/cache"
	"github.com/activity-import-service/internal/repository/postgres"
)

// Server is the Fiber HTTP server.
type Server struct {
	app    *fiber.App
	config *config.Config
	logger *zap.Logger

	importHandler *handler.ImportHandler
	statsHandler  *handler.StatsHandler

	db    *postgres.DB
	redis *cache.Redis
}

func NewServer(
	cfg *config.Config,
	logger *zap.Logger,
	importHandler *handler.ImportHandler,
	statsHandler *handler.StatsHandler,
	db *postgres.DB,
	redis *cache.Redis,
) *Server {
	app := fiber.New(fiber.Config{
		AppName: "Activity Import Service",
		// Synchronous imports walk every (city, category) pair with
		// rate-limited provider calls, so the write timeout is generous.
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 5 * time.Minute,
		IdleTimeout:  60 * time.Second,
		ErrorHandler: customErrorHandler(logger),
	})

	s := &Server{
		app:           app,
		config:        cfg,
		logger:        logger,
		importHandler: importHandler,
		statsHandler:  statsHandler,
		db:            db,
		redis:         redis,
	}

	s.setupMiddlewares()
	s.setupRoutes()

	return s
}

func (s *Server) setupMiddlewares() {
	s.app.Use(middleware.Recovery())
	s.app.Use(middleware.Logger(s.logger))
	s.app.Use(middleware.CORS())
	s.app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
}

func (s *Server) setupRoutes() {
	// Swagger documentation route
	s.app.Get("/swagger/*", fiberSwagger.WrapHandler)

	api := s.app.Group("/api/v1")

	// Health check with dependency probes
	api.Get("/health", s.healthCheck)

	// Import routes
	api.Get("/import", s.importHandler.GetMetadata)
	api.Post("/import", s.importHandler.RunImport)
	api.Post("/import/async", s.importHandler.RunImportAsync)
	api.Get("/import/stats", s.statsHandler.GetRecentRuns)
}

func (s *Server) healthCheck(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 2*time.Second)
	defer cancel()

	status := "healthy"
	checks := fiber.Map{
		"database": "ok",
		"redis":    "ok",
	}

	if err := s.db.Health(ctx); err != nil {
		status = "degraded"
		checks["database"] = err.Error()
	}
	if err := s.redis.Health(ctx); err != nil {
		status = "degraded"
		checks["redis"] = err.Error()
	}

	code := fiber.StatusOK
	if status != "healthy" {
		code = fiber.StatusServiceUnavailable
	}

	return c.Status(code).JSON(fiber.Map{
		"status": status,
		"checks": checks,
		"time":   time.Now(),
	})
}

// Start begins serving on the configured address.
func (s *Server) Start() error {
	addr := s.config.GetServerAddr()
	s.logger.Info("Starting HTTP server", zap.String("address", addr))
	return s.app.Listen(addr)
}

// Shutdown stops the server, draining in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")
	return s.app.ShutdownWithContext(ctx)
}

func customErrorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError

		if e, ok := err.(*fiber.Error); ok {
			code = e.Code
		}

		logger.Error("HTTP Error",
			zap.String("path", c.Path()),
			zap.Int("status", code),
			zap.Error(err),
		)

		return c.Status(code).JSON(fiber.Map{
			"error": fiber.Map{
				"code":    "INTERNAL_SERVER_ERROR",
				"message": err.Error(),
			},
		})
	}
}
