package server

import (
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/gofiber/fiber/v3/middleware/limiter"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"wordwatch/internal/handlers/api"
	"wordwatch/internal/middleware"
)

// Store is the persistence the HTTP API needs.
type Store interface {
	api.WordStore
	api.Pinger
}

// RegisterRoutes registers all application routes.
func (s *Server) RegisterRoutes(store Store, scanner api.Scanner) {
	// Initialize middleware
	tokenMiddleware := middleware.NewTokenMiddleware(s.Cfg.APIToken)
	if !tokenMiddleware.Enabled() {
		slog.Warn("API_TOKEN is not set, /api routes are unauthenticated")
	}

	// Initialize handlers
	probeHandler := api.NewProbeHandler(store)
	messageHandler := api.NewMessageHandler(scanner)
	wordHandler := api.NewWordHandler(store)

	// Probes
	s.App.Get("/healthz", probeHandler.Liveness)
	s.App.Get("/readyz", probeHandler.Readiness)

	if s.Cfg.EnableMetrics {
		s.App.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))
	}

	apiGroup := s.App.Group("/api", tokenMiddleware.RequireToken)

	// Message ingestion is never throttled
	apiGroup.Post("/messages", messageHandler.Ingest)

	// Management routes
	limit := s.managementLimiter()
	apiGroup.Post("/check", limit, messageHandler.Check)
	apiGroup.Get("/words", limit, wordHandler.ListWords)
	apiGroup.Post("/words", limit, wordHandler.AddWord)
	apiGroup.Delete("/words/:word", limit, wordHandler.DeleteWord)
	apiGroup.Get("/exceptions", limit, wordHandler.ListExceptions)
	apiGroup.Post("/exceptions", limit, wordHandler.AddException)
	apiGroup.Delete("/exceptions/:word", limit, wordHandler.DeleteException)
}

// managementLimiter limits management requests per IP. A zero rate limit
// disables it.
func (s *Server) managementLimiter() fiber.Handler {
	if s.Cfg.RateLimit <= 0 {
		return func(c fiber.Ctx) error {
			return c.Next()
		}
	}

	return limiter.New(limiter.Config{
		Max:        s.Cfg.RateLimit,
		Expiration: 1 * time.Minute,
		Storage:    s.limiterStorage,
		KeyGenerator: func(c fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"status": "error",
				"error":  "rate limit exceeded",
			})
		},
	})
}
