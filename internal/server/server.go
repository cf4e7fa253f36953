package server

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/logger"
	"github.com/gofiber/fiber/v3/middleware/recover"
	"github.com/gofiber/storage/redis/v3"

	"wordwatch/internal/config"
)

// Server wraps the Fiber app and configuration.
type Server struct {
	App *fiber.App
	Cfg *config.Config

	// limiterStorage holds rate limiter state. Nil means in-memory.
	limiterStorage fiber.Storage
}

// New creates a new server with middleware configured.
func New(cfg *config.Config) *Server {
	app := fiber.New(fiber.Config{
		AppName:      "wordwatch",
		UnescapePath: true,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		ErrorHandler: func(c fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			message := "Internal Server Error"

			var e *fiber.Error
			if errors.As(err, &e) {
				code = e.Code
				message = e.Message
			} else {
				slog.Error("unhandled request error", "path", c.Path(), "error", err)
			}

			return c.Status(code).JSON(fiber.Map{
				"status": "error",
				"error":  message,
			})
		},
	})

	// Global middleware
	app.Use(recover.New())
	app.Use(logger.New())

	return &Server{
		App:            app,
		Cfg:            cfg,
		limiterStorage: newLimiterStorage(cfg),
	}
}

// newLimiterStorage connects to Redis when configured so replicas share
// rate limits.
func newLimiterStorage(cfg *config.Config) fiber.Storage {
	if cfg.RedisURL == "" || cfg.RateLimit <= 0 {
		return nil
	}
	slog.Info("rate limiter using redis storage")
	return redis.New(redis.Config{
		URL: cfg.RedisURL,
	})
}

// Start listens on the configured address.
func (s *Server) Start() error {
	slog.Info("starting server", "addr", s.Cfg.ServerAddr)
	return s.App.Listen(s.Cfg.ServerAddr, fiber.ListenConfig{
		DisableStartupMessage: !s.Cfg.IsDev(),
	})
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	err := s.App.ShutdownWithContext(ctx)
	if s.limiterStorage != nil {
		if cerr := s.limiterStorage.Close(); cerr != nil {
			err = errors.Join(err, cerr)
		}
	}
	return err
}
