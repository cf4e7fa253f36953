package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"wordwatch/internal/alert"
	"wordwatch/internal/config"
	"wordwatch/internal/db"
	"wordwatch/internal/email"
	"wordwatch/internal/metrics"
	"wordwatch/internal/models"
	"wordwatch/internal/server"
	"wordwatch/internal/validation"
	"wordwatch/internal/watcher"
)

func main() {
	ctx := context.Background()
	cfg := config.Load()

	setupLogging(cfg)

	yamlCfg, err := config.LoadYAMLConfig()
	if err != nil {
		log.Fatalf("Failed to load config file: %v", err)
	}
	cfg.YAML = yamlCfg

	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	// Initialize database
	database, err := db.New(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close()

	// Run migrations
	if err := database.RunMigrations(cfg.DatabaseURL); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	slog.Info("migrations completed successfully")

	if err := database.SeedWordLists(ctx, seedEntries(yamlCfg.SeedWords()), seedEntries(yamlCfg.SeedExceptions())); err != nil {
		log.Fatalf("Failed to seed word lists: %v", err)
	}

	metrics.Init(database)

	// Alert delivery
	sinks := alert.Multi{alert.NewLogSink(slog.Default())}
	if cfg.AlertWebhookURL != "" {
		sinks = append(sinks, alert.NewWebhookSink(cfg.AlertWebhookURL))
		slog.Info("webhook alerts enabled")
	}
	if notifier := email.NewNotifier(cfg); notifier.Enabled() {
		sinks = append(sinks, notifier)
	}
	async := alert.NewAsync(sinks, 15*time.Second)
	async.OnError = func(*models.Alert, error) {
		metrics.AlertFailed()
	}

	w := watcher.New(cfg, database, async)
	slog.Info("watching channels", "channels", cfg.WatchChannelIDs, "threshold", cfg.MatchThreshold)

	srv := server.New(cfg)
	srv.RegisterRoutes(database, w)

	// Graceful shutdown
	go func() {
		if err := srv.Start(); err != nil {
			slog.Error("server error", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
	}

	async.Wait()
	metrics.Flush()
	slog.Info("server exited")
}

func setupLogging(cfg *config.Config) {
	var handler slog.Handler
	if cfg.IsDev() {
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug})
	} else {
		handler = slog.NewJSONHandler(os.Stdout, nil)
	}
	slog.SetDefault(slog.New(handler))
}

// seedEntries normalizes seed words the same way the API stores them and
// drops invalid ones.
func seedEntries(words []string) []string {
	out := make([]string, 0, len(words))
	for _, w := range words {
		w = validation.NormalizeNewWord(w)
		if ok, msg := validation.ValidateWord(w); !ok {
			slog.Warn("skipping seed word", "word", w, "reason", msg)
			continue
		}
		out = append(out, w)
	}
	return out
}
