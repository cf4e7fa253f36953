package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"wordwatch/internal/detect"
	"wordwatch/internal/validation"
)

// Config holds all application configuration loaded from environment variables.
type Config struct {
	// Environment
	Env string // "development", "production", etc.

	// Server
	ServerAddr string
	APIToken   string // Bearer token required on /api routes; empty disables the check
	RateLimit  int    // env: API_RATE_LIMIT, requests per minute per IP on /api, 0 disables
	RedisURL   string // Shared rate limiter state; in-memory when empty

	// Database
	DatabaseURL string

	// Detection
	MatchThreshold  int      // env: MATCH_THRESHOLD, 0-100, default 80
	WatchChannelIDs []string // env: WATCH_CHANNEL_IDS, comma-separated
	CommandPrefix   string   // Messages starting with this are bot commands and never scanned
	BotUserID       string   // Messages from this user are ignored
	IgnoreBots      bool     // env: IGNORE_BOT_MESSAGES, also skip other bots and webhooks

	// Alerting
	AlertChannelID  string
	AlertRoleIDs    []string // env: ALERT_ROLE_IDS, mentioned in every alert
	AlertWebhookURL string
	AlertEmailTo    []string

	// SMTP
	SMTPEnabled  bool
	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	SMTPFrom     string
	SMTPFromName string
	SMTPTLS      string // "none", "tls" or "starttls"

	// Metrics
	EnableMetrics bool

	// Populated from config.yaml, may be nil
	YAML *YAMLConfig

	// invalid holds parse errors found while loading, reported by Validate.
	invalid []string
}

// Load reads configuration from environment variables with sensible defaults.
// A .env file in the working directory is loaded first if present.
func Load() *Config {
	// Existing environment variables win over .env entries
	_ = godotenv.Load()

	cfg := &Config{
		Env:             getEnv("ENV", "development"),
		ServerAddr:      getEnv("SERVER_ADDR", ":3000"),
		APIToken:        getEnv("API_TOKEN", ""),
		RedisURL:        getEnv("REDIS_URL", ""),
		DatabaseURL:     getEnv("DATABASE_URL", ""),
		WatchChannelIDs: splitList(getEnv("WATCH_CHANNEL_IDS", "")),
		CommandPrefix:   getEnv("COMMAND_PREFIX", "!"),
		BotUserID:       getEnv("BOT_USER_ID", ""),
		IgnoreBots:      getEnv("IGNORE_BOT_MESSAGES", "") != "",
		AlertChannelID:  getEnv("ALERT_CHANNEL_ID", ""),
		AlertRoleIDs:    splitList(getEnv("ALERT_ROLE_IDS", "")),
		AlertWebhookURL: getEnv("ALERT_WEBHOOK_URL", ""),
		AlertEmailTo:    splitList(getEnv("ALERT_EMAIL_TO", "")),
		SMTPEnabled:     getEnv("SMTP_ENABLED", "") != "",
		SMTPHost:        getEnv("SMTP_HOST", ""),
		SMTPUsername:    getEnv("SMTP_USERNAME", ""),
		SMTPPassword:    getEnv("SMTP_PASSWORD", ""),
		SMTPFrom:        getEnv("SMTP_FROM", ""),
		SMTPFromName:    getEnv("SMTP_FROM_NAME", "wordwatch"),
		SMTPTLS:         getEnv("SMTP_TLS", "starttls"),
		EnableMetrics:   getEnv("ENABLE_METRICS", "") != "",
	}

	cfg.MatchThreshold = cfg.getEnvInt("MATCH_THRESHOLD", detect.DefaultThreshold)
	cfg.SMTPPort = cfg.getEnvInt("SMTP_PORT", 587)
	cfg.RateLimit = cfg.getEnvInt("API_RATE_LIMIT", 600)

	return cfg
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func (c *Config) getEnvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		c.invalid = append(c.invalid, fmt.Sprintf("%s must be an integer, got %q", key, value))
		return fallback
	}
	return n
}

// splitList splits a comma-separated value, dropping blanks.
func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// Validate reports every missing or malformed setting at once.
func (c *Config) Validate() error {
	problems := append([]string(nil), c.invalid...)

	var missing []string
	if c.DatabaseURL == "" {
		missing = append(missing, "DATABASE_URL")
	}
	if c.AlertChannelID == "" {
		missing = append(missing, "ALERT_CHANNEL_ID")
	}
	if len(c.WatchChannelIDs) == 0 {
		missing = append(missing, "WATCH_CHANNEL_IDS")
	}
	if len(missing) > 0 {
		problems = append(problems, "missing required settings: "+strings.Join(missing, ", "))
	}

	if c.MatchThreshold < 0 || c.MatchThreshold > 100 {
		problems = append(problems, fmt.Sprintf("MATCH_THRESHOLD must be between 0 and 100, got %d", c.MatchThreshold))
	}

	for _, id := range c.WatchChannelIDs {
		if !isSnowflake(id) {
			problems = append(problems, fmt.Sprintf("WATCH_CHANNEL_IDS contains a non-numeric id %q", id))
		}
	}
	if c.AlertChannelID != "" && !isSnowflake(c.AlertChannelID) {
		problems = append(problems, fmt.Sprintf("ALERT_CHANNEL_ID is not numeric: %q", c.AlertChannelID))
	}
	for _, id := range c.AlertRoleIDs {
		if !isSnowflake(id) {
			problems = append(problems, fmt.Sprintf("ALERT_ROLE_IDS contains a non-numeric id %q", id))
		}
	}

	if c.AlertWebhookURL != "" {
		if ok, msg := validation.ValidateURL(c.AlertWebhookURL); !ok {
			problems = append(problems, "ALERT_WEBHOOK_URL: "+msg)
		}
	}

	if c.RedisURL != "" && !strings.HasPrefix(c.RedisURL, "redis://") && !strings.HasPrefix(c.RedisURL, "rediss://") {
		problems = append(problems, "REDIS_URL must start with redis:// or rediss://")
	}

	if c.RateLimit < 0 {
		problems = append(problems, fmt.Sprintf("API_RATE_LIMIT must not be negative, got %d", c.RateLimit))
	}

	switch c.SMTPTLS {
	case "none", "tls", "starttls":
	default:
		problems = append(problems, fmt.Sprintf("SMTP_TLS must be none, tls or starttls, got %q", c.SMTPTLS))
	}

	if len(problems) > 0 {
		return errors.New(strings.Join(problems, "; "))
	}
	return nil
}

func isSnowflake(id string) bool {
	_, err := strconv.ParseUint(id, 10, 64)
	return err == nil
}

// IsDev returns true if the environment is set to development.
func (c *Config) IsDev() bool {
	return c.Env == "development" || c.Env == "dev"
}

// IsEmailEnabled returns true if SMTP is fully configured.
func (c *Config) IsEmailEnabled() bool {
	return c.SMTPEnabled && c.SMTPHost != "" && c.SMTPFrom != ""
}

// IsWatched reports whether messages in the channel should be scanned.
func (c *Config) IsWatched(channelID string) bool {
	for _, id := range c.WatchChannelIDs {
		if id == channelID {
			return true
		}
	}
	return false
}

// RoleMentions renders the alert roles as chat mentions.
func (c *Config) RoleMentions() string {
	mentions := make([]string, 0, len(c.AlertRoleIDs))
	for _, id := range c.AlertRoleIDs {
		mentions = append(mentions, "<@&"+id+">")
	}
	return strings.Join(mentions, " ")
}

// ChannelName returns the display name configured for a channel, if any.
func (c *Config) ChannelName(channelID string) string {
	if c.YAML == nil {
		return ""
	}
	return c.YAML.Channels[channelID]
}
