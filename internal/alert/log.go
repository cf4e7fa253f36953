package alert

import (
	"context"
	"log/slog"

	"wordwatch/internal/models"
)

// LogSink writes alerts to a structured logger.
type LogSink struct {
	logger *slog.Logger
}

// NewLogSink creates a log sink. A nil logger uses slog.Default().
func NewLogSink(logger *slog.Logger) *LogSink {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogSink{logger: logger}
}

// Notify logs the alert at warning level.
func (s *LogSink) Notify(ctx context.Context, alert *models.Alert) error {
	s.logger.WarnContext(ctx, "banned word detected",
		"alert_id", alert.ID,
		"keyword", alert.Keyword,
		"token", alert.Token,
		"source", alert.Source,
		"channel_id", alert.ChannelID,
		"message_id", alert.MessageID,
		"author", alert.AuthorName,
		"link", alert.MessageLink,
	)
	return nil
}
