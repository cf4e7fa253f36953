// Package watcher turns incoming chat messages into detection alerts.
package watcher

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"wordwatch/internal/alert"
	"wordwatch/internal/config"
	"wordwatch/internal/detect"
	"wordwatch/internal/metrics"
	"wordwatch/internal/models"
)

// WordSource provides the current word lists. Both lists are expected
// lowercased and in a stable order.
type WordSource interface {
	ListWords(ctx context.Context) ([]string, error)
	ListExceptions(ctx context.Context) ([]string, error)
}

// Watcher scans messages from watched channels and publishes an alert for the
// first banned word found.
type Watcher struct {
	cfg   *config.Config
	words WordSource
	sink  alert.Sink
	now   func() time.Time
}

// New creates a watcher. A nil sink drops alerts after they are built.
func New(cfg *config.Config, words WordSource, sink alert.Sink) *Watcher {
	return &Watcher{
		cfg:   cfg,
		words: words,
		sink:  sink,
		now:   time.Now,
	}
}

// Threshold returns the configured similarity threshold.
func (w *Watcher) Threshold() int {
	return w.cfg.MatchThreshold
}

// HandleMessage scans msg and returns the alert it raised, or nil when the
// message is ignored or clean. A failed word list lookup counts as no match.
// The returned error only reports a failed hand-off to the sink.
func (w *Watcher) HandleMessage(ctx context.Context, msg *models.Message) (*models.Alert, error) {
	if w.ignored(msg) {
		return nil, nil
	}

	metrics.MessageScanned()

	res, ok := w.scan(ctx, msg.Content, msg.EmbedTexts())
	if !ok {
		return nil, nil
	}

	a := w.buildAlert(msg, res)

	slog.Info("banned word detected",
		"keyword", a.Keyword,
		"source", a.Source,
		"channel_id", a.ChannelID,
		"message_id", a.MessageID,
	)
	metrics.AlertRaised(a.Source)
	metrics.RecordDetection(a.Keyword, a.Source)

	if w.sink == nil {
		return a, nil
	}
	if err := w.sink.Notify(ctx, a); err != nil {
		metrics.AlertFailed()
		return a, err
	}
	return a, nil
}

// Check scans content and embeds against the current lists without raising
// an alert.
func (w *Watcher) Check(ctx context.Context, content string, embeds []string) (detect.Result, bool) {
	return w.scan(ctx, content, embeds)
}

func (w *Watcher) ignored(msg *models.Message) bool {
	if w.cfg.BotUserID != "" && msg.AuthorID == w.cfg.BotUserID {
		return true
	}
	// Other bots relay most embeds, so they are scanned unless configured off.
	if w.cfg.IgnoreBots && msg.AuthorIsBot {
		return true
	}
	if w.cfg.CommandPrefix != "" && strings.HasPrefix(msg.Content, w.cfg.CommandPrefix) {
		return true
	}
	return !w.cfg.IsWatched(msg.ChannelID)
}

func (w *Watcher) scan(ctx context.Context, content string, embeds []string) (detect.Result, bool) {
	keywords, err := w.words.ListWords(ctx)
	if err != nil {
		slog.Error("failed to load words", "error", err)
		metrics.StoreError()
		return detect.Result{}, false
	}
	exceptions, err := w.words.ListExceptions(ctx)
	if err != nil {
		slog.Error("failed to load exceptions", "error", err)
		metrics.StoreError()
		return detect.Result{}, false
	}

	return detect.Scan(content, embeds, keywords, exceptions, w.cfg.MatchThreshold)
}

func (w *Watcher) buildAlert(msg *models.Message, res detect.Result) *models.Alert {
	a := &models.Alert{
		ID:             uuid.New(),
		Keyword:        res.Keyword,
		Token:          res.Token,
		Source:         models.SourceMessage,
		SourceText:     res.SourceText,
		SourceAuthor:   models.NoAuthor,
		MessageID:      msg.ID,
		MessageLink:    msg.Link(),
		ChannelID:      msg.ChannelID,
		ChannelName:    msg.ChannelName,
		AuthorName:     msg.AuthorName,
		AuthorAvatar:   msg.AuthorAvatar,
		RoleMentions:   w.cfg.RoleMentions(),
		AlertChannelID: w.cfg.AlertChannelID,
		DetectedAt:     w.now().UTC(),
	}

	if a.ChannelName == "" {
		a.ChannelName = w.cfg.ChannelName(msg.ChannelID)
	}

	if res.FromEmbed() {
		a.Source = models.SourceEmbed
		if author := msg.Embeds[res.EmbedIndex].Author; author != "" {
			a.SourceAuthor = author
		}
	}

	return a
}
