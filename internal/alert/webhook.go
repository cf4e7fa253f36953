package alert

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
	"unicode/utf8"

	"wordwatch/internal/models"
)

const (
	alertColor          = 0xE74C3C // red
	maxEmbedDescription = 4096
	maxEmbedTitle       = 256 // also the author name limit
)

// WebhookSink posts alerts to a chat webhook in the alert channel.
type WebhookSink struct {
	url    string
	client *http.Client
}

// NewWebhookSink creates a webhook sink posting to url.
func NewWebhookSink(url string) *WebhookSink {
	return &WebhookSink{
		url:    url,
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

type webhookPayload struct {
	Content         string           `json:"content"`
	Embeds          []webhookEmbed   `json:"embeds"`
	AllowedMentions *allowedMentions `json:"allowed_mentions,omitempty"`
}

type webhookEmbed struct {
	Title       string       `json:"title,omitempty"`
	Description string       `json:"description"`
	Color       int          `json:"color"`
	Author      *embedAuthor `json:"author,omitempty"`
	Footer      *embedFooter `json:"footer,omitempty"`
	Timestamp   string       `json:"timestamp,omitempty"`
}

type embedAuthor struct {
	Name    string `json:"name"`
	IconURL string `json:"icon_url,omitempty"`
}

type embedFooter struct {
	Text string `json:"text"`
}

type allowedMentions struct {
	Parse []string `json:"parse"`
}

// FormatContent renders the text part of an alert: role mentions, the
// detected word and a link to the message.
func FormatContent(alert *models.Alert) string {
	return fmt.Sprintf("%s\n🚨 Detected word: **%s** 🚨\n➡️ [View message](%s)\n",
		alert.RoleMentions, alert.Keyword, alert.MessageLink)
}

func buildPayload(alert *models.Alert) webhookPayload {
	channel := alert.ChannelName
	if channel == "" {
		channel = alert.ChannelID
	}

	embed := webhookEmbed{
		Title:       truncate(alert.SourceAuthor, maxEmbedTitle),
		Description: truncate(alert.SourceText, maxEmbedDescription),
		Color:       alertColor,
		Author: &embedAuthor{
			Name:    truncate(alert.AuthorName+" - "+alert.SourceAuthor, maxEmbedTitle),
			IconURL: alert.AuthorAvatar,
		},
		Footer: &embedFooter{Text: "Channel: #" + channel},
	}
	if !alert.DetectedAt.IsZero() {
		embed.Timestamp = alert.DetectedAt.UTC().Format(time.RFC3339)
	}

	return webhookPayload{
		Content:         FormatContent(alert),
		Embeds:          []webhookEmbed{embed},
		AllowedMentions: &allowedMentions{Parse: []string{"roles"}},
	}
}

func truncate(s string, max int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	r := []rune(s)
	return string(r[:max-1]) + "…"
}

// Notify posts the alert to the webhook.
func (s *WebhookSink) Notify(ctx context.Context, alert *models.Alert) error {
	body, err := json.Marshal(buildPayload(alert))
	if err != nil {
		return fmt.Errorf("failed to encode webhook payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build webhook request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", "wordwatch/1.0")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("webhook request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("webhook returned %s: %s", resp.Status, bytes.TrimSpace(msg))
	}
	return nil
}
