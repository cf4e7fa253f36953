package api

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/gofiber/fiber/v3"

	"wordwatch/internal/detect"
	"wordwatch/internal/models"
)

// Scanner runs detection over messages.
type Scanner interface {
	HandleMessage(ctx context.Context, msg *models.Message) (*models.Alert, error)
	Check(ctx context.Context, content string, embeds []string) (detect.Result, bool)
	Threshold() int
}

// MessageHandler ingests chat messages via JSON API.
type MessageHandler struct {
	scanner Scanner
}

// NewMessageHandler creates a new API message handler.
func NewMessageHandler(scanner Scanner) *MessageHandler {
	return &MessageHandler{scanner: scanner}
}

// Ingest scans a message posted by the chat gateway. The response data is
// the raised alert, or null when nothing was detected.
func (h *MessageHandler) Ingest(c fiber.Ctx) error {
	var msg models.Message
	if err := json.Unmarshal(c.Body(), &msg); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid request body")
	}

	if msg.ID == "" || msg.ChannelID == "" {
		return jsonError(c, fiber.StatusBadRequest, "id and channel_id are required")
	}

	alert, err := h.scanner.HandleMessage(c.Context(), &msg)
	if err != nil {
		// The alert was raised; only its delivery failed.
		slog.Warn("alert delivery failed", "message_id", msg.ID, "error", err)
	}

	return jsonSuccess(c, alert)
}

// Check scans content and embeds without raising an alert.
func (h *MessageHandler) Check(c fiber.Ctx) error {
	var body models.CheckRequest
	if err := json.Unmarshal(c.Body(), &body); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid request body")
	}

	resp := models.CheckResponse{Threshold: h.scanner.Threshold()}

	res, ok := h.scanner.Check(c.Context(), body.Content, body.Embeds)
	if ok {
		resp.Matched = true
		resp.Keyword = res.Keyword
		resp.Token = res.Token
		resp.SourceText = res.SourceText
		resp.Source = models.SourceMessage
		if res.FromEmbed() {
			idx := res.EmbedIndex
			resp.Source = models.SourceEmbed
			resp.EmbedIndex = &idx
		}
	}

	return jsonSuccess(c, resp)
}
