package models

import (
	"time"

	"github.com/google/uuid"
)

// Alert source constants
const (
	SourceMessage = "message"
	SourceEmbed   = "embed"
)

// NoAuthor is shown when the matched text has no author of its own.
const NoAuthor = "No author"

// Alert describes a detected banned word, ready to be published by a sink.
type Alert struct {
	ID             uuid.UUID `json:"id"`
	Keyword        string    `json:"keyword"`
	Token          string    `json:"token"`
	Source         string    `json:"source"` // message or embed
	SourceText     string    `json:"source_text"`
	SourceAuthor   string    `json:"source_author"`
	MessageID      string    `json:"message_id"`
	MessageLink    string    `json:"message_link"`
	ChannelID      string    `json:"channel_id"`
	ChannelName    string    `json:"channel_name"`
	AuthorName     string    `json:"author_name"`
	AuthorAvatar   string    `json:"author_avatar,omitempty"`
	RoleMentions   string    `json:"role_mentions,omitempty"`
	AlertChannelID string    `json:"alert_channel_id"`
	DetectedAt     time.Time `json:"detected_at"`
}
