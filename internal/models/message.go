package models

import "fmt"

// Embed is structured content attached to a chat message.
type Embed struct {
	Author      string `json:"author"`
	Title       string `json:"title,omitempty"`
	Description string `json:"description"`
}

// Message is an incoming chat message as delivered by the chat gateway.
type Message struct {
	ID           string  `json:"id"`
	GuildID      string  `json:"guild_id"`
	ChannelID    string  `json:"channel_id"`
	ChannelName  string  `json:"channel_name,omitempty"`
	AuthorID     string  `json:"author_id"`
	AuthorName   string  `json:"author_name"`
	AuthorAvatar string  `json:"author_avatar,omitempty"`
	AuthorIsBot  bool    `json:"author_is_bot,omitempty"`
	Content      string  `json:"content"`
	Embeds       []Embed `json:"embeds,omitempty"`
}

// EmbedTexts returns the descriptions of the message embeds, in order.
// Embeds without a description contribute an empty string so indexes line up
// with Embeds.
func (m *Message) EmbedTexts() []string {
	texts := make([]string, len(m.Embeds))
	for i, e := range m.Embeds {
		texts[i] = e.Description
	}
	return texts
}

// Link returns the permalink of the message.
func (m *Message) Link() string {
	return fmt.Sprintf("https://discord.com/channels/%s/%s/%s", m.GuildID, m.ChannelID, m.ID)
}
