package watcher

import (
	"context"
	"errors"
	"testing"
	"time"

	"wordwatch/internal/alert"
	"wordwatch/internal/config"
	"wordwatch/internal/models"
)

type fakeWords struct {
	words      []string
	exceptions []string
	err        error
}

func (f *fakeWords) ListWords(ctx context.Context) ([]string, error) {
	return f.words, f.err
}

func (f *fakeWords) ListExceptions(ctx context.Context) ([]string, error) {
	return f.exceptions, f.err
}

type captureSink struct {
	alerts []*models.Alert
	err    error
}

func (s *captureSink) Notify(ctx context.Context, a *models.Alert) error {
	s.alerts = append(s.alerts, a)
	return s.err
}

func testConfig() *config.Config {
	return &config.Config{
		MatchThreshold:  80,
		WatchChannelIDs: []string{"200"},
		CommandPrefix:   "!",
		BotUserID:       "999",
		AlertChannelID:  "300",
		AlertRoleIDs:    []string{"11"},
	}
}

func newTestWatcher(words *fakeWords, sink alert.Sink) *Watcher {
	w := New(testConfig(), words, sink)
	w.now = func() time.Time { return time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC) }
	return w
}

func message(content string, embeds ...models.Embed) *models.Message {
	return &models.Message{
		ID:          "400",
		GuildID:     "100",
		ChannelID:   "200",
		ChannelName: "general",
		AuthorID:    "500",
		AuthorName:  "alice",
		Content:     content,
		Embeds:      embeds,
	}
}

func TestHandleMessage_MessageHit(t *testing.T) {
	sink := &captureSink{}
	w := newTestWatcher(&fakeWords{words: []string{"malo"}}, sink)

	a, err := w.HandleMessage(context.Background(), message("eres muy M4L0 hoy"))
	if err != nil {
		t.Fatalf("HandleMessage() error = %v", err)
	}
	if a == nil {
		t.Fatal("HandleMessage() alert = nil, want alert")
	}
	if len(sink.alerts) != 1 || sink.alerts[0] != a {
		t.Errorf("sink got %d alerts, want the returned alert", len(sink.alerts))
	}

	checks := []struct {
		field, got, want string
	}{
		{"Keyword", a.Keyword, "malo"},
		{"Token", a.Token, "M4L0"},
		{"Source", a.Source, models.SourceMessage},
		{"SourceText", a.SourceText, "eres muy M4L0 hoy"},
		{"SourceAuthor", a.SourceAuthor, models.NoAuthor},
		{"MessageLink", a.MessageLink, "https://discord.com/channels/100/200/400"},
		{"ChannelName", a.ChannelName, "general"},
		{"RoleMentions", a.RoleMentions, "<@&11>"},
		{"AlertChannelID", a.AlertChannelID, "300"},
	}
	for _, c := range checks {
		if c.got != c.want {
			t.Errorf("%s = %q, want %q", c.field, c.got, c.want)
		}
	}
	if !a.DetectedAt.Equal(time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)) {
		t.Errorf("DetectedAt = %v", a.DetectedAt)
	}
}

func TestHandleMessage_EmbedHit(t *testing.T) {
	sink := &captureSink{}
	w := newTestWatcher(&fakeWords{words: []string{"malo"}}, sink)

	msg := message("hola",
		models.Embed{Author: "feed", Description: "todo bien"},
		models.Embed{Author: "news", Description: "algo malo pasa"},
	)

	a, err := w.HandleMessage(context.Background(), msg)
	if err != nil || a == nil {
		t.Fatalf("HandleMessage() = %v, %v; want alert", a, err)
	}
	if a.Source != models.SourceEmbed {
		t.Errorf("Source = %q, want %q", a.Source, models.SourceEmbed)
	}
	if a.SourceText != "algo malo pasa" {
		t.Errorf("SourceText = %q, want the second embed", a.SourceText)
	}
	if a.SourceAuthor != "news" {
		t.Errorf("SourceAuthor = %q, want %q", a.SourceAuthor, "news")
	}
}

func TestHandleMessage_EmbedWithoutAuthor(t *testing.T) {
	w := newTestWatcher(&fakeWords{words: []string{"malo"}}, nil)

	a, _ := w.HandleMessage(context.Background(), message("", models.Embed{Description: "malo"}))
	if a == nil {
		t.Fatal("HandleMessage() alert = nil, want alert")
	}
	if a.SourceAuthor != models.NoAuthor {
		t.Errorf("SourceAuthor = %q, want %q", a.SourceAuthor, models.NoAuthor)
	}
}

func TestHandleMessage_Ignored(t *testing.T) {
	tests := []struct {
		name   string
		modify func(m *models.Message)
	}{
		{"own bot user", func(m *models.Message) { m.AuthorID = "999" }},
		{"command", func(m *models.Message) { m.Content = "!addword malo" }},
		{"unwatched channel", func(m *models.Message) { m.ChannelID = "201" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sink := &captureSink{}
			w := newTestWatcher(&fakeWords{words: []string{"malo"}}, sink)

			msg := message("malo")
			tt.modify(msg)

			a, err := w.HandleMessage(context.Background(), msg)
			if err != nil || a != nil {
				t.Errorf("HandleMessage() = %v, %v; want nil, nil", a, err)
			}
			if len(sink.alerts) != 0 {
				t.Errorf("sink got %d alerts, want 0", len(sink.alerts))
			}
		})
	}
}

func TestHandleMessage_Clean(t *testing.T) {
	sink := &captureSink{}
	w := newTestWatcher(&fakeWords{words: []string{"malo"}, exceptions: []string{"maleta"}}, sink)

	a, err := w.HandleMessage(context.Background(), message("traje la maleta"))
	if err != nil || a != nil {
		t.Errorf("HandleMessage() = %v, %v; want nil, nil", a, err)
	}
	if len(sink.alerts) != 0 {
		t.Errorf("sink got %d alerts, want 0", len(sink.alerts))
	}
}

func TestHandleMessage_StoreErrorIsNoMatch(t *testing.T) {
	sink := &captureSink{}
	w := newTestWatcher(&fakeWords{words: []string{"malo"}, err: errors.New("db down")}, sink)

	a, err := w.HandleMessage(context.Background(), message("malo"))
	if err != nil || a != nil {
		t.Errorf("HandleMessage() = %v, %v; want nil, nil", a, err)
	}
}

func TestHandleMessage_SinkError(t *testing.T) {
	boom := errors.New("webhook down")
	w := newTestWatcher(&fakeWords{words: []string{"malo"}}, &captureSink{err: boom})

	a, err := w.HandleMessage(context.Background(), message("malo"))
	if !errors.Is(err, boom) {
		t.Errorf("HandleMessage() error = %v, want %v", err, boom)
	}
	if a == nil {
		t.Error("HandleMessage() should still return the alert when delivery fails")
	}
}

func TestHandleMessage_ChannelNameFromConfig(t *testing.T) {
	cfg := testConfig()
	cfg.YAML = &config.YAMLConfig{Channels: map[string]string{"200": "general-es"}}
	w := New(cfg, &fakeWords{words: []string{"malo"}}, nil)

	msg := message("malo")
	msg.ChannelName = ""

	a, _ := w.HandleMessage(context.Background(), msg)
	if a == nil {
		t.Fatal("HandleMessage() alert = nil, want alert")
	}
	if a.ChannelName != "general-es" {
		t.Errorf("ChannelName = %q, want %q", a.ChannelName, "general-es")
	}
}

func TestCheck(t *testing.T) {
	sink := &captureSink{}
	w := newTestWatcher(&fakeWords{words: []string{"malo"}}, sink)

	res, ok := w.Check(context.Background(), "nada", []string{"muy malo"})
	if !ok {
		t.Fatal("Check() matched = false, want true")
	}
	if res.Keyword != "malo" || res.EmbedIndex != 0 {
		t.Errorf("Check() = %+v, want malo in embed 0", res)
	}
	if len(sink.alerts) != 0 {
		t.Error("Check() must not raise alerts")
	}
}

func TestHandleMessage_EmbedFromOtherBot(t *testing.T) {
	sink := &captureSink{}
	w := newTestWatcher(&fakeWords{words: []string{"malo"}}, sink)

	msg := message("", models.Embed{Author: "relay", Description: "que m4lo eres"})
	msg.AuthorID = "777"
	msg.AuthorIsBot = true

	a, err := w.HandleMessage(context.Background(), msg)
	if err != nil {
		t.Fatalf("HandleMessage() error = %v", err)
	}
	if a == nil {
		t.Fatal("HandleMessage() alert = nil, want alert for a banned embed relayed by another bot")
	}
	if a.Source != models.SourceEmbed || a.SourceAuthor != "relay" {
		t.Errorf("alert = %+v, want embed hit by relay", a)
	}
	if len(sink.alerts) != 1 {
		t.Errorf("sink got %d alerts, want 1", len(sink.alerts))
	}
}

func TestHandleMessage_IgnoreBotsOption(t *testing.T) {
	sink := &captureSink{}
	w := newTestWatcher(&fakeWords{words: []string{"malo"}}, sink)
	w.cfg.IgnoreBots = true

	msg := message("malo")
	msg.AuthorID = "777"
	msg.AuthorIsBot = true

	a, err := w.HandleMessage(context.Background(), msg)
	if err != nil || a != nil {
		t.Errorf("HandleMessage() = %v, %v; want nil, nil with bots ignored", a, err)
	}
	if len(sink.alerts) != 0 {
		t.Errorf("sink got %d alerts, want 0", len(sink.alerts))
	}
}
