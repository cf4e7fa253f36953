package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/wordwatch_test?sslmode=disable")
	t.Setenv("ALERT_CHANNEL_ID", "1000")
	t.Setenv("WATCH_CHANNEL_IDS", "2000, 2001")
}

func TestLoad_Defaults(t *testing.T) {
	setRequired(t)

	cfg := Load()

	if cfg.MatchThreshold != 80 {
		t.Errorf("MatchThreshold = %d, want 80", cfg.MatchThreshold)
	}
	if cfg.CommandPrefix != "!" {
		t.Errorf("CommandPrefix = %q, want %q", cfg.CommandPrefix, "!")
	}
	if cfg.ServerAddr != ":3000" {
		t.Errorf("ServerAddr = %q, want %q", cfg.ServerAddr, ":3000")
	}
	if cfg.IgnoreBots {
		t.Error("IgnoreBots = true, want false by default")
	}
	if cfg.RateLimit != 600 {
		t.Errorf("RateLimit = %d, want 600", cfg.RateLimit)
	}
	if len(cfg.WatchChannelIDs) != 2 || cfg.WatchChannelIDs[1] != "2001" {
		t.Errorf("WatchChannelIDs = %v, want [2000 2001]", cfg.WatchChannelIDs)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() error = %v", err)
	}
}

func TestLoad_Threshold(t *testing.T) {
	setRequired(t)
	t.Setenv("MATCH_THRESHOLD", "90")

	cfg := Load()
	if cfg.MatchThreshold != 90 {
		t.Errorf("MatchThreshold = %d, want 90", cfg.MatchThreshold)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name     string
		env      map[string]string
		wantErrs []string
	}{
		{
			name: "missing required keys are all reported",
			env: map[string]string{
				"DATABASE_URL":      "",
				"ALERT_CHANNEL_ID":  "",
				"WATCH_CHANNEL_IDS": "",
			},
			wantErrs: []string{"DATABASE_URL", "ALERT_CHANNEL_ID", "WATCH_CHANNEL_IDS"},
		},
		{
			name:     "threshold above range",
			env:      map[string]string{"MATCH_THRESHOLD": "101"},
			wantErrs: []string{"MATCH_THRESHOLD must be between 0 and 100"},
		},
		{
			name:     "threshold below range",
			env:      map[string]string{"MATCH_THRESHOLD": "-1"},
			wantErrs: []string{"MATCH_THRESHOLD must be between 0 and 100"},
		},
		{
			name:     "threshold not a number",
			env:      map[string]string{"MATCH_THRESHOLD": "high"},
			wantErrs: []string{"MATCH_THRESHOLD must be an integer"},
		},
		{
			name:     "non numeric channel",
			env:      map[string]string{"WATCH_CHANNEL_IDS": "2000,general"},
			wantErrs: []string{`non-numeric id "general"`},
		},
		{
			name:     "non numeric role",
			env:      map[string]string{"ALERT_ROLE_IDS": "mods"},
			wantErrs: []string{`ALERT_ROLE_IDS contains a non-numeric id "mods"`},
		},
		{
			name:     "bad webhook url",
			env:      map[string]string{"ALERT_WEBHOOK_URL": "ftp://example.com"},
			wantErrs: []string{"ALERT_WEBHOOK_URL"},
		},
		{
			name:     "negative rate limit",
			env:      map[string]string{"API_RATE_LIMIT": "-5"},
			wantErrs: []string{"API_RATE_LIMIT must not be negative"},
		},
		{
			name:     "bad redis url",
			env:      map[string]string{"REDIS_URL": "localhost:6379"},
			wantErrs: []string{"REDIS_URL"},
		},
		{
			name:     "bad smtp tls mode",
			env:      map[string]string{"SMTP_TLS": "ssl"},
			wantErrs: []string{"SMTP_TLS"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setRequired(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			err := Load().Validate()
			if err == nil {
				t.Fatal("Validate() error = nil, want error")
			}
			for _, want := range tt.wantErrs {
				if !strings.Contains(err.Error(), want) {
					t.Errorf("Validate() error = %q, want it to contain %q", err, want)
				}
			}
		})
	}
}

func TestConfig_IsWatched(t *testing.T) {
	cfg := &Config{WatchChannelIDs: []string{"1", "2"}}

	if !cfg.IsWatched("2") {
		t.Error("IsWatched(2) = false, want true")
	}
	if cfg.IsWatched("3") {
		t.Error("IsWatched(3) = true, want false")
	}
}

func TestConfig_RoleMentions(t *testing.T) {
	tests := []struct {
		roles []string
		want  string
	}{
		{nil, ""},
		{[]string{"11"}, "<@&11>"},
		{[]string{"11", "22"}, "<@&11> <@&22>"},
	}

	for _, tt := range tests {
		cfg := &Config{AlertRoleIDs: tt.roles}
		if got := cfg.RoleMentions(); got != tt.want {
			t.Errorf("RoleMentions(%v) = %q, want %q", tt.roles, got, tt.want)
		}
	}
}

func TestConfig_IsEmailEnabled(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		want bool
	}{
		{"fully configured", Config{SMTPEnabled: true, SMTPHost: "smtp.example.com", SMTPFrom: "bot@example.com"}, true},
		{"disabled", Config{SMTPEnabled: false, SMTPHost: "smtp.example.com", SMTPFrom: "bot@example.com"}, false},
		{"no host", Config{SMTPEnabled: true, SMTPFrom: "bot@example.com"}, false},
		{"no from", Config{SMTPEnabled: true, SMTPHost: "smtp.example.com"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.cfg.IsEmailEnabled(); got != tt.want {
				t.Errorf("IsEmailEnabled() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLoadYAMLConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `
seed:
  words: [malo, tonto]
  exceptions: [maleta]
channels:
  "2000": general
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	t.Setenv("CONFIG_FILE", path)

	cfg, err := LoadYAMLConfig()
	if err != nil {
		t.Fatalf("LoadYAMLConfig() error = %v", err)
	}
	if got := cfg.SeedWords(); len(got) != 2 || got[0] != "malo" {
		t.Errorf("SeedWords() = %v, want [malo tonto]", got)
	}
	if got := cfg.SeedExceptions(); len(got) != 1 || got[0] != "maleta" {
		t.Errorf("SeedExceptions() = %v, want [maleta]", got)
	}

	full := &Config{YAML: cfg}
	if got := full.ChannelName("2000"); got != "general" {
		t.Errorf("ChannelName(2000) = %q, want %q", got, "general")
	}
	if got := full.ChannelName("9999"); got != "" {
		t.Errorf("ChannelName(9999) = %q, want empty", got)
	}
}

func TestLoadYAMLConfig_Missing(t *testing.T) {
	t.Setenv("CONFIG_FILE", filepath.Join(t.TempDir(), "absent.yaml"))

	cfg, err := LoadYAMLConfig()
	if err != nil {
		t.Fatalf("LoadYAMLConfig() error = %v", err)
	}
	if cfg != nil {
		t.Errorf("LoadYAMLConfig() = %+v, want nil", cfg)
	}

	var nilCfg *YAMLConfig
	if nilCfg.SeedWords() != nil || nilCfg.SeedExceptions() != nil {
		t.Error("seed accessors on nil config should return nil")
	}
}
