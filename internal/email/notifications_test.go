package email

import (
	"context"
	"testing"

	"wordwatch/internal/config"
)

func TestNotifier_Enabled(t *testing.T) {
	smtp := config.Config{
		SMTPEnabled: true,
		SMTPHost:    "smtp.example.com",
		SMTPPort:    587,
		SMTPFrom:    "alerts@example.com",
	}

	tests := []struct {
		name       string
		cfg        config.Config
		recipients []string
		want       bool
	}{
		{"smtp and recipients", smtp, []string{"mods@example.com"}, true},
		{"no recipients", smtp, nil, false},
		{"smtp disabled", config.Config{}, []string{"mods@example.com"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := tt.cfg
			cfg.AlertEmailTo = tt.recipients
			if got := NewNotifier(&cfg).Enabled(); got != tt.want {
				t.Errorf("Enabled() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNotifier_Notify_Disabled(t *testing.T) {
	n := NewNotifier(&config.Config{})

	if err := n.Notify(context.Background(), testAlert()); err != nil {
		t.Errorf("Notify() with email disabled should return nil, got %v", err)
	}
}

func TestNotifier_Notify_CancelledContext(t *testing.T) {
	n := NewNotifier(&config.Config{
		SMTPEnabled:  true,
		SMTPHost:     "smtp.example.com",
		SMTPPort:     587,
		SMTPFrom:     "alerts@example.com",
		AlertEmailTo: []string{"mods@example.com"},
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := n.Notify(ctx, testAlert()); err == nil {
		t.Error("Notify() with cancelled context should return an error")
	}
}
