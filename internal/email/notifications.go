package email

import (
	"context"

	"wordwatch/internal/config"
	"wordwatch/internal/models"
)

// Notifier emails detection alerts to the configured recipients.
type Notifier struct {
	service    *Service
	templates  *Templates
	recipients []string
}

// NewNotifier creates a new email notifier.
func NewNotifier(cfg *config.Config) *Notifier {
	return &Notifier{
		service:    NewService(cfg),
		templates:  NewTemplates(cfg.SMTPFromName),
		recipients: cfg.AlertEmailTo,
	}
}

// Enabled reports whether alerts will actually be emailed.
func (n *Notifier) Enabled() bool {
	return n.service.IsEnabled() && len(n.recipients) > 0
}

// Notify emails the alert. It does nothing when email is disabled.
func (n *Notifier) Notify(ctx context.Context, alert *models.Alert) error {
	if !n.Enabled() {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	subject, htmlBody, textBody := n.templates.WordDetected(alert)
	return n.service.Send(n.recipients, subject, htmlBody, textBody)
}
