package email

import (
	"fmt"
	"html"
	"strings"

	"wordwatch/internal/models"
)

// Templates renders alert emails.
type Templates struct {
	appName string
}

// NewTemplates creates a new templates instance.
func NewTemplates(appName string) *Templates {
	if appName == "" {
		appName = "wordwatch"
	}
	return &Templates{appName: appName}
}

// baseHTML wraps content in a consistent HTML email template.
func (t *Templates) baseHTML(title, content string) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
    <meta charset="utf-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>%s</title>
    <style>
        body { font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px; }
        .header { background: #dc2626; color: white; padding: 20px; text-align: center; border-radius: 8px 8px 0 0; }
        .header h1 { margin: 0; font-size: 24px; }
        .content { background: #f9fafb; padding: 20px; border: 1px solid #e5e7eb; }
        .footer { background: #f3f4f6; padding: 15px; text-align: center; font-size: 12px; color: #6b7280; border-radius: 0 0 8px 8px; border: 1px solid #e5e7eb; border-top: none; }
        .info-box { background: white; border: 1px solid #e5e7eb; border-radius: 6px; padding: 15px; margin: 15px 0; }
        .label { font-weight: 600; color: #374151; }
        blockquote { border-left: 4px solid #dc2626; margin: 0; padding: 0 12px; color: #374151; white-space: pre-wrap; }
        code { background: #e5e7eb; padding: 2px 6px; border-radius: 4px; font-family: monospace; }
    </style>
</head>
<body>
    <div class="header">
        <h1>%s</h1>
    </div>
    <div class="content">
        %s
    </div>
    <div class="footer">
        <p>This alert was sent by %s</p>
    </div>
</body>
</html>`, html.EscapeString(title), html.EscapeString(title), content, html.EscapeString(t.appName))
}

// WordDetected generates the alert email for a detected word.
func (t *Templates) WordDetected(alert *models.Alert) (subject, htmlBody, textBody string) {
	subject = fmt.Sprintf("[%s] Detected word: %s", t.appName, alert.Keyword)

	channel := alert.ChannelName
	if channel == "" {
		channel = alert.ChannelID
	}

	content := fmt.Sprintf(`
        <p>A watched channel received a message containing a banned word.</p>

        <div class="info-box">
            <p><span class="label">Word:</span> <code>%s</code></p>
            <p><span class="label">Matched token:</span> <code>%s</code></p>
            <p><span class="label">Channel:</span> #%s</p>
            <p><span class="label">Posted by:</span> %s - %s</p>
        </div>

        <blockquote>%s</blockquote>

        <p><a href="%s">View message</a></p>`,
		html.EscapeString(alert.Keyword),
		html.EscapeString(alert.Token),
		html.EscapeString(channel),
		html.EscapeString(alert.AuthorName),
		html.EscapeString(alert.SourceAuthor),
		html.EscapeString(alert.SourceText),
		html.EscapeString(alert.MessageLink),
	)

	htmlBody = t.baseHTML("Detected word: "+alert.Keyword, content)

	var text strings.Builder
	fmt.Fprintf(&text, "Detected word: %s\n\n", alert.Keyword)
	fmt.Fprintf(&text, "Matched token: %s\n", alert.Token)
	fmt.Fprintf(&text, "Channel: #%s\n", channel)
	fmt.Fprintf(&text, "Posted by: %s - %s\n\n", alert.AuthorName, alert.SourceAuthor)
	fmt.Fprintf(&text, "%s\n\n", alert.SourceText)
	fmt.Fprintf(&text, "View message: %s\n", alert.MessageLink)
	textBody = text.String()

	return subject, htmlBody, textBody
}
