package services

import (
	"html"
	"strings"

	"sikap-api/config"
)

// SMTPSender delivers notification emails through the configured SMTP
// server. It satisfies EmailSender.
type SMTPSender struct{}

func (SMTPSender) Send(to, subject, body string) error {
	// Notification bodies are stored as plain text; escape and convert line
	// breaks for the HTML mail body.
	htmlBody := strings.ReplaceAll(html.EscapeString(body), "\n", "<br>")
	return config.SendMail([]string{to}, subject, htmlBody)
}

// NoopSender discards notifications. Used when SMTP is not configured so
// submissions still succeed; the notification rows remain as the audit
// record.
type NoopSender struct{}

func (NoopSender) Send(to, subject, body string) error { return nil }
