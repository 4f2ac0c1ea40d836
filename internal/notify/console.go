package notify

import (
	"context"

	"github.com/ravenstudio/raven-community-api/internal/logger"
)

// ConsoleMailer logs messages instead of delivering them. Used when
// Mailgun credentials are not configured, typically local dev.
type ConsoleMailer struct {
	log *logger.Logger
}

func NewConsoleMailer(log *logger.Logger) *ConsoleMailer {
	return &ConsoleMailer{log: log.With("mailer", "console")}
}

func (m *ConsoleMailer) Send(_ context.Context, msg Message) error {
	m.log.Info("simulated email",
		"to", msg.To,
		"from", msg.From,
		"subject", msg.Subject,
		"text", msg.Text,
	)
	return nil
}

var _ Mailer = (*ConsoleMailer)(nil)
