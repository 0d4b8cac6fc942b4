package notify

import (
	"context"

	"go.uber.org/zap"
)

// LogSender writes emails to the log instead of delivering them. It is used
// when no provider is configured.
type LogSender struct{}

// NewLogSender creates a LogSender
func NewLogSender() *LogSender { return &LogSender{} }

// Name implements Sender
func (LogSender) Name() string { return "log" }

// Send implements Sender
func (LogSender) Send(_ context.Context, e Email) error {
	if e.To == "" {
		return ErrNoRecipient
	}
	zap.S().Infow("email provider not configured, logging email",
		"to", e.To,
		"subject", e.Subject,
		"text", e.Text,
	)
	return nil
}
