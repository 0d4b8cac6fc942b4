package notify

import (
	"context"
	"fmt"

	"github.com/gregdel/pushover"

	"github.com/Saideep1817/AI-chatbot-for-medical-emergencies/models"
	templates "github.com/Saideep1817/AI-chatbot-for-medical-emergencies/templates/html"
)

// pushoverAPI is the part of the pushover client the channel uses
type pushoverAPI interface {
	SendMessage(message *pushover.Message, recipient *pushover.Recipient) (*pushover.Response, error)
}

// PushoverChannel sends a push notification to users who stored a Pushover
// user key
type PushoverChannel struct {
	app pushoverAPI
}

// NewPushoverChannel creates a channel for the application token
func NewPushoverChannel(appToken string) *PushoverChannel {
	return &PushoverChannel{app: pushover.New(appToken)}
}

// Name implements Channel
func (p *PushoverChannel) Name() string { return "pushover" }

// Notify implements Channel. Users without a key are skipped.
func (p *PushoverChannel) Notify(_ context.Context, r models.Reminder) error {
	if r.PushoverKey == "" {
		return nil
	}
	msg := pushover.NewMessageWithTitle(
		fmt.Sprintf("Time to take %s (%s)", r.MedicationName, r.ScheduledTime),
		templates.ReminderSubject(r.MedicationName, r.ScheduledTime),
	)
	msg.URL = r.MarkTakenURL
	msg.URLTitle = "Mark as taken"
	msg.Timestamp = r.SentAt.Unix()

	if _, err := p.app.SendMessage(msg, pushover.NewRecipient(r.PushoverKey)); err != nil {
		return fmt.Errorf("failed to send pushover message: %w", err)
	}
	return nil
}
