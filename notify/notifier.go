package notify

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/Saideep1817/AI-chatbot-for-medical-emergencies/models"
	templates "github.com/Saideep1817/AI-chatbot-for-medical-emergencies/templates/html"
)

// Channel is an additional best-effort reminder destination
type Channel interface {
	Notify(ctx context.Context, r models.Reminder) error
	Name() string
}

// Notifier formats reminder emails and hands them to the email sender. Extra
// channels get every reminder the email went out for.
type Notifier struct {
	Email    Sender
	Channels []Channel
}

// NewNotifier creates a Notifier
func NewNotifier(email Sender, channels ...Channel) *Notifier {
	return &Notifier{Email: email, Channels: channels}
}

// ReminderEmail renders the email for r
func ReminderEmail(r models.Reminder) Email {
	return Email{
		To:      r.Email,
		ToName:  r.UserName,
		Subject: templates.ReminderSubject(r.MedicationName, r.ScheduledTime),
		HTML:    templates.RenderMedicationReminderEmail(r.UserName, r.MedicationName, r.ScheduledTime, r.MarkTakenURL),
		Text:    templates.RenderMedicationReminderText(r.UserName, r.MedicationName, r.ScheduledTime, r.MarkTakenURL),
	}
}

// SendReminder emails the reminder. The email result decides success; channel
// failures are only logged.
func (n *Notifier) SendReminder(ctx context.Context, r models.Reminder) error {
	if err := n.Email.Send(ctx, ReminderEmail(r)); err != nil {
		return fmt.Errorf("failed to email reminder via %s: %w", n.Email.Name(), err)
	}
	for _, c := range n.Channels {
		if err := c.Notify(ctx, r); err != nil {
			zap.S().Errorw("failed to deliver reminder to channel",
				"error", err,
				"channel", c.Name(),
				"medicationId", r.MedicationID,
			)
		}
	}
	return nil
}

// SendEmail delivers a one-off email such as a welcome message
func (n *Notifier) SendEmail(ctx context.Context, e Email) error {
	return n.Email.Send(ctx, e)
}
