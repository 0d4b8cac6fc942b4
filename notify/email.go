package notify

import (
	"context"
	"errors"
	"fmt"

	"github.com/Saideep1817/AI-chatbot-for-medical-emergencies/config"
)

// ErrNoRecipient is returned when an email has no address to go to
var ErrNoRecipient = errors.New("email has no recipient")

// Email is one outbound message with HTML and plain text bodies
type Email struct {
	To      string
	ToName  string
	Subject string
	HTML    string
	Text    string
}

// Sender delivers an email through one provider
type Sender interface {
	Send(ctx context.Context, e Email) error
	Name() string
}

// From identifies the sender of outbound email
type From struct {
	Address string
	Name    string
}

// NewSender picks the email provider. With provider "auto" SendGrid wins over
// SMTP and the log sender is used when neither is configured.
func NewSender(conf config.EmailConfig) (Sender, error) {
	from := From{Address: conf.From, Name: conf.FromName}

	switch conf.Provider {
	case "sendgrid":
		if conf.SendGridAPIKey == "" {
			return nil, fmt.Errorf("SENDGRID_API_KEY: %w", config.ErrEnvVariableNotSet)
		}
		return NewSendGridSender(conf.SendGridAPIKey, from), nil
	case "smtp":
		if conf.SMTPHost == "" {
			return nil, fmt.Errorf("SMTP_HOST: %w", config.ErrEnvVariableNotSet)
		}
		return NewSMTPSender(conf.SMTPHost, conf.SMTPPort, conf.SMTPUser, conf.SMTPPassword, from), nil
	case "log":
		return NewLogSender(), nil
	case "", "auto":
	default:
		return nil, fmt.Errorf("unknown email provider %q", conf.Provider)
	}

	switch {
	case conf.SendGridAPIKey != "":
		return NewSendGridSender(conf.SendGridAPIKey, from), nil
	case conf.SMTPHost != "":
		return NewSMTPSender(conf.SMTPHost, conf.SMTPPort, conf.SMTPUser, conf.SMTPPassword, from), nil
	default:
		return NewLogSender(), nil
	}
}
