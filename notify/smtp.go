package notify

import (
	"context"
	"fmt"

	"gopkg.in/gomail.v2"
)

// dialer is the part of gomail.Dialer the sender uses
type dialer interface {
	DialAndSend(m ...*gomail.Message) error
}

// SMTPSender delivers email through an SMTP relay
type SMTPSender struct {
	dialer dialer
	from   From
}

// NewSMTPSender creates a sender for the relay at host:port
func NewSMTPSender(host string, port int, user, password string, from From) *SMTPSender {
	return &SMTPSender{
		dialer: gomail.NewDialer(host, port, user, password),
		from:   from,
	}
}

// Name implements Sender
func (s *SMTPSender) Name() string { return "smtp" }

// Send implements Sender. gomail has no context support, so ctx is only
// checked before dialing.
func (s *SMTPSender) Send(ctx context.Context, e Email) error {
	if e.To == "" {
		return ErrNoRecipient
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := s.dialer.DialAndSend(s.message(e)); err != nil {
		return fmt.Errorf("failed to send email over smtp: %w", err)
	}
	return nil
}

func (s *SMTPSender) message(e Email) *gomail.Message {
	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.from.Address, s.from.Name)
	if e.ToName != "" {
		m.SetAddressHeader("To", e.To, e.ToName)
	} else {
		m.SetHeader("To", e.To)
	}
	m.SetHeader("Subject", e.Subject)
	m.SetBody("text/plain", e.Text)
	if e.HTML != "" {
		m.AddAlternative("text/html", e.HTML)
	}
	return m
}
