// Package mail sends the contact form notification email. Sending is a
// best-effort side effect; callers run it off the request path and only log
// failures.
package mail

import (
	"context"
	"fmt"
	"time"

	gomail "github.com/wneessen/go-mail"

	"github.com/rishabh-cloud/portfolio-api/internal/config"
)

// Notification carries one contact form submission.
type Notification struct {
	Name        string
	Email       string
	Message     string
	SubmittedAt time.Time
}

// Mailer sends contact notifications.
type Mailer interface {
	SendContactNotification(ctx context.Context, n Notification) error
}

// Noop discards notifications. Used when SMTP is not configured.
type Noop struct{}

// SendContactNotification implements Mailer.
func (Noop) SendContactNotification(context.Context, Notification) error { return nil }

// SMTPMailer sends notifications through an SMTP relay.
type SMTPMailer struct {
	client *gomail.Client
	from   string
	to     string
}

// NewSMTP creates an SMTP mailer from configuration.
func NewSMTP(cfg config.SMTPConfig) (*SMTPMailer, error) {
	opts := []gomail.Option{
		gomail.WithPort(cfg.Port),
		gomail.WithTLSPortPolicy(gomail.TLSOpportunistic),
	}
	if cfg.Username != "" {
		opts = append(opts,
			gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
			gomail.WithUsername(cfg.Username),
			gomail.WithPassword(cfg.Password),
		)
	}

	client, err := gomail.NewClient(cfg.Host, opts...)
	if err != nil {
		return nil, fmt.Errorf("create smtp client: %w", err)
	}

	return &SMTPMailer{
		client: client,
		from:   cfg.From,
		to:     cfg.To,
	}, nil
}

// SendContactNotification emails a plain-text summary of the submission to
// the configured recipient.
func (m *SMTPMailer) SendContactNotification(ctx context.Context, n Notification) error {
	msg := gomail.NewMsg()
	if err := msg.From(m.from); err != nil {
		return fmt.Errorf("set sender: %w", err)
	}
	if err := msg.To(m.to); err != nil {
		return fmt.Errorf("set recipient: %w", err)
	}
	msg.Subject(fmt.Sprintf("New Contact: %s", n.Name))
	msg.SetBodyString(gomail.TypeTextPlain, notificationBody(n))

	if err := m.client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("send notification: %w", err)
	}
	return nil
}

func notificationBody(n Notification) string {
	return fmt.Sprintf(
		"New contact form submission:\n\nName: %s\nEmail: %s\n\nMessage:\n%s\n\nTimestamp: %s\n",
		n.Name, n.Email, n.Message, n.SubmittedAt.UTC().Format(time.RFC3339),
	)
}
