package mailer

import (
	"context"
	"fmt"
	"time"

	mg "github.com/mailgun/mailgun-go/v4"
)

// Mailgun wraps Mailgun client configuration.
type Mailgun struct {
	Domain string
	APIKey string
	Sender string
}

func NewMailgun(domain, apiKey, sender string) *Mailgun {
	return &Mailgun{Domain: domain, APIKey: apiKey, Sender: sender}
}

// Send sends an email via Mailgun. html is optional; if provided it will be used as HTML body.
func (m *Mailgun) Send(ctx context.Context, to, subject, text, html string) error {
	client := mg.NewMailgun(m.Domain, m.APIKey)
	msg := client.NewMessage(m.Sender, subject, text, to)
	if html != "" {
		msg.SetHtml(html)
	}
	c, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	_, _, err := client.Send(c, msg)
	return err
}

// SendStatusUpdate renders and sends the status-change notification for a job.
func (m *Mailgun) SendStatusUpdate(ctx context.Context, job StatusNotificationJob) error {
	subject := fmt.Sprintf("Package %s is now %s", job.TrackingCode, job.Status)
	text := fmt.Sprintf("Your package %s (recipient: %s) changed status to %q.\n\nTrack it with code %s.",
		job.TrackingCode, job.RecipientName, job.Status, job.TrackingCode)
	return m.Send(ctx, job.To, subject, text, "")
}
