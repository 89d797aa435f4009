// Package mailer wraps the transactional email provider behind a one-method
// interface. Submission handling never waits on or fails because of email.
package mailer

import (
	"context"
	"log"

	"github.com/resend/resend-go/v2"
)

// Sender delivers one HTML email. Implementations must be safe for
// concurrent use.
type Sender interface {
	Send(ctx context.Context, to, subject, html string) error
}

// Resend sends through the Resend API.
type Resend struct {
	client *resend.Client
	from   string
}

// NewResend creates a sender authenticated with apiKey, sending from the
// given address (e.g. "Wonderland Kindergarten <hello@wonderland.sc.ke>").
func NewResend(apiKey, from string) *Resend {
	return &Resend{client: resend.NewClient(apiKey), from: from}
}

func (s *Resend) Send(ctx context.Context, to, subject, html string) error {
	_, err := s.client.Emails.SendWithContext(ctx, &resend.SendEmailRequest{
		From:    s.from,
		To:      []string{to},
		Subject: subject,
		Html:    html,
	})
	return err
}

// Disabled is the sender used when no email API key is configured. It logs
// and drops every message.
type Disabled struct{}

func (Disabled) Send(_ context.Context, to, subject, _ string) error {
	log.Printf("email disabled, dropping %q to %s", subject, to)
	return nil
}
