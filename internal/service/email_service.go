package service

import (
	"context"
	"fmt"

	"portfolio/internal/model"

	"github.com/rs/zerolog"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// EmailSender notifies the site owner about contact-form submissions.
type EmailSender interface {
	SendContactNotification(ctx context.Context, msg *model.ContactMessage) error
}

type sendGridSender struct {
	client *sendgrid.Client
	from   string
	to     string
	logger zerolog.Logger
}

// NewSendGridSender returns an EmailSender backed by SendGrid.
func NewSendGridSender(apiKey, from, to string, logger zerolog.Logger) EmailSender {
	lg := logger.With().Str("service", "SendGridSender").Logger()
	return &sendGridSender{
		client: sendgrid.NewSendClient(apiKey),
		from:   from,
		to:     to,
		logger: lg,
	}
}

// SendContactNotification sends a plain-text notification carrying the
// submission and the sender's reply address.
func (s *sendGridSender) SendContactNotification(ctx context.Context, msg *model.ContactMessage) error {
	subject := fmt.Sprintf("New contact form submission from %s", msg.Name)
	body := fmt.Sprintf("Name: %s\nEmail: %s\n\n%s", msg.Name, msg.Email, msg.Message)

	from := mail.NewEmail("Portfolio Contact Form", s.from)
	to := mail.NewEmail("", s.to)
	message := mail.NewSingleEmail(from, subject, to, body, "")
	message.ReplyTo = mail.NewEmail(msg.Name, msg.Email)

	resp, err := s.client.SendWithContext(ctx, message)
	if err != nil {
		return fmt.Errorf("send contact notification: %w", err)
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("send contact notification: sendgrid returned %d: %s", resp.StatusCode, resp.Body)
	}
	s.logger.Info().Str("message_id", msg.ID).Msg("Contact notification sent")
	return nil
}
