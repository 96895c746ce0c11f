package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"portfolio/internal/model"
	"portfolio/internal/repository"

	"github.com/rs/zerolog"
	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/paymentintent"
	"github.com/stripe/stripe-go/v82/webhook"
)

// ErrInvalidSignature is returned when a webhook payload fails signature
// verification.
var ErrInvalidSignature = errors.New("webhook signature verification failed")

// CreatePaymentIntentRequest carries the validated checkout fields. Amount is
// the server-computed total in cents; the client-sent figure is never charged.
type CreatePaymentIntentRequest struct {
	CustomerName   string
	CustomerEmail  string
	PageCount      int
	IncludeBackend bool
	Description    string
	Amount         int64
}

// PaymentService creates gateway payment sessions and processes webhook
// events against the local mirror.
type PaymentService interface {
	CreatePaymentIntent(ctx context.Context, req CreatePaymentIntentRequest) (string, *model.PaymentIntent, error)
	HandleWebhookEvent(ctx context.Context, payload []byte, signature string) error
}

type stripePaymentService struct {
	webhookSecret string
	payments      repository.PaymentIntentRepository
	logger        zerolog.Logger
}

// NewStripePaymentService sets the Stripe API key and returns the service
// with a scoped logger.
func NewStripePaymentService(secretKey, webhookSecret string, payments repository.PaymentIntentRepository, logger zerolog.Logger) PaymentService {
	stripe.Key = secretKey
	lg := logger.With().Str("service", "StripePaymentService").Logger()
	return &stripePaymentService{webhookSecret: webhookSecret, payments: payments, logger: lg}
}

// CreatePaymentIntent creates the gateway payment intent and records the
// local mirror with the gateway's id and status.
func (s *stripePaymentService) CreatePaymentIntent(ctx context.Context, req CreatePaymentIntentRequest) (string, *model.PaymentIntent, error) {
	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(req.Amount),
		Currency: stripe.String(string(stripe.CurrencyUSD)),
		Metadata: map[string]string{
			"customerName":   req.CustomerName,
			"customerEmail":  req.CustomerEmail,
			"pageCount":      fmt.Sprintf("%d", req.PageCount),
			"includeBackend": fmt.Sprintf("%t", req.IncludeBackend),
			"description":    req.Description,
		},
	}
	pi, err := paymentintent.New(params)
	if err != nil {
		s.logger.Error().Err(err).Str("customer_email", req.CustomerEmail).Msg("Failed to create Stripe payment intent")
		return "", nil, fmt.Errorf("create payment intent: %w", err)
	}

	mirror, err := s.payments.CreatePaymentIntent(ctx, model.InsertPaymentIntent{
		StripePaymentIntentID: pi.ID,
		CustomerName:          req.CustomerName,
		CustomerEmail:         req.CustomerEmail,
		PageCount:             req.PageCount,
		IncludeBackend:        req.IncludeBackend,
		Amount:                req.Amount,
		Description:           req.Description,
		Status:                string(pi.Status),
	})
	if err != nil {
		s.logger.Error().Err(err).Str("payment_intent_id", pi.ID).Msg("Failed to record payment intent mirror")
		return "", nil, fmt.Errorf("record payment intent: %w", err)
	}

	return pi.ClientSecret, mirror, nil
}

// HandleWebhookEvent verifies the signature and applies status updates to the
// stored mirror. Unknown event types are acknowledged without action.
func (s *stripePaymentService) HandleWebhookEvent(ctx context.Context, payload []byte, signature string) error {
	event, err := webhook.ConstructEvent(payload, signature, s.webhookSecret)
	if err != nil {
		s.logger.Error().Err(err).Msg("Signature verification failed for Stripe webhook")
		return fmt.Errorf("%w: %v", ErrInvalidSignature, err)
	}
	s.logger.Info().Str("event_type", string(event.Type)).Msg("Stripe webhook received")

	switch event.Type {
	case "payment_intent.succeeded":
		var pi stripe.PaymentIntent
		if err := json.Unmarshal(event.Data.Raw, &pi); err != nil {
			s.logger.Error().Err(err).Msg("Invalid payment_intent data in webhook")
			return fmt.Errorf("%w: invalid payment_intent data", ErrInvalidSignature)
		}
		mirror, err := s.payments.UpdatePaymentIntentStatusByProviderID(ctx, pi.ID, string(pi.Status))
		if err != nil {
			return fmt.Errorf("update payment intent status: %w", err)
		}
		if mirror == nil {
			// The mirror is in-memory; a restart between checkout and
			// webhook delivery loses it. Acknowledge anyway so Stripe
			// stops retrying.
			s.logger.Warn().Str("payment_intent_id", pi.ID).Msg("Webhook for unknown payment intent")
			return nil
		}
		s.logger.Info().Str("payment_intent_id", pi.ID).Str("status", mirror.Status).Msg("Payment succeeded")
	default:
		s.logger.Debug().Str("event_type", string(event.Type)).Msg("Ignoring unhandled webhook event")
	}
	return nil
}
