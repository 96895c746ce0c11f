package repository

import (
	"context"
	"time"

	"portfolio/internal/model"

	"github.com/google/uuid"
)

// PaymentIntentRepository defines the interface for the local payment mirror
type PaymentIntentRepository interface {
	CreatePaymentIntent(ctx context.Context, insert model.InsertPaymentIntent) (*model.PaymentIntent, error)
	GetPaymentIntent(ctx context.Context, id string) (*model.PaymentIntent, error)
	UpdatePaymentIntentStatus(ctx context.Context, id, status string) (*model.PaymentIntent, error)
	UpdatePaymentIntentStatusByProviderID(ctx context.Context, stripeID, status string) (*model.PaymentIntent, error)
}

// CreatePaymentIntent records the local mirror of a gateway payment intent.
func (s *MemStore) CreatePaymentIntent(ctx context.Context, insert model.InsertPaymentIntent) (*model.PaymentIntent, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	pi := model.PaymentIntent{
		ID:                    uuid.NewString(),
		StripePaymentIntentID: insert.StripePaymentIntentID,
		CustomerName:          insert.CustomerName,
		CustomerEmail:         insert.CustomerEmail,
		PageCount:             insert.PageCount,
		IncludeBackend:        insert.IncludeBackend,
		Amount:                insert.Amount,
		Description:           insert.Description,
		Status:                insert.Status,
		CreatedAt:             time.Now(),
	}
	s.paymentIntents[pi.ID] = pi
	return &pi, nil
}

// GetPaymentIntent returns the mirror or nil when the id is unknown.
func (s *MemStore) GetPaymentIntent(ctx context.Context, id string) (*model.PaymentIntent, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	pi, ok := s.paymentIntents[id]
	if !ok {
		return nil, nil
	}
	return &pi, nil
}

// UpdatePaymentIntentStatus replaces the status, returning nil when the id
// is unknown.
func (s *MemStore) UpdatePaymentIntentStatus(ctx context.Context, id, status string) (*model.PaymentIntent, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	pi, ok := s.paymentIntents[id]
	if !ok {
		return nil, nil
	}
	pi.Status = status
	s.paymentIntents[id] = pi
	return &pi, nil
}

// UpdatePaymentIntentStatusByProviderID updates the mirror matching the
// gateway's own payment intent id. Webhook events only know that id.
func (s *MemStore) UpdatePaymentIntentStatusByProviderID(ctx context.Context, stripeID, status string) (*model.PaymentIntent, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, pi := range s.paymentIntents {
		if pi.StripePaymentIntentID == stripeID {
			pi.Status = status
			s.paymentIntents[id] = pi
			return &pi, nil
		}
	}
	return nil, nil
}
