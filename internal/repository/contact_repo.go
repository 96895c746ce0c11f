package repository

import (
	"context"
	"time"

	"portfolio/internal/model"

	"github.com/google/uuid"
)

// ContactRepository defines the interface for contact-form submissions
type ContactRepository interface {
	CreateContactMessage(ctx context.Context, insert model.InsertContactMessage) (*model.ContactMessage, error)
	ListContactMessages(ctx context.Context) ([]model.ContactMessage, error)
}

// CreateContactMessage stores a submission.
func (s *MemStore) CreateContactMessage(ctx context.Context, insert model.InsertContactMessage) (*model.ContactMessage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	m := model.ContactMessage{
		ID:        uuid.NewString(),
		Name:      insert.Name,
		Email:     insert.Email,
		Message:   insert.Message,
		CreatedAt: time.Now(),
	}
	s.messages[m.ID] = m
	s.messageOrder = append(s.messageOrder, m.ID)
	return &m, nil
}

// ListContactMessages returns stored submissions, newest first.
func (s *MemStore) ListContactMessages(ctx context.Context) ([]model.ContactMessage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	messages := make([]model.ContactMessage, 0, len(s.messageOrder))
	for i := len(s.messageOrder) - 1; i >= 0; i-- {
		messages = append(messages, s.messages[s.messageOrder[i]])
	}
	return messages, nil
}
