package repository

import (
	"context"
	"time"

	"portfolio/internal/model"

	"github.com/google/uuid"
)

// ReviewRepository defines the interface for testimonials
type ReviewRepository interface {
	CreateReview(ctx context.Context, insert model.InsertReview) (*model.Review, error)
	ListApprovedReviews(ctx context.Context) ([]model.Review, error)
	GetFeaturedReview(ctx context.Context) (*model.Review, error)
}

// CreateReview inserts a review. Approved is set true unconditionally; the
// flag exists in the schema but no moderation gate is enforced.
func (s *MemStore) CreateReview(ctx context.Context, insert model.InsertReview) (*model.Review, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r := model.Review{
		ID:        uuid.NewString(),
		Name:      insert.Name,
		Rating:    insert.Rating,
		Comment:   insert.Comment,
		Approved:  true,
		CreatedAt: time.Now(),
	}
	s.reviews[r.ID] = r
	s.reviewOrder = append(s.reviewOrder, r.ID)
	return &r, nil
}

// ListApprovedReviews returns approved reviews, newest first.
func (s *MemStore) ListApprovedReviews(ctx context.Context) ([]model.Review, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	reviews := make([]model.Review, 0, len(s.reviewOrder))
	for i := len(s.reviewOrder) - 1; i >= 0; i-- {
		if r := s.reviews[s.reviewOrder[i]]; r.Approved {
			reviews = append(reviews, r)
		}
	}
	return reviews, nil
}

// GetFeaturedReview returns the most recently created approved review, or
// nil when none are approved.
func (s *MemStore) GetFeaturedReview(ctx context.Context) (*model.Review, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := len(s.reviewOrder) - 1; i >= 0; i-- {
		if r := s.reviews[s.reviewOrder[i]]; r.Approved {
			return &r, nil
		}
	}
	return nil, nil
}
