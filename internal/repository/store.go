package repository

import (
	"sync"

	"portfolio/internal/model"
)

// MemStore holds every entity collection for the process lifetime. Nothing is
// persisted; a restart starts from the seed list again. Handlers run
// concurrently, so all access goes through the mutex.
type MemStore struct {
	mu sync.RWMutex

	users map[string]model.User

	projects map[string]model.Project
	// projectOrder preserves insertion order for listings, since Go map
	// iteration order is randomized.
	projectOrder []string

	about *model.AboutInfo

	paymentIntents map[string]model.PaymentIntent

	reviews map[string]model.Review
	// reviewOrder is creation order; CreatedAt is assigned at insert, so
	// walking it backwards yields newest-first even when timestamps collide.
	reviewOrder []string

	messages     map[string]model.ContactMessage
	messageOrder []string
}

// NewMemStore creates a store seeded with the static project gallery.
func NewMemStore() *MemStore {
	s := &MemStore{
		users:          make(map[string]model.User),
		projects:       make(map[string]model.Project),
		paymentIntents: make(map[string]model.PaymentIntent),
		reviews:        make(map[string]model.Review),
		messages:       make(map[string]model.ContactMessage),
	}
	for _, p := range model.SeedProjects {
		s.projects[p.ID] = p
		s.projectOrder = append(s.projectOrder, p.ID)
	}
	return s
}
