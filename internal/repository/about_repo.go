package repository

import (
	"context"

	"portfolio/internal/model"

	"github.com/google/uuid"
)

// AboutRepository defines the interface for the singleton about section
type AboutRepository interface {
	GetAboutInfo(ctx context.Context) (*model.AboutInfo, error)
	CreateOrUpdateAboutInfo(ctx context.Context, insert model.InsertAbout) (*model.AboutInfo, error)
	SetProfileImage(ctx context.Context, objectPath string) (*model.AboutInfo, error)
}

// GetAboutInfo returns the about record or nil when it was never written.
func (s *MemStore) GetAboutInfo(ctx context.Context) (*model.AboutInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.about == nil {
		return nil, nil
	}
	about := *s.about
	return &about, nil
}

// CreateOrUpdateAboutInfo creates the singleton on first write and merges on
// later writes. Merge precedence: the incoming bio always wins; the incoming
// profile image wins only when non-nil, otherwise the stored value persists.
func (s *MemStore) CreateOrUpdateAboutInfo(ctx context.Context, insert model.InsertAbout) (*model.AboutInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.about == nil {
		s.about = &model.AboutInfo{
			ID:              uuid.NewString(),
			Bio:             insert.Bio,
			ProfileImageURL: insert.ProfileImageURL,
		}
	} else {
		s.about.Bio = insert.Bio
		if insert.ProfileImageURL != nil {
			s.about.ProfileImageURL = insert.ProfileImageURL
		}
	}
	about := *s.about
	return &about, nil
}

// SetProfileImage updates only the profile image, creating the singleton with
// an empty bio when no record exists yet. Kept as a single store call so the
// read-modify-write cannot interleave with a concurrent about update.
func (s *MemStore) SetProfileImage(ctx context.Context, objectPath string) (*model.AboutInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.about == nil {
		s.about = &model.AboutInfo{ID: uuid.NewString()}
	}
	s.about.ProfileImageURL = &objectPath
	about := *s.about
	return &about, nil
}
