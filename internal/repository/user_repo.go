package repository

import (
	"context"
	"errors"

	"portfolio/internal/model"

	"github.com/google/uuid"
)

// ErrDuplicateUsername is returned by CreateUser when the username is already
// taken.
var ErrDuplicateUsername = errors.New("username already exists")

// UserRepository defines the interface for interacting with user data
type UserRepository interface {
	GetUser(ctx context.Context, id string) (*model.User, error)
	GetUserByUsername(ctx context.Context, username string) (*model.User, error)
	CreateUser(ctx context.Context, insert model.InsertUser) (*model.User, error)
}

// GetUser returns the user or nil when the id is unknown.
func (s *MemStore) GetUser(ctx context.Context, id string) (*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[id]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

// GetUserByUsername returns the user with the given username or nil.
func (s *MemStore) GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.Username == username {
			return &u, nil
		}
	}
	return nil, nil
}

// CreateUser assigns a fresh id and inserts the user. Username uniqueness is
// enforced here, under the write lock, so concurrent signups cannot both
// claim the same name. The caller is expected to have hashed the password
// already.
func (s *MemStore) CreateUser(ctx context.Context, insert model.InsertUser) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.users {
		if existing.Username == insert.Username {
			return nil, ErrDuplicateUsername
		}
	}

	u := model.User{
		ID:       uuid.NewString(),
		Username: insert.Username,
		Password: insert.Password,
	}
	s.users[u.ID] = u
	return &u, nil
}
