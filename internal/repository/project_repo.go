package repository

import (
	"context"

	"portfolio/internal/model"

	"github.com/google/uuid"
)

// ProjectRepository defines the interface for interacting with the gallery
type ProjectRepository interface {
	ListProjects(ctx context.Context) ([]model.Project, error)
	ListFeaturedProjects(ctx context.Context) ([]model.Project, error)
	GetProject(ctx context.Context, id string) (*model.Project, error)
	CreateProject(ctx context.Context, insert model.InsertProject) (*model.Project, error)
	UpdateProject(ctx context.Context, id string, update model.ProjectUpdate) (*model.Project, error)
	DeleteProject(ctx context.Context, id string) (bool, error)
}

// ListProjects returns every project in insertion order.
func (s *MemStore) ListProjects(ctx context.Context) ([]model.Project, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	projects := make([]model.Project, 0, len(s.projectOrder))
	for _, id := range s.projectOrder {
		projects = append(projects, s.projects[id])
	}
	return projects, nil
}

// ListFeaturedProjects returns the featured subset in insertion order.
func (s *MemStore) ListFeaturedProjects(ctx context.Context) ([]model.Project, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	projects := make([]model.Project, 0)
	for _, id := range s.projectOrder {
		if p := s.projects[id]; p.Featured {
			projects = append(projects, p)
		}
	}
	return projects, nil
}

// GetProject returns the project or nil when the id is unknown.
func (s *MemStore) GetProject(ctx context.Context, id string) (*model.Project, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.projects[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

// CreateProject assigns a fresh id, defaults Featured to false when omitted,
// and appends the project to the gallery.
func (s *MemStore) CreateProject(ctx context.Context, insert model.InsertProject) (*model.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := model.Project{
		ID:           uuid.NewString(),
		Title:        insert.Title,
		Description:  insert.Description,
		ImageURL:     insert.ImageURL,
		LiveURL:      insert.LiveURL,
		Technologies: append([]string(nil), insert.Technologies...),
	}
	if insert.Featured != nil {
		p.Featured = *insert.Featured
	}
	s.projects[p.ID] = p
	s.projectOrder = append(s.projectOrder, p.ID)
	return &p, nil
}

// UpdateProject merges non-nil fields into the existing record. It returns
// nil when the id is unknown.
func (s *MemStore) UpdateProject(ctx context.Context, id string, update model.ProjectUpdate) (*model.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.projects[id]
	if !ok {
		return nil, nil
	}
	if update.Title != nil {
		p.Title = *update.Title
	}
	if update.Description != nil {
		p.Description = *update.Description
	}
	if update.ImageURL != nil {
		p.ImageURL = *update.ImageURL
	}
	if update.LiveURL != nil {
		p.LiveURL = *update.LiveURL
	}
	if update.Technologies != nil {
		p.Technologies = append([]string(nil), update.Technologies...)
	}
	if update.Featured != nil {
		p.Featured = *update.Featured
	}
	s.projects[id] = p
	return &p, nil
}

// DeleteProject removes the project and reports whether it existed.
func (s *MemStore) DeleteProject(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.projects[id]; !ok {
		return false, nil
	}
	delete(s.projects, id)
	for i, pid := range s.projectOrder {
		if pid == id {
			s.projectOrder = append(s.projectOrder[:i], s.projectOrder[i+1:]...)
			break
		}
	}
	return true, nil
}
