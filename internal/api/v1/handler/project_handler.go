package handler

import (
	"encoding/json"
	"net/http"

	"portfolio/internal/api/v1/dto"
	"portfolio/internal/model"
	"portfolio/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
)

type ProjectHandler struct {
	projects repository.ProjectRepository
	validate *validator.Validate
	logger   zerolog.Logger
}

func NewProjectHandler(projects repository.ProjectRepository, v *validator.Validate, logger zerolog.Logger) *ProjectHandler {
	return &ProjectHandler{projects: projects, validate: v, logger: logger}
}

// RegisterRoutes mounts project routes. Listing is public; mutations are
// admin-only.
func (h *ProjectHandler) RegisterRoutes(mux *http.ServeMux, authMw func(http.Handler) http.Handler) {
	mux.HandleFunc("GET /projects", h.listProjects)
	mux.HandleFunc("GET /projects/featured", h.listFeaturedProjects)
	mux.Handle("POST /projects", authMw(http.HandlerFunc(h.createProject)))
	mux.Handle("PUT /projects/{id}", authMw(http.HandlerFunc(h.updateProject)))
	mux.Handle("DELETE /projects/{id}", authMw(http.HandlerFunc(h.deleteProject)))
}

func (h *ProjectHandler) listProjects(w http.ResponseWriter, r *http.Request) {
	projects, err := h.projects.ListProjects(r.Context())
	if err != nil {
		h.logger.Error().Err(err).Msg("Error fetching projects")
		respondError(w, http.StatusInternalServerError, "Failed to fetch projects")
		return
	}
	respondJSON(w, http.StatusOK, projects)
}

func (h *ProjectHandler) listFeaturedProjects(w http.ResponseWriter, r *http.Request) {
	projects, err := h.projects.ListFeaturedProjects(r.Context())
	if err != nil {
		h.logger.Error().Err(err).Msg("Error fetching featured projects")
		respondError(w, http.StatusInternalServerError, "Failed to fetch featured projects")
		return
	}
	respondJSON(w, http.StatusOK, projects)
}

func (h *ProjectHandler) createProject(w http.ResponseWriter, r *http.Request) {
	// 1. Decode request body into DTO
	var req dto.ProjectCreateDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid data")
		return
	}

	// 2. Validate DTO
	if err := h.validate.Struct(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid data")
		return
	}

	// 3. Insert into the store
	project, err := h.projects.CreateProject(r.Context(), model.InsertProject{
		Title:        req.Title,
		Description:  req.Description,
		ImageURL:     req.ImageURL,
		LiveURL:      req.LiveURL,
		Technologies: req.Technologies,
		Featured:     req.Featured,
	})
	if err != nil {
		h.logger.Error().Err(err).Msg("Error creating project")
		respondError(w, http.StatusInternalServerError, "Failed to create project")
		return
	}

	respondJSON(w, http.StatusCreated, project)
}

func (h *ProjectHandler) updateProject(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	var req dto.ProjectUpdateDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid data")
		return
	}

	project, err := h.projects.UpdateProject(r.Context(), id, model.ProjectUpdate{
		Title:        req.Title,
		Description:  req.Description,
		ImageURL:     req.ImageURL,
		LiveURL:      req.LiveURL,
		Technologies: req.Technologies,
		Featured:     req.Featured,
	})
	if err != nil {
		h.logger.Error().Err(err).Str("project_id", id).Msg("Error updating project")
		respondError(w, http.StatusInternalServerError, "Failed to update project")
		return
	}
	if project == nil {
		respondError(w, http.StatusNotFound, "Project not found")
		return
	}

	respondJSON(w, http.StatusOK, project)
}

func (h *ProjectHandler) deleteProject(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	existed, err := h.projects.DeleteProject(r.Context(), id)
	if err != nil {
		h.logger.Error().Err(err).Str("project_id", id).Msg("Error deleting project")
		respondError(w, http.StatusInternalServerError, "Failed to delete project")
		return
	}
	if !existed {
		respondError(w, http.StatusNotFound, "Project not found")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
