package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"portfolio/internal/api/v1/dto"
	"portfolio/internal/repository"
	"portfolio/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
)

type ObjectHandler struct {
	// objects is nil when the object store is unconfigured; its routes
	// answer 503 in that case.
	objects  service.ObjectStorageService
	about    repository.AboutRepository
	validate *validator.Validate
	logger   zerolog.Logger
}

func NewObjectHandler(objects service.ObjectStorageService, about repository.AboutRepository, v *validator.Validate, logger zerolog.Logger) *ObjectHandler {
	return &ObjectHandler{objects: objects, about: about, validate: v, logger: logger}
}

// RegisterRoutes mounts the /api object routes
func (h *ObjectHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /objects/upload", h.getUploadURL)
	mux.HandleFunc("PUT /profile-image", h.updateProfileImage)
}

// RegisterRootRoutes mounts the binary download route, which lives outside
// the /api prefix.
func (h *ObjectHandler) RegisterRootRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /objects/{path...}", h.downloadObject)
}

func (h *ObjectHandler) getUploadURL(w http.ResponseWriter, r *http.Request) {
	if h.objects == nil {
		respondError(w, http.StatusServiceUnavailable, "Object storage not configured")
		return
	}

	uploadURL, err := h.objects.GetUploadURL(r.Context())
	if err != nil {
		h.logger.Error().Err(err).Msg("Error getting upload URL")
		respondError(w, http.StatusInternalServerError, "Failed to get upload URL")
		return
	}

	respondJSON(w, http.StatusOK, dto.UploadURLResponseDTO{UploadURL: uploadURL})
}

func (h *ObjectHandler) downloadObject(w http.ResponseWriter, r *http.Request) {
	if h.objects == nil {
		respondError(w, http.StatusServiceUnavailable, "Object storage not configured")
		return
	}

	body, contentType, err := h.objects.Download(r.Context(), r.PathValue("path"))
	if err != nil {
		if errors.Is(err, service.ErrObjectNotFound) {
			http.Error(w, "Not found", http.StatusNotFound)
			return
		}
		h.logger.Error().Err(err).Msg("Error accessing object")
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	defer body.Close()

	if contentType != "" {
		w.Header().Set("Content-Type", contentType)
	}
	if _, err := io.Copy(w, body); err != nil {
		// Headers are sent; all we can do is log the broken stream.
		h.logger.Error().Err(err).Msg("Error streaming object")
	}
}

func (h *ObjectHandler) updateProfileImage(w http.ResponseWriter, r *http.Request) {
	if h.objects == nil {
		respondError(w, http.StatusServiceUnavailable, "Object storage not configured")
		return
	}

	var req dto.ProfileImageUpdateDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "profileImageURL is required")
		return
	}
	if err := h.validate.Struct(&req); err != nil {
		respondError(w, http.StatusBadRequest, "profileImageURL is required")
		return
	}

	objectPath := h.objects.NormalizeObjectPath(req.ProfileImageURL)

	if _, err := h.about.SetProfileImage(r.Context(), objectPath); err != nil {
		h.logger.Error().Err(err).Msg("Error setting profile image")
		respondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	respondJSON(w, http.StatusOK, dto.ProfileImageResponseDTO{ObjectPath: objectPath})
}
