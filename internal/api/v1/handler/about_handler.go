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

// Fallback returned before the about section is ever written.
const defaultBio = "Hi, I'm a passionate web designer and developer with over 5 years of experience creating beautiful, functional websites that help businesses grow. I specialize in modern web technologies including React, Next.js, and Tailwind CSS.\n\nMy approach combines strategic thinking with creative design to deliver websites that not only look amazing but also convert visitors into customers. I work closely with each client to understand their unique needs and goals.\n\nWhen I'm not coding, you'll find me exploring new design trends, contributing to open-source projects, or enjoying a good cup of coffee while brainstorming the next big idea."

const defaultProfileImageURL = "/src/assets/Dom.jpeg"

type AboutHandler struct {
	about    repository.AboutRepository
	validate *validator.Validate
	logger   zerolog.Logger
}

func NewAboutHandler(about repository.AboutRepository, v *validator.Validate, logger zerolog.Logger) *AboutHandler {
	return &AboutHandler{about: about, validate: v, logger: logger}
}

// RegisterRoutes mounts about routes
func (h *AboutHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /about", h.getAbout)
	mux.HandleFunc("PUT /about", h.updateAbout)
}

func (h *AboutHandler) getAbout(w http.ResponseWriter, r *http.Request) {
	about, err := h.about.GetAboutInfo(r.Context())
	if err != nil {
		h.logger.Error().Err(err).Msg("Error fetching about info")
		respondError(w, http.StatusInternalServerError, "Failed to fetch about info")
		return
	}
	if about == nil {
		// Never written yet: serve the hardcoded default instead of an
		// empty section.
		img := defaultProfileImageURL
		about = &model.AboutInfo{Bio: defaultBio, ProfileImageURL: &img}
	}
	respondJSON(w, http.StatusOK, about)
}

func (h *AboutHandler) updateAbout(w http.ResponseWriter, r *http.Request) {
	var req dto.AboutUpdateDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid data")
		return
	}
	if err := h.validate.Struct(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid data")
		return
	}

	about, err := h.about.CreateOrUpdateAboutInfo(r.Context(), model.InsertAbout{
		Bio:             req.Bio,
		ProfileImageURL: req.ProfileImageURL,
	})
	if err != nil {
		h.logger.Error().Err(err).Msg("Error updating about info")
		respondError(w, http.StatusInternalServerError, "Failed to update about info")
		return
	}

	respondJSON(w, http.StatusOK, about)
}
