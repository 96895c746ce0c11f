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

type ReviewHandler struct {
	reviews  repository.ReviewRepository
	validate *validator.Validate
	logger   zerolog.Logger
}

func NewReviewHandler(reviews repository.ReviewRepository, v *validator.Validate, logger zerolog.Logger) *ReviewHandler {
	return &ReviewHandler{reviews: reviews, validate: v, logger: logger}
}

// RegisterRoutes mounts review routes
func (h *ReviewHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /reviews", h.listReviews)
	mux.HandleFunc("GET /reviews/featured", h.getFeaturedReview)
	mux.HandleFunc("POST /reviews", h.createReview)
}

func (h *ReviewHandler) listReviews(w http.ResponseWriter, r *http.Request) {
	reviews, err := h.reviews.ListApprovedReviews(r.Context())
	if err != nil {
		h.logger.Error().Err(err).Msg("Error fetching reviews")
		respondError(w, http.StatusInternalServerError, "Failed to fetch reviews")
		return
	}
	respondJSON(w, http.StatusOK, reviews)
}

func (h *ReviewHandler) getFeaturedReview(w http.ResponseWriter, r *http.Request) {
	review, err := h.reviews.GetFeaturedReview(r.Context())
	if err != nil {
		h.logger.Error().Err(err).Msg("Error fetching featured review")
		respondError(w, http.StatusInternalServerError, "Failed to fetch featured review")
		return
	}
	// review is null when nothing is approved yet; the UI renders nothing.
	respondJSON(w, http.StatusOK, review)
}

func (h *ReviewHandler) createReview(w http.ResponseWriter, r *http.Request) {
	var req dto.ReviewCreateDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid data")
		return
	}
	if err := h.validate.Struct(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid data")
		return
	}

	review, err := h.reviews.CreateReview(r.Context(), model.InsertReview{
		Name:    req.Name,
		Rating:  req.Rating,
		Comment: req.Comment,
	})
	if err != nil {
		h.logger.Error().Err(err).Msg("Error creating review")
		respondError(w, http.StatusInternalServerError, "Failed to create review")
		return
	}

	respondJSON(w, http.StatusCreated, review)
}
