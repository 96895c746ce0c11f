package handler

import (
	"encoding/json"
	"net/http"

	"portfolio/internal/api/v1/dto"
	"portfolio/internal/model"
	"portfolio/internal/repository"
	"portfolio/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
)

type ContactHandler struct {
	messages repository.ContactRepository
	// email is nil when SendGrid is unconfigured; submissions are still
	// stored.
	email    service.EmailSender
	validate *validator.Validate
	logger   zerolog.Logger
}

func NewContactHandler(messages repository.ContactRepository, email service.EmailSender, v *validator.Validate, logger zerolog.Logger) *ContactHandler {
	return &ContactHandler{messages: messages, email: email, validate: v, logger: logger}
}

// RegisterRoutes mounts contact routes. Submission is public, the stored
// inbox is admin-only.
func (h *ContactHandler) RegisterRoutes(mux *http.ServeMux, authMw func(http.Handler) http.Handler) {
	mux.HandleFunc("POST /contact", h.createMessage)
	mux.Handle("GET /contact/messages", authMw(http.HandlerFunc(h.listMessages)))
}

func (h *ContactHandler) createMessage(w http.ResponseWriter, r *http.Request) {
	// 1. Decode and validate
	var req dto.ContactCreateDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid data")
		return
	}
	if err := h.validate.Struct(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid data")
		return
	}

	// 2. Store the submission first; the notification is best-effort
	msg, err := h.messages.CreateContactMessage(r.Context(), model.InsertContactMessage{
		Name:    req.Name,
		Email:   req.Email,
		Message: req.Message,
	})
	if err != nil {
		h.logger.Error().Err(err).Msg("Error storing contact message")
		respondError(w, http.StatusInternalServerError, "Failed to submit message")
		return
	}

	// 3. Notify the site owner; a failure is logged, not surfaced
	if h.email != nil {
		if err := h.email.SendContactNotification(r.Context(), msg); err != nil {
			h.logger.Error().Err(err).Str("message_id", msg.ID).Msg("Error sending contact notification")
		}
	}

	respondJSON(w, http.StatusOK, dto.ContactResponseDTO{Success: true, ID: msg.ID})
}

func (h *ContactHandler) listMessages(w http.ResponseWriter, r *http.Request) {
	messages, err := h.messages.ListContactMessages(r.Context())
	if err != nil {
		h.logger.Error().Err(err).Msg("Error fetching contact messages")
		respondError(w, http.StatusInternalServerError, "Failed to fetch contact messages")
		return
	}
	respondJSON(w, http.StatusOK, messages)
}
