package handler

import (
	"encoding/json"
	"errors"
	"io"
	"math"
	"net/http"

	"portfolio/internal/api/v1/dto"
	"portfolio/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
)

type PaymentHandler struct {
	// payments is nil when the Stripe key is unconfigured; both routes
	// answer 503 in that case.
	payments service.PaymentService
	validate *validator.Validate
	logger   zerolog.Logger
}

func NewPaymentHandler(payments service.PaymentService, v *validator.Validate, logger zerolog.Logger) *PaymentHandler {
	return &PaymentHandler{payments: payments, validate: v, logger: logger}
}

// RegisterRoutes mounts payment routes
func (h *PaymentHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /create-payment-intent", h.createPaymentIntent)
	mux.HandleFunc("POST /stripe-webhook", h.handleWebhook)
}

func (h *PaymentHandler) createPaymentIntent(w http.ResponseWriter, r *http.Request) {
	// 1. Gateway availability
	if h.payments == nil {
		respondError(w, http.StatusServiceUnavailable, "Payment service not configured")
		return
	}

	// 2. Decode and validate
	var req dto.PaymentIntentCreateDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Missing required fields")
		return
	}
	if err := h.validate.Struct(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Missing required fields")
		return
	}

	// 3. Price server-side. Larger sites never reach the gateway.
	quote := service.CalculateQuote(req.PageCount, req.IncludeBackend)
	if quote.CustomQuoteRequired {
		respondJSON(w, http.StatusUnprocessableEntity, dto.CustomQuoteResponseDTO{
			Error:               "Projects over 5 pages require a custom quote, please get in touch",
			CustomQuoteRequired: true,
		})
		return
	}

	amountCents := quote.Total * 100
	if clientCents := int64(math.Round(req.Amount * 100)); clientCents != amountCents {
		h.logger.Warn().
			Int64("client_amount_cents", clientCents).
			Int64("quoted_amount_cents", amountCents).
			Msg("Client-sent amount differs from server quote; charging the quote")
	}

	// 4. Create the gateway session and local mirror
	clientSecret, _, err := h.payments.CreatePaymentIntent(r.Context(), service.CreatePaymentIntentRequest{
		CustomerName:   req.CustomerName,
		CustomerEmail:  req.CustomerEmail,
		PageCount:      req.PageCount,
		IncludeBackend: req.IncludeBackend,
		Description:    req.Description,
		Amount:         amountCents,
	})
	if err != nil {
		h.logger.Error().Err(err).Msg("Error creating payment intent")
		respondError(w, http.StatusInternalServerError, "Error creating payment intent")
		return
	}

	respondJSON(w, http.StatusOK, dto.PaymentIntentResponseDTO{ClientSecret: clientSecret})
}

func (h *PaymentHandler) handleWebhook(w http.ResponseWriter, r *http.Request) {
	if h.payments == nil {
		respondError(w, http.StatusServiceUnavailable, "Payment service not configured")
		return
	}

	payload, err := io.ReadAll(r.Body)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Failed to read payload")
		return
	}

	err = h.payments.HandleWebhookEvent(r.Context(), payload, r.Header.Get("Stripe-Signature"))
	if err != nil {
		if errors.Is(err, service.ErrInvalidSignature) {
			respondError(w, http.StatusBadRequest, "Webhook signature verification failed")
			return
		}
		h.logger.Error().Err(err).Msg("Error processing webhook event")
		respondError(w, http.StatusInternalServerError, "Failed to process webhook")
		return
	}

	respondJSON(w, http.StatusOK, dto.WebhookResponseDTO{Received: true})
}
