package dto

// PaymentIntentCreateDTO is used for incoming checkout requests. Amount is
// in whole currency units as sent by the UI; the server recomputes the total
// and the client figure is advisory only.
type PaymentIntentCreateDTO struct {
	Amount         float64 `json:"amount" validate:"required,gt=0"`
	CustomerName   string  `json:"customerName" validate:"required"`
	CustomerEmail  string  `json:"customerEmail" validate:"required,email"`
	PageCount      int     `json:"pageCount" validate:"required,gte=1"`
	IncludeBackend bool    `json:"includeBackend"`
	Description    string  `json:"description"`
}

// PaymentIntentResponseDTO is returned when the gateway session is created
type PaymentIntentResponseDTO struct {
	ClientSecret string `json:"clientSecret"`
}

// CustomQuoteResponseDTO is returned when the page count exceeds the direct
// checkout cap
type CustomQuoteResponseDTO struct {
	Error               string `json:"error"`
	CustomQuoteRequired bool   `json:"customQuoteRequired"`
}

// WebhookResponseDTO acknowledges a processed webhook event
type WebhookResponseDTO struct {
	Received bool `json:"received"`
}
