package model

import "time"

// PaymentIntent is the local mirror of a Stripe payment intent created for a
// quote checkout. Amount is in integer cents.
type PaymentIntent struct {
	ID                    string    `json:"id"`
	StripePaymentIntentID string    `json:"stripePaymentIntentId"`
	CustomerName          string    `json:"customerName"`
	CustomerEmail         string    `json:"customerEmail"`
	PageCount             int       `json:"pageCount"`
	IncludeBackend        bool      `json:"includeBackend"`
	Amount                int64     `json:"amount"`
	Description           string    `json:"description"`
	Status                string    `json:"status"`
	CreatedAt             time.Time `json:"createdAt"`
}

// InsertPaymentIntent is the server-side subset recorded after the gateway
// call succeeds.
type InsertPaymentIntent struct {
	StripePaymentIntentID string `json:"stripePaymentIntentId"`
	CustomerName          string `json:"customerName"`
	CustomerEmail         string `json:"customerEmail"`
	PageCount             int    `json:"pageCount"`
	IncludeBackend        bool   `json:"includeBackend"`
	Amount                int64  `json:"amount"`
	Description           string `json:"description"`
	Status                string `json:"status"`
}
