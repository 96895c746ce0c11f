package model

import "time"

// ContactMessage is a stored contact-form submission. It is kept even when
// the outbound notification email fails.
type ContactMessage struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}

// InsertContactMessage is the client-supplied subset of ContactMessage
type InsertContactMessage struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}
