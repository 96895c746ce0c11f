package dto

// ContactCreateDTO is used for incoming contact-form submissions
type ContactCreateDTO struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Message string `json:"message" validate:"required"`
}

// ContactResponseDTO is returned after a submission is stored
type ContactResponseDTO struct {
	Success bool   `json:"success"`
	ID      string `json:"id"`
}
