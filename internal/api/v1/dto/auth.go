package dto

// AuthRequestDTO is used for both signup and login
type AuthRequestDTO struct {
	Username string `json:"username" validate:"required,min=3"`
	Password string `json:"password" validate:"required,min=8"`
}

// SignupResponseDTO is returned after account creation
type SignupResponseDTO struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

// LoginResponseDTO carries the bearer token
type LoginResponseDTO struct {
	Token string `json:"token"`
}
