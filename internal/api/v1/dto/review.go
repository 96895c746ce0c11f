package dto

// ReviewCreateDTO is used for incoming review submissions
type ReviewCreateDTO struct {
	Name    string `json:"name" validate:"required"`
	Rating  int    `json:"rating" validate:"required,gte=1,lte=5"`
	Comment string `json:"comment" validate:"required"`
}
