package dto

// AboutUpdateDTO is used for incoming about-section writes. A missing
// profileImageUrl keeps the stored image.
type AboutUpdateDTO struct {
	Bio             string  `json:"bio" validate:"required"`
	ProfileImageURL *string `json:"profileImageUrl"`
}
