package dto

// UploadURLResponseDTO carries a presigned upload URL
type UploadURLResponseDTO struct {
	UploadURL string `json:"uploadURL"`
}

// ProfileImageUpdateDTO points the about section at an uploaded object
type ProfileImageUpdateDTO struct {
	ProfileImageURL string `json:"profileImageURL" validate:"required"`
}

// ProfileImageResponseDTO returns the normalized serving path
type ProfileImageResponseDTO struct {
	ObjectPath string `json:"objectPath"`
}
