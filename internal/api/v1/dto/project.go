package dto

// ProjectCreateDTO is used for incoming create requests
type ProjectCreateDTO struct {
	Title        string   `json:"title" validate:"required"`
	Description  string   `json:"description" validate:"required"`
	ImageURL     string   `json:"imageUrl" validate:"required"`
	LiveURL      string   `json:"liveUrl" validate:"required"`
	Technologies []string `json:"technologies" validate:"required,min=1"`
	Featured     *bool    `json:"featured"`
}

// ProjectUpdateDTO carries a partial update; omitted fields stay untouched
type ProjectUpdateDTO struct {
	Title        *string  `json:"title"`
	Description  *string  `json:"description"`
	ImageURL     *string  `json:"imageUrl"`
	LiveURL      *string  `json:"liveUrl"`
	Technologies []string `json:"technologies"`
	Featured     *bool    `json:"featured"`
}
