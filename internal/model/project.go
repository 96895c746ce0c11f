package model

// Project is a single portfolio gallery entry
type Project struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	ImageURL     string   `json:"imageUrl"`
	LiveURL      string   `json:"liveUrl"`
	Technologies []string `json:"technologies"`
	Featured     bool     `json:"featured"`
}

// InsertProject is the client-supplied subset of Project
type InsertProject struct {
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	ImageURL     string   `json:"imageUrl"`
	LiveURL      string   `json:"liveUrl"`
	Technologies []string `json:"technologies"`
	Featured     *bool    `json:"featured"`
}

// ProjectUpdate carries a partial update. Nil fields are left untouched.
type ProjectUpdate struct {
	Title        *string  `json:"title"`
	Description  *string  `json:"description"`
	ImageURL     *string  `json:"imageUrl"`
	LiveURL      *string  `json:"liveUrl"`
	Technologies []string `json:"technologies"`
	Featured     *bool    `json:"featured"`
}
