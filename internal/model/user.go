package model

// User represents an admin account for the site
type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	// Password holds the bcrypt hash, never the plaintext.
	Password string `json:"-"`
}

// InsertUser is the client-supplied subset of User
type InsertUser struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
