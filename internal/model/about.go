package model

// AboutInfo is the singleton bio section. At most one instance exists per
// process lifetime.
type AboutInfo struct {
	ID              string  `json:"id"`
	Bio             string  `json:"bio"`
	ProfileImageURL *string `json:"profileImageUrl"`
}

// InsertAbout is the client-supplied subset of AboutInfo. A nil
// ProfileImageURL means "keep whatever is already stored", not "clear it".
type InsertAbout struct {
	Bio             string  `json:"bio"`
	ProfileImageURL *string `json:"profileImageUrl"`
}
