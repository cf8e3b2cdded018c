package model

// Location represents a named storage bucket items may belong to.
// Names are unique across all locations.
type Location struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
