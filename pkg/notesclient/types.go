package notesclient

import (
	"errors"
	"time"
)

// Note is the wire representation of a stored note. ID is opaque to
// the client; it is assigned by the server at creation.
type Note struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// CreateInput is the payload for creating a note. Content is optional.
type CreateInput struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// UpdateInput is a partial update payload. Nil fields are left
// untouched on the server.
type UpdateInput struct {
	Title   *string `json:"title,omitempty"`
	Content *string `json:"content,omitempty"`
}

var (
	// ErrNotFound is returned for id-addressed operations on a note
	// that does not exist.
	ErrNotFound = errors.New("notesclient: note not found")
	// ErrValidation is returned when the request is rejected as invalid,
	// before or after the round trip.
	ErrValidation = errors.New("notesclient: validation failed")
)
