package notesclient

import (
	"context"
	"fmt"
	"strings"
)

// Backend performs the actual note operations. Implementations: the
// HTTP backend and the offline in-memory backend.
type Backend interface {
	List(ctx context.Context) ([]Note, error)
	Get(ctx context.Context, id string) (*Note, error)
	Create(ctx context.Context, input CreateInput) (*Note, error)
	Update(ctx context.Context, id string, input UpdateInput) (*Note, error)
	Delete(ctx context.Context, id string) error
}

// Client translates note operations into calls against a Backend.
type Client struct {
	backend Backend
}

// New constructs a Client bound to the remote API at baseURL.
func New(baseURL string, opts ...Option) (*Client, error) {
	backend, err := newHTTPBackend(baseURL, opts...)
	if err != nil {
		return nil, err
	}
	return &Client{backend: backend}, nil
}

// NewWithBackend allows callers to supply a custom backend.
func NewWithBackend(b Backend) *Client {
	return &Client{backend: b}
}

// ListNotes returns all notes in store order. An empty store yields an
// empty slice, not an error.
func (c *Client) ListNotes(ctx context.Context) ([]Note, error) {
	if c == nil || c.backend == nil {
		return nil, fmt.Errorf("notesclient: client is nil")
	}
	return c.backend.List(ctx)
}

// GetNote returns one note or ErrNotFound.
func (c *Client) GetNote(ctx context.Context, id string) (*Note, error) {
	if c == nil || c.backend == nil {
		return nil, fmt.Errorf("notesclient: client is nil")
	}
	if strings.TrimSpace(id) == "" {
		return nil, fmt.Errorf("%w: id is required", ErrValidation)
	}
	return c.backend.Get(ctx, id)
}

// CreateNote creates a note and returns it with the generated id and
// timestamps. An empty title fails with ErrValidation before any round
// trip.
func (c *Client) CreateNote(ctx context.Context, input CreateInput) (*Note, error) {
	if c == nil || c.backend == nil {
		return nil, fmt.Errorf("notesclient: client is nil")
	}
	if input.Title == "" {
		return nil, fmt.Errorf("%w: title is required", ErrValidation)
	}
	return c.backend.Create(ctx, input)
}

// UpdateNote applies a partial update and returns the merged note.
// Fails with ErrNotFound when id does not exist.
func (c *Client) UpdateNote(ctx context.Context, id string, input UpdateInput) (*Note, error) {
	if c == nil || c.backend == nil {
		return nil, fmt.Errorf("notesclient: client is nil")
	}
	if strings.TrimSpace(id) == "" {
		return nil, fmt.Errorf("%w: id is required", ErrValidation)
	}
	if input.Title == nil && input.Content == nil {
		return nil, fmt.Errorf("%w: at least one of title or content is required", ErrValidation)
	}
	if input.Title != nil && *input.Title == "" {
		return nil, fmt.Errorf("%w: title must not be empty", ErrValidation)
	}
	return c.backend.Update(ctx, id, input)
}

// DeleteNote removes a note. Fails with ErrNotFound when id does not
// exist.
func (c *Client) DeleteNote(ctx context.Context, id string) error {
	if c == nil || c.backend == nil {
		return fmt.Errorf("notesclient: client is nil")
	}
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("%w: id is required", ErrValidation)
	}
	return c.backend.Delete(ctx, id)
}
