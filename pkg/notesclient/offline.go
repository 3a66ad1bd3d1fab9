package notesclient

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// OfflineBackend is an in-memory Backend for development without a
// running server. It enforces the same validation and existence checks
// as the remote API, so domain errors are never masked.
type OfflineBackend struct {
	mu    sync.Mutex
	notes map[string]Note
	now   func() time.Time
}

// OfflineOption configures the offline backend.
type OfflineOption func(*OfflineBackend)

// WithOfflineClock overrides the clock used for timestamps (useful in tests).
func WithOfflineClock(fn func() time.Time) OfflineOption {
	return func(b *OfflineBackend) {
		if fn != nil {
			b.now = fn
		}
	}
}

// NewOfflineBackend creates an empty offline store. Each instance owns
// its own state.
func NewOfflineBackend(opts ...OfflineOption) *OfflineBackend {
	b := &OfflineBackend{
		notes: make(map[string]Note),
		now: func() time.Time {
			return time.Now().UTC()
		},
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

func (b *OfflineBackend) List(ctx context.Context) ([]Note, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	notes := make([]Note, 0, len(b.notes))
	for _, note := range b.notes {
		notes = append(notes, note)
	}
	sort.Slice(notes, func(i, j int) bool {
		if notes[i].CreatedAt.Equal(notes[j].CreatedAt) {
			return notes[i].ID < notes[j].ID
		}
		return notes[i].CreatedAt.Before(notes[j].CreatedAt)
	})
	return notes, nil
}

func (b *OfflineBackend) Get(ctx context.Context, id string) (*Note, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	note, ok := b.notes[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return &note, nil
}

func (b *OfflineBackend) Create(ctx context.Context, input CreateInput) (*Note, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if input.Title == "" {
		return nil, fmt.Errorf("%w: title is required", ErrValidation)
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	now := b.now()
	note := Note{
		ID:        uuid.New().String(),
		Title:     input.Title,
		Content:   input.Content,
		CreatedAt: now,
		UpdatedAt: now,
	}
	b.notes[note.ID] = note
	return &note, nil
}

func (b *OfflineBackend) Update(ctx context.Context, id string, input UpdateInput) (*Note, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if input.Title == nil && input.Content == nil {
		return nil, fmt.Errorf("%w: at least one of title or content is required", ErrValidation)
	}
	if input.Title != nil && *input.Title == "" {
		return nil, fmt.Errorf("%w: title must not be empty", ErrValidation)
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	note, ok := b.notes[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if input.Title != nil {
		note.Title = *input.Title
	}
	if input.Content != nil {
		note.Content = *input.Content
	}
	note.UpdatedAt = b.now()
	b.notes[id] = note
	return &note, nil
}

func (b *OfflineBackend) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if _, ok := b.notes[id]; !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	delete(b.notes, id)
	return nil
}
