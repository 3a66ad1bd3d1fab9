package repositories

import (
	"context"
	"sort"
	"sync"
	"time"

	"notely/internal/database/dto"
	"notely/internal/database/models"

	"github.com/google/uuid"
)

// memoryNoteRepository is the offline development store. Each instance
// owns its own map, so tests can run against isolated copies.
type memoryNoteRepository struct {
	mu    sync.RWMutex
	notes map[uuid.UUID]models.Note
	now   func() time.Time
}

// MemoryOption configures the in-memory repository.
type MemoryOption func(*memoryNoteRepository)

// WithClock overrides the clock used for timestamp stamping (useful in tests).
func WithClock(fn func() time.Time) MemoryOption {
	return func(r *memoryNoteRepository) {
		if fn != nil {
			r.now = fn
		}
	}
}

func NewMemoryNoteRepository(opts ...MemoryOption) NoteRepository {
	r := &memoryNoteRepository{
		notes: make(map[uuid.UUID]models.Note),
		now: func() time.Time {
			return time.Now().UTC()
		},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *memoryNoteRepository) Create(ctx context.Context, input dto.CreateNoteInput) (*models.Note, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	note := models.Note{
		ID:        uuid.New(),
		Title:     input.Title,
		Content:   input.Content,
		CreatedAt: now,
		UpdatedAt: now,
	}
	r.notes[note.ID] = note
	return &note, nil
}

func (r *memoryNoteRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Note, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	note, ok := r.notes[id]
	if !ok {
		return nil, ErrNoteNotFound
	}
	return &note, nil
}

func (r *memoryNoteRepository) GetAll(ctx context.Context) ([]models.Note, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	notes := make([]models.Note, 0, len(r.notes))
	for _, note := range r.notes {
		notes = append(notes, note)
	}
	// Same order the postgres store returns.
	sort.Slice(notes, func(i, j int) bool {
		if notes[i].CreatedAt.Equal(notes[j].CreatedAt) {
			return notes[i].ID.String() < notes[j].ID.String()
		}
		return notes[i].CreatedAt.Before(notes[j].CreatedAt)
	})
	return notes, nil
}

func (r *memoryNoteRepository) Update(ctx context.Context, id uuid.UUID, input dto.UpdateNoteInput) (*models.Note, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	note, ok := r.notes[id]
	if !ok {
		return nil, ErrNoteNotFound
	}
	if input.Title != nil {
		note.Title = *input.Title
	}
	if input.Content != nil {
		note.Content = *input.Content
	}
	note.UpdatedAt = r.now()
	r.notes[id] = note
	return &note, nil
}

func (r *memoryNoteRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.notes[id]; !ok {
		return ErrNoteNotFound
	}
	delete(r.notes, id)
	return nil
}
