package repositories

import (
	"context"
	"testing"
	"time"

	"notely/internal/database/dto"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string {
	return &s
}

func TestMemoryCreateStampsTimestamps(t *testing.T) {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	repo := NewMemoryNoteRepository(WithClock(func() time.Time { return now }))

	note, err := repo.Create(context.Background(), dto.CreateNoteInput{Title: "t", Content: "c"})
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, note.ID)
	assert.Equal(t, "t", note.Title)
	assert.Equal(t, "c", note.Content)
	assert.True(t, note.CreatedAt.Equal(now))
	assert.True(t, note.UpdatedAt.Equal(now))
}

func TestMemoryCreateUniqueIDs(t *testing.T) {
	repo := NewMemoryNoteRepository()
	ctx := context.Background()

	seen := map[uuid.UUID]bool{}
	for i := 0; i < 50; i++ {
		note, err := repo.Create(ctx, dto.CreateNoteInput{Title: "n"})
		require.NoError(t, err)
		require.False(t, seen[note.ID])
		seen[note.ID] = true
	}
}

func TestMemoryRoundTrip(t *testing.T) {
	repo := NewMemoryNoteRepository()
	ctx := context.Background()

	created, err := repo.Create(ctx, dto.CreateNoteInput{Title: "round", Content: "trip"})
	require.NoError(t, err)

	fetched, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.Title, fetched.Title)
	assert.Equal(t, created.Content, fetched.Content)
}

func TestMemoryNotFound(t *testing.T) {
	repo := NewMemoryNoteRepository()
	ctx := context.Background()
	missing := uuid.New()

	_, err := repo.GetByID(ctx, missing)
	assert.ErrorIs(t, err, ErrNoteNotFound)

	_, err = repo.Update(ctx, missing, dto.UpdateNoteInput{Title: strPtr("t")})
	assert.ErrorIs(t, err, ErrNoteNotFound)

	err = repo.Delete(ctx, missing)
	assert.ErrorIs(t, err, ErrNoteNotFound)
}

func TestMemoryUpdatePartial(t *testing.T) {
	base := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	now := base
	repo := NewMemoryNoteRepository(WithClock(func() time.Time { return now }))
	ctx := context.Background()

	created, err := repo.Create(ctx, dto.CreateNoteInput{Title: "keep", Content: "old"})
	require.NoError(t, err)

	now = base.Add(time.Minute)
	updated, err := repo.Update(ctx, created.ID, dto.UpdateNoteInput{Content: strPtr("new")})
	require.NoError(t, err)

	assert.Equal(t, "keep", updated.Title)
	assert.Equal(t, "new", updated.Content)
	assert.True(t, updated.UpdatedAt.After(created.UpdatedAt))
	assert.True(t, updated.CreatedAt.Equal(created.CreatedAt))
}

func TestMemoryDelete(t *testing.T) {
	repo := NewMemoryNoteRepository()
	ctx := context.Background()

	created, err := repo.Create(ctx, dto.CreateNoteInput{Title: "gone"})
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, created.ID))

	_, err = repo.GetByID(ctx, created.ID)
	assert.ErrorIs(t, err, ErrNoteNotFound)
}

func TestMemoryGetAll(t *testing.T) {
	base := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	now := base
	repo := NewMemoryNoteRepository(WithClock(func() time.Time { return now }))
	ctx := context.Background()

	empty, err := repo.GetAll(ctx)
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Len(t, empty, 0)

	first, err := repo.Create(ctx, dto.CreateNoteInput{Title: "a"})
	require.NoError(t, err)
	now = base.Add(time.Second)
	second, err := repo.Create(ctx, dto.CreateNoteInput{Title: "b"})
	require.NoError(t, err)

	notes, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, notes, 2)
	assert.Equal(t, first.ID, notes[0].ID)
	assert.Equal(t, second.ID, notes[1].ID)
}

func TestMemoryIsolatedInstances(t *testing.T) {
	ctx := context.Background()
	a := NewMemoryNoteRepository()
	b := NewMemoryNoteRepository()

	note, err := a.Create(ctx, dto.CreateNoteInput{Title: "only in a"})
	require.NoError(t, err)

	_, err = b.GetByID(ctx, note.ID)
	assert.ErrorIs(t, err, ErrNoteNotFound)
}

func TestMemoryCancelledContext(t *testing.T) {
	repo := NewMemoryNoteRepository()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := repo.Create(ctx, dto.CreateNoteInput{Title: "t"})
	assert.ErrorIs(t, err, context.Canceled)
}
