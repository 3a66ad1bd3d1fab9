package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"notely/internal/database/dto"
	"notely/internal/database/models"

	"github.com/google/uuid"
)

// ErrNoteNotFound signals an id-addressed operation on a note that does
// not exist. Handlers map it to 404.
var ErrNoteNotFound = errors.New("note not found")

type NoteRepository interface {
	Create(ctx context.Context, input dto.CreateNoteInput) (*models.Note, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Note, error)
	GetAll(ctx context.Context) ([]models.Note, error)
	Update(ctx context.Context, id uuid.UUID, input dto.UpdateNoteInput) (*models.Note, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type noteRepository struct {
	db *sql.DB
}

func NewNoteRepository(db *sql.DB) NoteRepository {
	return &noteRepository{db: db}
}

func (r *noteRepository) Create(ctx context.Context, input dto.CreateNoteInput) (*models.Note, error) {
	note := models.Note{
		ID:      uuid.New(),
		Title:   input.Title,
		Content: input.Content,
	}
	query := `
		INSERT INTO notes (id, title, content, created_at, updated_at)
		VALUES ($1, $2, $3, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)
		RETURNING created_at, updated_at`
	err := r.db.QueryRowContext(ctx, query, note.ID, note.Title, note.Content).Scan(&note.CreatedAt, &note.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("error creating note: %v", err)
	}
	return &note, nil
}

func (r *noteRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Note, error) {
	note := models.Note{}
	query := `SELECT id, title, content, created_at, updated_at FROM notes WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&note.ID, &note.Title, &note.Content, &note.CreatedAt, &note.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNoteNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error getting note: %v", err)
	}
	return &note, nil
}

func (r *noteRepository) GetAll(ctx context.Context) ([]models.Note, error) {
	query := `SELECT id, title, content, created_at, updated_at FROM notes ORDER BY created_at`
	result, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error querying notes: %v", err)
	}
	defer result.Close()
	notes := []models.Note{}
	for result.Next() {
		var note models.Note
		err := result.Scan(
			&note.ID,
			&note.Title,
			&note.Content,
			&note.CreatedAt,
			&note.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning note: %v", err)
		}
		notes = append(notes, note)
	}
	if err = result.Err(); err != nil {
		return nil, fmt.Errorf("error iterating notes: %v", err)
	}
	return notes, nil
}

func (r *noteRepository) Update(ctx context.Context, id uuid.UUID, input dto.UpdateNoteInput) (*models.Note, error) {
	note := models.Note{}
	// COALESCE keeps stored values for fields absent from the request.
	query := `
		UPDATE notes
		SET title = COALESCE($1, title), content = COALESCE($2, content), updated_at = CURRENT_TIMESTAMP
		WHERE id = $3
		RETURNING id, title, content, created_at, updated_at`
	err := r.db.QueryRowContext(ctx, query, input.Title, input.Content, id).Scan(&note.ID, &note.Title, &note.Content, &note.CreatedAt, &note.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNoteNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error updating note: %v", err)
	}
	return &note, nil
}

func (r *noteRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM notes WHERE id = $1`
	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("error deleting note: %v", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error getting rows affected: %v", err)
	}
	if rowsAffected == 0 {
		return ErrNoteNotFound
	}
	return nil
}
