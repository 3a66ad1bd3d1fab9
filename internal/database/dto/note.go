package dto

// CreateNoteInput is the request body for creating a note. Content is
// optional and defaults to the empty string.
type CreateNoteInput struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// UpdateNoteInput is the request body for a partial update. Nil fields
// keep their stored values.
type UpdateNoteInput struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
}

// ErrorResponse is the JSON envelope returned for every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}
