package server

import (
	"errors"

	"notely/internal/database/dto"
	"notely/internal/database/repositories"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

func (s *FiberServer) RegisterFiberRoutes() {
	s.App.Get("/health", s.healthHandler)

	s.App.Post("/notes", s.createNote)
	s.App.Get("/notes", s.getAllNotes)
	s.App.Get("/notes/:id", s.getSingleNote)
	s.App.Put("/notes/:id", s.updateNote)
	s.App.Delete("/notes/:id", s.deleteNote)
}

func (s *FiberServer) healthHandler(c *fiber.Ctx) error {
	return c.JSON(s.db.Health())
}

func (s *FiberServer) getAllNotes(c *fiber.Ctx) error {
	notes, err := s.notes.GetAll(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: err.Error(),
		})
	}
	return c.JSON(notes)
}

func (s *FiberServer) getSingleNote(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid note id"})
	}
	note, err := s.notes.GetByID(c.Context(), id)
	if errors.Is(err, repositories.ErrNoteNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "note not found"})
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: err.Error(),
		})
	}
	return c.JSON(note)
}

func (s *FiberServer) createNote(c *fiber.Ctx) error {
	input := dto.CreateNoteInput{}
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: "invalid request body",
		})
	}
	// Emptiness only. A whitespace-only title passes.
	if input.Title == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: "title is required",
		})
	}
	note, err := s.notes.Create(c.Context(), input)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(note)
}

func (s *FiberServer) updateNote(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid note id"})
	}
	input := dto.UpdateNoteInput{}
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: "invalid request body",
		})
	}
	if input.Title == nil && input.Content == nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: "at least one of title or content is required",
		})
	}
	if input.Title != nil && *input.Title == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: "title must not be empty",
		})
	}
	note, err := s.notes.Update(c.Context(), id, input)
	if errors.Is(err, repositories.ErrNoteNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "note not found"})
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: err.Error(),
		})
	}
	return c.JSON(note)
}

func (s *FiberServer) deleteNote(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid note id"})
	}
	err = s.notes.Delete(c.Context(), id)
	if errors.Is(err, repositories.ErrNoteNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "note not found"})
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: err.Error(),
		})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
